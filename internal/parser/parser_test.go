package parser

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func confPtr(v float64) *float64 { return &v }

var _ = Describe("Parse", func() {
	Context("with a typical coffee shop receipt", func() {
		const text = "Joe's Coffee\nReceipt #A1234\n03/14/2024\nLatte 4.50\nTOTAL $4.50"

		It("extracts every field", func() {
			res := Parse(text, nil, nil)

			Expect(res.Parsed.MerchantName).NotTo(BeNil())
			Expect(*res.Parsed.MerchantName).To(Equal("Joe's Coffee"))

			Expect(res.Parsed.ReceiptNumber).NotTo(BeNil())
			Expect(*res.Parsed.ReceiptNumber).To(Equal("A1234"))

			Expect(res.Parsed.Date).NotTo(BeNil())
			Expect(*res.Parsed.Date).To(Equal(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)))

			Expect(res.Parsed.TotalAmount).NotTo(BeNil())
			Expect(res.Parsed.TotalAmount.Equal(decimal.RequireFromString("4.50"))).To(BeTrue())

			Expect(res.Parsed.Items).To(HaveLen(1))
			Expect(res.Parsed.Items[0].Name).To(Equal("Latte"))
			Expect(res.Parsed.Items[0].Price.Equal(decimal.RequireFromString("4.50"))).To(BeTrue())
			Expect(res.Parsed.Items[0].Quantity.Equal(decimal.NewFromInt(1))).To(BeTrue())

			Expect(res.Parsed.Currency).To(Equal("USD"))
		})

		It("is deterministic across repeated calls", func() {
			blocks := []RecognizedBlock{
				{Text: "Joe's Coffee", Confidence: confPtr(0.95)},
				{Text: "TOTAL $4.50", Confidence: confPtr(0.85)},
			}
			first := Parse(text, blocks, []string{"0123456789"})
			second := Parse(text, blocks, []string{"0123456789"})
			Expect(second).To(Equal(first))
		})
	})

	Context("with euro tax and total lines", func() {
		const text = "Some Store GmbH\nTAX: €3.20\nTOTAL: €23.20"

		It("derives the subtotal from total minus tax", func() {
			res := Parse(text, nil, nil)

			Expect(res.Parsed.TaxAmount).NotTo(BeNil())
			Expect(res.Parsed.TaxAmount.Equal(decimal.RequireFromString("3.20"))).To(BeTrue())
			Expect(res.Parsed.TotalAmount).NotTo(BeNil())
			Expect(res.Parsed.TotalAmount.Equal(decimal.RequireFromString("23.20"))).To(BeTrue())
			Expect(res.Parsed.Subtotal).NotTo(BeNil())
			Expect(res.Parsed.Subtotal.Equal(decimal.RequireFromString("20.00"))).To(BeTrue())
			Expect(res.Parsed.Currency).To(Equal("EUR"))
		})
	})

	Context("with no recognizable date", func() {
		It("leaves the date absent and populates the rest", func() {
			res := Parse("Corner Bakery\nOrder #991\nTOTAL $12.00", nil, nil)

			Expect(res.Parsed.Date).To(BeNil())
			Expect(res.Parsed.MerchantName).NotTo(BeNil())
			Expect(*res.Parsed.MerchantName).To(Equal("Corner Bakery"))
			Expect(res.Parsed.ReceiptNumber).NotTo(BeNil())
			Expect(*res.Parsed.ReceiptNumber).To(Equal("991"))
			Expect(res.Parsed.TotalAmount).NotTo(BeNil())
		})
	})

	Context("with empty raw text", func() {
		It("returns a result with every field at its default", func() {
			res := Parse("", nil, nil)

			Expect(res.Parsed.MerchantName).To(BeNil())
			Expect(res.Parsed.ReceiptNumber).To(BeNil())
			Expect(res.Parsed.Date).To(BeNil())
			Expect(res.Parsed.TotalAmount).To(BeNil())
			Expect(res.Parsed.TaxAmount).To(BeNil())
			Expect(res.Parsed.Subtotal).To(BeNil())
			Expect(res.Parsed.Items).To(BeEmpty())
			Expect(res.Parsed.Currency).To(Equal("USD"))
			Expect(res.Confidence).To(BeZero())
		})
	})

	Context("subtotal invariant", func() {
		It("holds for any text with both total and tax", func() {
			res := Parse("Sales Tax $1.37\nTotal $18.42", nil, nil)

			Expect(res.Parsed.TotalAmount).NotTo(BeNil())
			Expect(res.Parsed.TaxAmount).NotTo(BeNil())
			want := res.Parsed.TotalAmount.Sub(*res.Parsed.TaxAmount)
			Expect(res.Parsed.Subtotal.Equal(want)).To(BeTrue())
		})

		It("leaves the subtotal absent when tax is missing", func() {
			res := Parse("Total $18.42", nil, nil)
			Expect(res.Parsed.TotalAmount).NotTo(BeNil())
			Expect(res.Parsed.TaxAmount).To(BeNil())
			Expect(res.Parsed.Subtotal).To(BeNil())
		})
	})

	Context("currency default", func() {
		It("falls back to USD when no symbol or code appears", func() {
			res := Parse("Corner Store\nTotal 12.00", nil, nil)
			Expect(res.Parsed.Currency).To(Equal("USD"))
		})
	})

	Context("merchant-name windowing", func() {
		It("does not look past the first five non-empty lines", func() {
			text := "12345\n2024-01-02\nreceipt\n555-0100\n99.99\nActual Merchant Inc"
			res := Parse(text, nil, nil)
			Expect(res.Parsed.MerchantName).To(BeNil())
		})
	})

	Context("header-line exclusion", func() {
		It("never turns a TOTAL line into a line item", func() {
			res := Parse("TOTAL 45.67", nil, nil)
			Expect(res.Parsed.Items).To(BeEmpty())
		})
	})

	Context("pass-through sequences", func() {
		It("carries barcodes and blocks into the result unmodified", func() {
			blocks := []RecognizedBlock{{Text: "hello", Confidence: confPtr(0.5)}}
			barcodes := []string{"4006381333931"}
			res := Parse("whatever", blocks, barcodes)
			Expect(res.Barcodes).To(Equal(barcodes))
			Expect(res.Blocks).To(Equal(blocks))
		})
	})
})
