package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("extractLineItems", func() {
	It("extracts name and trailing amount per line", func() {
		items := extractLineItems([]string{
			"Latte 4.50",
			"Blueberry Muffin $3.25",
			"Sparkling Water  2.00",
		})
		Expect(items).To(HaveLen(3))
		Expect(items[0].Name).To(Equal("Latte"))
		Expect(items[0].Price.Equal(decimal.RequireFromString("4.50"))).To(BeTrue())
		Expect(items[1].Name).To(Equal("Blueberry Muffin"))
		Expect(items[1].Price.Equal(decimal.RequireFromString("3.25"))).To(BeTrue())
		Expect(items[2].Name).To(Equal("Sparkling Water"))
	})

	It("defaults every quantity to one", func() {
		items := extractLineItems([]string{"Latte 4.50"})
		Expect(items).To(HaveLen(1))
		Expect(items[0].Quantity.Equal(decimal.NewFromInt(1))).To(BeTrue())
	})

	It("rejects header and footer lines", func() {
		items := extractLineItems([]string{
			"TOTAL 45.67",
			"Subtotal 42.00",
			"Sales Tax 3.67",
			"CHANGE 5.00",
			"Card ending 1111 20.00",
			"Thank you 0.00",
		})
		Expect(items).To(BeEmpty())
	})

	It("skips lines whose amount is not positive", func() {
		items := extractLineItems([]string{"Coupon -2.00", "Void 0.00"})
		Expect(items).To(BeEmpty())
	})

	It("skips lines without a trailing decimal amount", func() {
		items := extractLineItems([]string{"Latte", "Open 24 hours", "Aisle 7"})
		Expect(items).To(BeEmpty())
	})
})
