package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("ParseAmount", func() {
	It("cleans currency symbols, commas and spaces", func() {
		for in, want := range map[string]string{
			"4.50":      "4.50",
			"$4.50":     "4.50",
			"€ 23.20":   "23.20",
			"1,234.56":  "1234.56",
			"£ 1,000":   "1000",
			"-12.00":    "-12.00",
			"¥1000":     "1000",
			"₹ 2,50.00": "250.00",
		} {
			got, ok := ParseAmount(in)
			Expect(ok).To(BeTrue(), in)
			Expect(got.Equal(decimal.RequireFromString(want))).To(BeTrue(), in)
		}
	})

	It("rejects text that does not clean to a number", func() {
		for _, in := range []string{"", "abc", "$", "12.34.56", "4 50c"} {
			_, ok := ParseAmount(in)
			Expect(ok).To(BeFalse(), in)
		}
	})
})
