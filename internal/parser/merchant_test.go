package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractMerchantName", func() {
	It("picks the first plausible header line", func() {
		got := extractMerchantName([]string{"Joe's Coffee", "123 Main St", "03/14/2024"})
		Expect(got).NotTo(BeNil())
		Expect(*got).To(Equal("Joe's Coffee"))
	})

	It("skips blank lines without consuming the window", func() {
		got := extractMerchantName([]string{"", "", "  ", "Corner Bakery Ltd"})
		Expect(got).NotTo(BeNil())
		Expect(*got).To(Equal("Corner Bakery Ltd"))
	})

	It("skips purely numeric lines", func() {
		got := extractMerchantName([]string{"04/12/2024 10:31", "#44-17", "Happy Mart"})
		Expect(got).NotTo(BeNil())
		Expect(*got).To(Equal("Happy Mart"))
	})

	It("skips boilerplate lines", func() {
		got := extractMerchantName([]string{"RECEIPT", "Invoice copy", "Happy Mart"})
		Expect(got).NotTo(BeNil())
		Expect(*got).To(Equal("Happy Mart"))
	})

	It("ignores short lines", func() {
		Expect(extractMerchantName([]string{"ab", "cdefg"})).To(BeNil())
	})

	It("stops after five non-empty lines", func() {
		lines := []string{"111", "222", "333", "444", "555", "Merchant Beyond Window"}
		Expect(extractMerchantName(lines)).To(BeNil())
	})

	It("returns nil for empty input", func() {
		Expect(extractMerchantName(nil)).To(BeNil())
	})
})
