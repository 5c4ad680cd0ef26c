package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ScoreBlocks", func() {
	It("averages only the present confidences", func() {
		blocks := []RecognizedBlock{
			{Text: "a", Confidence: confPtr(0.9)},
			{Text: "b", Confidence: confPtr(0.7)},
			{Text: "c"},
		}
		Expect(ScoreBlocks(blocks)).To(BeNumerically("~", 0.8, 1e-9))
	})

	It("returns zero for no blocks", func() {
		Expect(ScoreBlocks(nil)).To(BeZero())
		Expect(ScoreBlocks([]RecognizedBlock{})).To(BeZero())
	})

	It("returns zero when no block carries a confidence", func() {
		Expect(ScoreBlocks([]RecognizedBlock{{Text: "a"}, {Text: "b"}})).To(BeZero())
	})

	It("passes a single confidence through", func() {
		Expect(ScoreBlocks([]RecognizedBlock{{Confidence: confPtr(0.42)}})).To(BeNumerically("~", 0.42, 1e-9))
	})
})
