package parser

// ScoreBlocks averages the recognition confidence of all blocks that carry
// one. Blocks without a confidence value are excluded from both numerator and
// denominator. No blocks, or none with a value, yields 0.0.
//
// The score is informational only; it never gates field extraction.
func ScoreBlocks(blocks []RecognizedBlock) float64 {
	var sum float64
	var n int
	for _, b := range blocks {
		if b.Confidence != nil {
			sum += *b.Confidence
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}
