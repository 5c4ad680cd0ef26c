package constants

// ParseStatus is the canonical status for stored receipts.
type ParseStatus string

// Stable values (store these exact strings in DB).
const (
	StatusParsed      ParseStatus = "PARSED"       // fields extracted, confidence acceptable
	StatusNeedsReview ParseStatus = "NEEDS_REVIEW" // missing key fields or low confidence
	StatusFailed      ParseStatus = "FAILED"       // terminal failure before persistence
)
