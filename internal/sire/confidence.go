// Package sire implements the field detection and inference engine that turns
// heterogeneous guest-registration datasets into SIRE-coded report lines.
package sire

// Confidence grades how much trust a resolved value carries.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

// String returns the confidence label used in logs and reports.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Downgrade returns the confidence of a value derived from a source with
// confidence c. Inference only flows trust downward: a HIGH source yields
// MEDIUM, anything else yields LOW.
func (c Confidence) Downgrade() Confidence {
	if c == ConfidenceHigh {
		return ConfidenceMedium
	}
	return ConfidenceLow
}

// FieldResult is the resolved value for one canonical field on one record.
type FieldResult struct {
	Value      string
	Confidence Confidence
	Source     string
	Notes      string
}
