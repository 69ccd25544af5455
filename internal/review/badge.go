package review

// ConfidenceTier buckets an extraction confidence score for display.
// The tier affects presentation only; it never gates which decisions are
// allowed on an item.
type ConfidenceTier int

// Confidence tiers.
const (
	TierLow ConfidenceTier = iota
	TierMedium
	TierHigh
)

// Tier classifies a confidence score: >= 0.8 high, >= 0.5 medium, else low.
func Tier(confidence float64) ConfidenceTier {
	switch {
	case confidence >= 0.8:
		return TierHigh
	case confidence >= 0.5:
		return TierMedium
	default:
		return TierLow
	}
}

// Label returns the tier's display label.
func (t ConfidenceTier) Label() string {
	switch t {
	case TierHigh:
		return "high confidence"
	case TierMedium:
		return "medium confidence"
	default:
		return "low confidence"
	}
}
