package latency

// Tier is the performance classification of a single measured latency.
type Tier string

const (
	TierFast   Tier = "Fast"
	TierMedium Tier = "Medium"
	TierSlow   Tier = "Slow"

	// TierNotApplicable marks a summary with no successful requests to
	// average over.
	TierNotApplicable Tier = "N/A"
)

// Tier boundaries in milliseconds. Fast is exclusive at the top,
// Medium inclusive on both ends.
const (
	FastUpperMs   = 300
	MediumUpperMs = 1000
)

// Categorize maps a latency in milliseconds to its tier. Total over all
// non-negative inputs.
func Categorize(ms int64) Tier {
	switch {
	case ms < FastUpperMs:
		return TierFast
	case ms <= MediumUpperMs:
		return TierMedium
	default:
		return TierSlow
	}
}

// Criteria describes the tier boundaries in human-readable form. It is
// embedded in every persisted session record so old logs stay
// self-describing if the boundaries ever move.
type Criteria struct {
	Fast   string `json:"fast"`
	Medium string `json:"medium"`
	Slow   string `json:"slow"`
}

func DefaultCriteria() Criteria {
	return Criteria{
		Fast:   "< 300ms",
		Medium: "300ms - 1000ms",
		Slow:   "> 1000ms",
	}
}
