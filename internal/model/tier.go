package model

// Tier is a human-friendly market segment for a system rank.
// Keep these values stable; they are intended for CSV output.
type Tier string

const (
	TierOne      Tier = "TIER1"
	TierTwo      Tier = "TIER2"
	TierLongTail Tier = "LONG_TAIL"
)

// Rank boundaries used across reports and charts: the top 5 systems form
// tier 1, ranks 6-15 tier 2, everything after is the long tail.
const (
	TierOneSize = 5
	TierTwoEnd  = 15
)

func TierFromRank(rank int) Tier {
	switch {
	case rank <= TierOneSize:
		return TierOne
	case rank <= TierTwoEnd:
		return TierTwo
	default:
		return TierLongTail
	}
}
