package simulation

import "ats-coverage/internal/model"

// CountStats is the aggregate for one system count across all trials.
// This is the primary artifact for "what the simulation says" per count.
type CountStats struct {
	Systems int
	Tier    model.Tier

	MeanCoverage float64
	StdCoverage  float64
	MeanROI      float64
	StdROI       float64

	// OptimalShare is the fraction of trials whose ROI peaked at this count.
	OptimalShare float64
}

// Result holds everything the report and charts need. Matrices are indexed
// [trial][systems-1].
type Result struct {
	Trials  int
	Systems int
	Months  int

	Coverage [][]float64
	ROI      [][]float64

	OptimalCounts   []int
	SecretaryCounts []int

	MeanCoverage []float64
	StdCoverage  []float64
	MeanROI      []float64
	StdROI       []float64
}

// Stats flattens the per-count aggregates into rows ordered by system count.
func (r *Result) Stats() []CountStats {
	if r == nil {
		return nil
	}
	hits := make([]int, r.Systems+1)
	for _, n := range r.OptimalCounts {
		if n >= 1 && n <= r.Systems {
			hits[n]++
		}
	}
	out := make([]CountStats, r.Systems)
	for i := range out {
		n := i + 1
		share := 0.0
		if r.Trials > 0 {
			share = float64(hits[n]) / float64(r.Trials)
		}
		out[i] = CountStats{
			Systems:      n,
			Tier:         model.TierFromRank(n),
			MeanCoverage: r.MeanCoverage[i],
			StdCoverage:  r.StdCoverage[i],
			MeanROI:      r.MeanROI[i],
			StdROI:       r.StdROI[i],
			OptimalShare: share,
		}
	}
	return out
}
