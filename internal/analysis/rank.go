package analysis

import (
	"sort"

	"ats-coverage/internal/simulation"
)

// RankByMeanROI returns the per-count stats sorted by mean ROI, highest
// first. Equal ROI keeps the smaller system count first.
func RankByMeanROI(res *simulation.Result) []simulation.CountStats {
	out := res.Stats()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeanROI > out[j].MeanROI
	})
	return out
}

// ArgMaxMeanROI is the system count with the highest mean ROI (first wins).
func ArgMaxMeanROI(res *simulation.Result) int {
	best := 0
	for i, v := range res.MeanROI {
		if best == 0 || v > res.MeanROI[best-1] {
			best = i + 1
		}
	}
	return best
}

// Milestone is one row of the coverage/ROI milestone table.
type Milestone struct {
	Systems      int
	MeanCoverage float64
	StdCoverage  float64
	MeanROI      float64
	StdROI       float64
	IsMaximum    bool
}

// Milestones picks the given system counts; counts outside the result are
// skipped.
func Milestones(res *simulation.Result, counts []int) []Milestone {
	peak := ArgMaxMeanROI(res)
	out := make([]Milestone, 0, len(counts))
	for _, n := range counts {
		if n < 1 || n > res.Systems {
			continue
		}
		out = append(out, Milestone{
			Systems:      n,
			MeanCoverage: res.MeanCoverage[n-1],
			StdCoverage:  res.StdCoverage[n-1],
			MeanROI:      res.MeanROI[n-1],
			StdROI:       res.StdROI[n-1],
			IsMaximum:    n == peak,
		})
	}
	return out
}
