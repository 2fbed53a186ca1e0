package strategy

import "math"

// MaxROI is the hindsight-optimal stopping point: the system count with the
// highest ROI. Ties go to the smallest count.
type MaxROI struct{}

func (MaxROI) Name() string { return "max-roi" }

func (MaxROI) Decide(ctx Context) int {
	best := math.Inf(-1)
	optimal := 0
	for i, roi := range ctx.ROI {
		// strict > keeps the first occurrence on ties
		if roi > best {
			best = roi
			optimal = i + 1
		}
	}
	return optimal
}
