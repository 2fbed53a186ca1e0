package strategy

import "math"

// Secretary applies the classical 1/e observe-then-commit rule to the ROI
// curve: skip the first floor(N/e) counts, then stop at the first count whose
// ROI beats everything seen so far. If nothing does, it tests all N.
type Secretary struct{}

func (Secretary) Name() string { return "secretary" }

// Cutoff is the number of counts observed before committing.
func Cutoff(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(float64(n) / math.E))
}

func (Secretary) Decide(ctx Context) int {
	n := len(ctx.ROI)
	if n == 0 {
		return 0
	}
	k := Cutoff(n)
	if k == 0 {
		return 1
	}
	threshold := math.Inf(-1)
	for _, roi := range ctx.ROI[:k] {
		if roi > threshold {
			threshold = roi
		}
	}
	for i := k; i < n; i++ {
		if ctx.ROI[i] > threshold {
			return i + 1
		}
	}
	return n
}
