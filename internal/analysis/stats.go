package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution summarizes the per-trial optimal stopping counts.
type Distribution struct {
	Count  int
	Mean   float64
	Median float64
	Mode   float64
	Std    float64
	Min    int
	Max    int
}

// Describe computes the summary. Std is the population standard deviation;
// Median interpolates linearly between the two middle order statistics.
func Describe(counts []int) Distribution {
	d := Distribution{}
	if len(counts) == 0 {
		return d
	}
	vals := make([]float64, len(counts))
	d.Min, d.Max = counts[0], counts[0]
	for i, c := range counts {
		vals[i] = float64(c)
		if c < d.Min {
			d.Min = c
		}
		if c > d.Max {
			d.Max = c
		}
	}
	d.Count = len(vals)
	d.Mean, d.Std = stat.PopMeanStdDev(vals, nil)
	d.Mode, _ = stat.Mode(vals, nil)

	sort.Float64s(vals)
	d.Median = percentileSorted(vals, 0.5)
	return d
}

// Histogram returns the normalized frequency of each count in [1, n];
// index i holds count i+1.
func Histogram(counts []int, n int) []float64 {
	out := make([]float64, n)
	if len(counts) == 0 {
		return out
	}
	for _, c := range counts {
		if c >= 1 && c <= n {
			out[c-1]++
		}
	}
	for i := range out {
		out[i] /= float64(len(counts))
	}
	return out
}

// SecretaryOptimum is the classical N/e stopping threshold.
func SecretaryOptimum(n int) float64 {
	return float64(n) / math.E
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
