package analysis

import (
	"fmt"

	"ats-coverage/internal/model"
	"ats-coverage/internal/strategy"
)

// ROICurve evaluates ROI along a coverage curve for counts 1..len(coverage).
func ROICurve(coverage []float64, econ model.Economics, months int) ([]float64, error) {
	out := make([]float64, len(coverage))
	for i, c := range coverage {
		v, err := econ.ROI(i+1, c, months)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ROIAt evaluates ROI at the given system counts along a coverage curve.
func ROIAt(coverage []float64, econ model.Economics, counts []int, months int) ([]float64, error) {
	out := make([]float64, len(counts))
	for i, n := range counts {
		if n < 1 || n > len(coverage) {
			return nil, fmt.Errorf("system count %d outside [1, %d]", n, len(coverage))
		}
		v, err := econ.ROI(n, coverage[n-1], months)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Sensitivity returns the ROI-maximizing system count along the coverage
// curve for every (hourly rate, hours per system) pair. The grid is indexed
// [rate][hours].
func Sensitivity(coverage []float64, econ model.Economics, rates, hours []float64, months int) ([][]int, error) {
	grid := make([][]int, len(rates))
	for i, rate := range rates {
		grid[i] = make([]int, len(hours))
		for j, h := range hours {
			e := econ
			e.Cost.HourlyRate = rate
			e.Cost.HoursPerSystem = h
			curve, err := ROICurve(coverage, e, months)
			if err != nil {
				return nil, fmt.Errorf("rate %v hours %v: %w", rate, h, err)
			}
			grid[i][j] = strategy.MaxROI{}.Decide(strategy.Context{ROI: curve, Coverage: coverage})
		}
	}
	return grid, nil
}
