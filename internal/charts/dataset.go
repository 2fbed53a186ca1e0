package charts

import (
	"ats-coverage/internal/analysis"
	"ats-coverage/internal/model"
	"ats-coverage/internal/simulation"
)

// Dataset carries the numbers behind the presentation charts.
type Dataset struct {
	// Source is "illustrative" for the literal figures or "simulation" for
	// figures computed from a run.
	Source string

	Milestones []int
	ROI12      []float64
	ROI24      []float64

	OptimalSystems  int
	OptimalCoverage float64

	HourlyRates    []float64
	HoursPerSystem []float64
	// Sensitivity holds the optimal system count, indexed [rate][hours].
	Sensitivity [][]int
}

var (
	defaultMilestones     = []int{5, 10, 15, 20, 34}
	defaultHourlyRates    = []float64{50, 70, 85, 100, 125, 150}
	defaultHoursPerSystem = []float64{8, 12, 16, 24, 32, 40}
)

// Illustrative returns the figures used in the published study. They are
// presentation literals and are not derived from this module's simulation.
func Illustrative() Dataset {
	return Dataset{
		Source:          "illustrative",
		Milestones:      append([]int(nil), defaultMilestones...),
		ROI12:           []float64{456.3, 523.7, 548.2, 512.8, 387.4},
		ROI24:           []float64{685.1, 743.8, 762.9, 724.5, 618.3},
		OptimalSystems:  15,
		OptimalCoverage: 79.5,
		HourlyRates:     append([]float64(nil), defaultHourlyRates...),
		HoursPerSystem:  append([]float64(nil), defaultHoursPerSystem...),
		Sensitivity: [][]int{
			{15, 15, 15, 15, 15, 10},
			{15, 15, 15, 15, 10, 10},
			{15, 15, 15, 10, 10, 10},
			{15, 15, 10, 10, 10, 10},
			{15, 10, 10, 10, 10, 5},
			{10, 10, 10, 10, 5, 5},
		},
	}
}

// liveMilestones keeps the default milestones that fit a market of n systems
// and always ends with full coverage at n.
func liveMilestones(n int) []int {
	var out []int
	for _, m := range defaultMilestones {
		if m < n {
			out = append(out, m)
		}
	}
	return append(out, n)
}

// Live computes the presentation figures from a simulation run: ROI at the
// milestones over 12 and 24 months along the mean coverage curve, and the
// optimal count for every cost pair of the sensitivity grid.
func Live(res *simulation.Result, econ model.Economics) (Dataset, error) {
	ds := Dataset{
		Source:         "simulation",
		HourlyRates:    append([]float64(nil), defaultHourlyRates...),
		HoursPerSystem: append([]float64(nil), defaultHoursPerSystem...),
	}
	ds.Milestones = liveMilestones(res.Systems)

	var err error
	if ds.ROI12, err = analysis.ROIAt(res.MeanCoverage, econ, ds.Milestones, 12); err != nil {
		return Dataset{}, err
	}
	if ds.ROI24, err = analysis.ROIAt(res.MeanCoverage, econ, ds.Milestones, 24); err != nil {
		return Dataset{}, err
	}
	ds.OptimalSystems = analysis.ArgMaxMeanROI(res)
	ds.OptimalCoverage = res.MeanCoverage[ds.OptimalSystems-1]

	ds.Sensitivity, err = analysis.Sensitivity(res.MeanCoverage, econ, ds.HourlyRates, ds.HoursPerSystem, res.Months)
	if err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
