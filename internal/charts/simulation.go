package charts

import (
	"fmt"
	"image/color"

	"ats-coverage/internal/analysis"
	"ats-coverage/internal/model"
	"ats-coverage/internal/simulation"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Simulation chart filenames.
const (
	FileCoverageVsSystems   = "coverage_vs_systems.png"
	FileROIVsSystems        = "roi_vs_systems.png"
	FileMarginalGain        = "marginal_gain.png"
	FileOptimalDistribution = "optimal_distribution.png"
)

// RenderSimulation writes the four charts derived from a simulation run and
// returns their paths. An empty overlay omits the real-data series.
func RenderSimulation(dir string, res *simulation.Result, overlay *model.Market) ([]string, error) {
	renderers := []func(string, *simulation.Result, *model.Market) (string, error){
		CoverageVsSystems,
		ROIVsSystems,
		func(dir string, res *simulation.Result, _ *model.Market) (string, error) { return MarginalGain(dir, res) },
		func(dir string, res *simulation.Result, _ *model.Market) (string, error) { return OptimalDistribution(dir, res) },
	}
	paths := make([]string, 0, len(renderers))
	for _, render := range renderers {
		path, err := render(dir, res, overlay)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func CoverageVsSystems(dir string, res *simulation.Result, overlay *model.Market) (string, error) {
	n := res.Systems
	xs := xsRange(n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range xs {
		lo[i] = res.MeanCoverage[i] - res.StdCoverage[i]
		hi[i] = res.MeanCoverage[i] + res.StdCoverage[i]
	}

	p := newPlot(
		fmt.Sprintf("Market Coverage vs Systems Tested\n(Monte Carlo: %d Simulations)", res.Trials),
		"Number of ATS Systems Tested",
		"Cumulative Market Coverage (%)",
	)
	p.X.Min, p.X.Max = 0, float64(n+1)
	p.Y.Min, p.Y.Max = 0, 105

	std, err := band(xs, lo, hi, fade(colorBlue, 0x4d))
	if err != nil {
		return "", err
	}
	mean, err := newLine(toXYs(xs, res.MeanCoverage), colorBlue, vg.Points(2.5), nil)
	if err != nil {
		return "", err
	}
	p.Add(std, mean)
	p.Legend.Add("Simulation Mean", mean)
	p.Legend.Add("±1 Std Dev", std)

	if !overlay.Empty() {
		observed := overlay.Coverage()
		l, s, err := plotter.NewLinePoints(toXYs(xsRange(len(observed)), observed))
		if err != nil {
			return "", err
		}
		l.LineStyle.Color = fade(colorRed, 0xb3)
		l.LineStyle.Width = vg.Points(2)
		s.GlyphStyle.Color = fade(colorRed, 0xb3)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(l, s)
		p.Legend.Add("Real Market Data", l, s)
	}

	peak := analysis.ArgMaxMeanROI(res)
	peakCov := res.MeanCoverage[peak-1]
	v, err := vline(float64(peak), 0, 105, colorGreen)
	if err != nil {
		return "", err
	}
	h, err := hline(peakCov, 0, float64(n+1), fade(colorGreen, 0x80), dashed)
	if err != nil {
		return "", err
	}
	note, err := annotate(float64(peak)+8, peakCov-15, fmt.Sprintf("%.1f%% coverage\nat %d systems", peakCov, peak))
	if err != nil {
		return "", err
	}
	p.Add(v, h, note)
	p.Legend.Add(fmt.Sprintf("Optimal: %d systems", peak), v)

	return save(p, dir, FileCoverageVsSystems, chartWidth, chartHeight)
}

func ROIVsSystems(dir string, res *simulation.Result, _ *model.Market) (string, error) {
	n := res.Systems
	xs := xsRange(n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range xs {
		lo[i] = res.MeanROI[i] - res.StdROI[i]
		hi[i] = res.MeanROI[i] + res.StdROI[i]
	}

	p := newPlot(
		fmt.Sprintf("Return on Investment vs Systems Tested\n(%d-Month Time Horizon)", res.Months),
		"Number of ATS Systems Tested",
		fmt.Sprintf("%d-Month ROI (%%)", res.Months),
	)
	p.X.Min, p.X.Max = 0, float64(n+1)
	p.Legend.Top = true

	std, err := band(xs, lo, hi, fade(colorRed, 0x4d))
	if err != nil {
		return "", err
	}
	mean, err := newLine(toXYs(xs, res.MeanROI), colorRed, vg.Points(2.5), nil)
	if err != nil {
		return "", err
	}
	p.Add(std, mean)
	p.Legend.Add("Mean ROI", mean)
	p.Legend.Add("±1 Std Dev", std)

	peak := analysis.ArgMaxMeanROI(res)
	peakROI := res.MeanROI[peak-1]
	top := peakROI + res.StdROI[peak-1] + 50
	v, err := vline(float64(peak), 0, top, colorGreen)
	if err != nil {
		return "", err
	}
	zero, err := hline(0, 0, float64(n+1), fade(colorBlack, 0x4d), nil)
	if err != nil {
		return "", err
	}
	note, err := annotate(float64(peak)+8, peakROI+50, fmt.Sprintf("Peak ROI: %.1f%%\nat %d systems", peakROI, peak))
	if err != nil {
		return "", err
	}
	p.Add(v, zero, note)
	p.Legend.Add(fmt.Sprintf("Max ROI: %d systems", peak), v)

	return save(p, dir, FileROIVsSystems, chartWidth, chartHeight)
}

// MarginalGain plots the share each additional system adds to mean coverage.
func MarginalGain(dir string, res *simulation.Result) (string, error) {
	gain := make(plotter.Values, res.Systems)
	prev := 0.0
	for i, c := range res.MeanCoverage {
		gain[i] = c - prev
		prev = c
	}

	p := newPlot(
		"Marginal Gain per System (Diminishing Returns)\nPareto Distribution",
		"ATS System Rank",
		"Marginal Market Share (%)",
	)
	p.X.Min, p.X.Max = 0, float64(res.Systems+1)
	p.Legend.Top = true

	bars, err := plotter.NewBarChart(gain, vg.Points(14))
	if err != nil {
		return "", err
	}
	bars.XMin = 1
	bars.Color = fade(colorPrimary, 0xb3)
	bars.LineStyle.Color = colorBlack
	p.Add(bars)

	maxGain := 0.0
	for _, g := range gain {
		if g > maxGain {
			maxGain = g
		}
	}
	tier1, err := vline(model.TierOneSize+0.5, 0, maxGain, colorOrange)
	if err != nil {
		return "", err
	}
	tier2, err := vline(model.TierTwoEnd+0.5, 0, maxGain, colorRed)
	if err != nil {
		return "", err
	}
	p.Add(tier1, tier2)
	p.Legend.Add("Tier 1 → Tier 2", tier1)
	p.Legend.Add("Tier 2 → Long Tail", tier2)

	return save(p, dir, FileMarginalGain, chartWidth, chartHeight)
}

// OptimalDistribution plots the density of per-trial optimal stopping counts.
func OptimalDistribution(dir string, res *simulation.Result) (string, error) {
	dist := analysis.Describe(res.OptimalCounts)
	density := plotter.Values(analysis.Histogram(res.OptimalCounts, res.Systems))

	p := newPlot(
		fmt.Sprintf("Distribution of Optimal Stopping Points\n(%d Monte Carlo Simulations)", res.Trials),
		"Optimal Number of Systems",
		"Probability Density",
	)
	p.X.Min, p.X.Max = 0, float64(res.Systems+1)
	p.Y.Min = 0
	p.Legend.Top = true

	bars, err := plotter.NewBarChart(density, vg.Points(14))
	if err != nil {
		return "", err
	}
	bars.XMin = 1
	bars.Color = fade(colorPurple, 0xb3)
	bars.LineStyle.Color = colorBlack
	p.Add(bars)

	top := 0.0
	for _, d := range density {
		if d > top {
			top = d
		}
	}
	for _, m := range []struct {
		label string
		x     float64
		clr   color.Color
	}{
		{fmt.Sprintf("Median: %.0f", dist.Median), dist.Median, colorRed},
		{fmt.Sprintf("Mean: %.1f", dist.Mean), dist.Mean, colorGreen},
		{fmt.Sprintf("Mode: %.0f", dist.Mode), dist.Mode, colorBlue},
	} {
		l, err := vline(m.x, 0, top, m.clr)
		if err != nil {
			return "", err
		}
		p.Add(l)
		p.Legend.Add(m.label, l)
	}

	box, err := annotate(float64(res.Systems)*0.7, top*0.85, fmt.Sprintf(
		"Statistics:\nMean: %.2f\nMedian: %.0f\nMode: %.0f\nStd Dev: %.2f",
		dist.Mean, dist.Median, dist.Mode, dist.Std,
	))
	if err != nil {
		return "", err
	}
	p.Add(box)

	return save(p, dir, FileOptimalDistribution, chartWidth, chartHeight)
}
