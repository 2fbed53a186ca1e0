package report

import (
	"fmt"
	"io"
	"strings"

	"ats-coverage/internal/analysis"
	"ats-coverage/internal/simulation"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ruleWidth = 80

var printer = message.NewPrinter(language.English)

func rule(w io.Writer, ch string) {
	fmt.Fprintln(w, strings.Repeat(ch, ruleWidth))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	rule(w, "-")
}

// Configuration prints the run banner.
func Configuration(w io.Writer, cfg simulation.Config) {
	fmt.Fprintln(w)
	rule(w, "=")
	fmt.Fprintln(w, "ATS MARKET COVERAGE - MONTE CARLO SIMULATION")
	rule(w, "=")
	fmt.Fprintln(w, "\nConfiguration:")
	printer.Fprintf(w, "  Simulations:    %d\n", cfg.Trials)
	fmt.Fprintf(w, "  ATS Systems:    %d\n", cfg.Market.Systems)
	fmt.Fprintf(w, "  Pareto Alpha:   %g\n", cfg.Market.ParetoAlpha)
	fmt.Fprintf(w, "  Seed:           %d\n", cfg.Seed)
	fmt.Fprintf(w, "  Cost Model:     $%g/hr, %gh per system\n", cfg.Economics.Cost.HourlyRate, cfg.Economics.Cost.HoursPerSystem)
	printer.Fprintf(w, "  Revenue Model:  $%.0f base + $%.0f per %%\n", cfg.Economics.Revenue.BaseMonthly, cfg.Economics.Revenue.PerCoveragePoint)
	fmt.Fprintln(w)
}

// Summary prints the statistics of a finished run.
func Summary(w io.Writer, cfg simulation.Config, res *simulation.Result, milestones []int) {
	fmt.Fprintln(w)
	rule(w, "=")
	fmt.Fprintln(w, "MONTE CARLO SIMULATION RESULTS")
	rule(w, "=")

	dist := analysis.Describe(res.OptimalCounts)
	section(w, "OPTIMAL STOPPING POINT")
	fmt.Fprintf(w, "  Mean:   %.2f systems\n", dist.Mean)
	fmt.Fprintf(w, "  Median: %.0f systems\n", dist.Median)
	fmt.Fprintf(w, "  Mode:   %.0f systems\n", dist.Mode)
	fmt.Fprintf(w, "  Std:    %.2f systems\n", dist.Std)

	rows := analysis.Milestones(res, milestones)
	section(w, "MARKET COVERAGE")
	for _, m := range rows {
		fmt.Fprintf(w, "  %2d systems: %5.1f%% (±%.1f%%)\n", m.Systems, m.MeanCoverage, m.StdCoverage)
	}

	section(w, fmt.Sprintf("%d-MONTH ROI", res.Months))
	for _, m := range rows {
		marker := ""
		if m.IsMaximum {
			marker = " ← MAXIMUM"
		}
		fmt.Fprintf(w, "  %2d systems: %6.1f%% (±%.1f%%)%s\n", m.Systems, m.MeanROI, m.StdROI, marker)
	}

	n := res.Systems
	optimalN := int(dist.Median)
	if optimalN < 1 {
		optimalN = 1
	}
	theoretical := analysis.SecretaryOptimum(n)
	secretary := analysis.Describe(res.SecretaryCounts)
	section(w, "SECRETARY PROBLEM COMPARISON")
	fmt.Fprintf(w, "  Theoretical optimal: %.1f systems (%.1f%%)\n", theoretical, theoretical/float64(n)*100)
	fmt.Fprintf(w, "  Empirical optimal:   %.0f systems (%.1f%%)\n", dist.Median, dist.Median/float64(n)*100)
	fmt.Fprintf(w, "  Secretary rule:      %.2f systems on average\n", secretary.Mean)
	fmt.Fprintf(w, "  Coverage at optimal: %.1f%%\n", res.MeanCoverage[optimalN-1])

	section(w, "KEY INSIGHTS")
	optimalCov := res.MeanCoverage[optimalN-1]
	optimalROI := res.MeanROI[optimalN-1]
	fullROI := res.MeanROI[n-1]
	savedHours := float64(n-optimalN) * cfg.Economics.Cost.HoursPerSystem
	fmt.Fprintf(w, "  ✓ Testing %d systems covers %.1f%% of market\n", optimalN, optimalCov)
	fmt.Fprintf(w, "  ✓ %d-month ROI: %.1f%% vs %.1f%% for full coverage\n", res.Months, optimalROI, fullROI)
	fmt.Fprintf(w, "  ✓ Saves %.0f testing hours\n", savedHours)
	fmt.Fprintf(w, "  ✓ Diminishing returns after top %d systems\n", optimalN)
	if ranked := analysis.RankByMeanROI(res); len(ranked) > 0 {
		best := ranked[0]
		fmt.Fprintf(w, "  ✓ Highest mean ROI at %d systems (%.1f%%)\n", best.Systems, best.MeanROI)
	}

	fmt.Fprintln(w)
	rule(w, "=")
	fmt.Fprintln(w)
}
