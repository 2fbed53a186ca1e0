package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ats-coverage/internal/charts"
	"ats-coverage/internal/config"
	"ats-coverage/internal/data"
	"ats-coverage/internal/report"
	"ats-coverage/internal/simulation"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type opts struct {
	configPath string
	dataPath   string
	trials     int
	seed       uint64
	verbose    bool

	// simulate
	simulateOut string
	csvPath     string
	noCharts    bool

	// charts
	chartsOut string
	live      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command line and returns the process exit code. Logs go
// to logOut.
func run(args []string, logOut io.Writer) int {
	root := newRootCmd(logOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		return 1
	}
	return 0
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "cli",
		Short: "ATS market coverage study",
		Long: `Monte Carlo study of how many applicant tracking systems (ATS) to test a
CV against. Market shares follow a heavy-tailed Pareto law; each additional
system adds coverage and cost, and the study locates where ROI peaks.

Examples:
  cli simulate --trials 10000 --seed 42
  cli simulate --config examples/config.yaml --csv results/stats.csv
  cli charts --data data/ats-systems.json
  cli charts --live --out visualizations/charts`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if o.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(logOut, &tint.Options{
				Level:      level,
				TimeFormat: time.TimeOnly,
			})))
		},
	}
	root.PersistentFlags().StringVar(&o.configPath, "config", "", "path to YAML config (defaults to the reference study)")
	root.PersistentFlags().StringVar(&o.dataPath, "data", "data/ats-systems.json", "path to the ATS market JSON")
	root.PersistentFlags().IntVar(&o.trials, "trials", 0, "number of trials (overrides config)")
	root.PersistentFlags().Uint64Var(&o.seed, "seed", 0, "random seed (overrides config)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Run the Monte Carlo simulation, print the report and render its charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, o)
		},
	}
	simulate.Flags().StringVar(&o.simulateOut, "out", "visualizations", "output directory for charts")
	simulate.Flags().StringVar(&o.csvPath, "csv", "", "write per-count statistics to CSV file")
	simulate.Flags().BoolVar(&o.noCharts, "no-charts", false, "skip chart rendering")

	chartsCmd := &cobra.Command{
		Use:   "charts",
		Short: "Render the presentation charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharts(cmd, o)
		},
	}
	chartsCmd.Flags().StringVar(&o.chartsOut, "out", filepath.Join("visualizations", "charts"), "output directory for charts")
	chartsCmd.Flags().BoolVar(&o.live, "live", false, "derive ROI and sensitivity figures from a fresh simulation")

	root.AddCommand(simulate, chartsCmd)
	return root
}

func loadConfig(cmd *cobra.Command, o opts) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("trials") {
		cfg.Simulation.Trials = o.trials
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = o.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulate(cmd *cobra.Command, o opts) error {
	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}
	sim := cfg.ToSimulation()
	logger := slog.Default()

	out := cmd.OutOrStdout()
	report.Configuration(out, sim)

	res, err := simulation.New(sim, logger).Run()
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	report.Summary(out, sim, res, cfg.Report.Milestones)

	if o.csvPath != "" {
		if err := simulation.WriteStatsCSV(o.csvPath, res.Stats()); err != nil {
			return err
		}
		logger.Info("wrote statistics", "path", o.csvPath, "rows", res.Systems)
	}

	if o.noCharts {
		return nil
	}
	overlay, err := data.LoadOverlay(o.dataPath, logger)
	if err != nil {
		return err
	}
	paths, err := charts.RenderSimulation(o.simulateOut, res, overlay)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	for _, p := range paths {
		logger.Info("created chart", "path", p)
	}
	return nil
}

func runCharts(cmd *cobra.Command, o opts) error {
	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}
	sim := cfg.ToSimulation()
	logger := slog.Default()

	market, err := data.LoadOverlay(o.dataPath, logger)
	if err != nil {
		return err
	}

	ds := charts.Illustrative()
	if o.live {
		res, err := simulation.New(sim, logger).Run()
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		if ds, err = charts.Live(res, sim.Economics); err != nil {
			return fmt.Errorf("derive chart data: %w", err)
		}
		logger.Debug("live chart data", "optimal_systems", ds.OptimalSystems, "coverage", ds.OptimalCoverage)
	}

	paths, err := charts.RenderPresentation(o.chartsOut, ds, market, sim.Economics, sim.Months)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	for _, p := range paths {
		logger.Info("created chart", "path", p, "source", ds.Source)
	}
	return nil
}
