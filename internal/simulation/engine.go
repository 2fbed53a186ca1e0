package simulation

import (
	"fmt"
	"log/slog"

	"ats-coverage/internal/model"
	"ats-coverage/internal/strategy"

	"gonum.org/v1/gonum/stat"
)

// Config is the immutable input of a simulation run.
type Config struct {
	Trials    int
	Seed      uint64
	Market    model.MarketParams
	Economics model.Economics
	Months    int
}

// DefaultConfig reproduces the reference study: 10,000 trials over 34
// systems, 12-month horizon, seed 42.
func DefaultConfig() Config {
	return Config{
		Trials:    10000,
		Seed:      42,
		Market:    model.DefaultMarketParams(),
		Economics: model.DefaultEconomics(),
		Months:    12,
	}
}

func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be > 0, got %d", c.Trials)
	}
	if c.Months <= 0 {
		return fmt.Errorf("months must be > 0, got %d", c.Months)
	}
	if err := c.Market.Validate(); err != nil {
		return err
	}
	return c.Economics.Validate()
}

const progressEvery = 1000

type Engine struct {
	cfg    Config
	logger *slog.Logger

	optimal   strategy.Strategy
	secretary strategy.Strategy
}

func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:       cfg,
		logger:    logger,
		optimal:   strategy.MaxROI{},
		secretary: strategy.Secretary{},
	}
}

// Run executes every trial sequentially from the configured seed.
func (e *Engine) Run() (*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulation config invalid: %w", err)
	}
	gen, err := NewGenerator(e.cfg.Market, e.cfg.Seed)
	if err != nil {
		return nil, err
	}

	trials, systems := e.cfg.Trials, e.cfg.Market.Systems
	res := &Result{
		Trials:          trials,
		Systems:         systems,
		Months:          e.cfg.Months,
		Coverage:        make([][]float64, trials),
		ROI:             make([][]float64, trials),
		OptimalCounts:   make([]int, trials),
		SecretaryCounts: make([]int, trials),
	}

	e.logger.Info("running monte carlo simulation", "trials", trials, "systems", systems, "seed", e.cfg.Seed)
	for i := 0; i < trials; i++ {
		coverage := gen.Next().Coverage()
		roi := make([]float64, systems)
		for n := 1; n <= systems; n++ {
			v, err := e.cfg.Economics.ROI(n, coverage[n-1], e.cfg.Months)
			if err != nil {
				return nil, fmt.Errorf("trial %d systems %d: %w", i, n, err)
			}
			roi[n-1] = v
		}

		ctx := strategy.Context{Trial: i, ROI: roi, Coverage: coverage}
		res.Coverage[i] = coverage
		res.ROI[i] = roi
		res.OptimalCounts[i] = e.optimal.Decide(ctx)
		res.SecretaryCounts[i] = e.secretary.Decide(ctx)

		if (i+1)%progressEvery == 0 {
			e.logger.Info("progress", "completed", i+1, "total", trials)
		}
	}

	res.MeanCoverage, res.StdCoverage = columnMeanStd(res.Coverage, systems)
	res.MeanROI, res.StdROI = columnMeanStd(res.ROI, systems)
	e.logger.Info("simulation complete", "trials", trials)
	return res, nil
}

// columnMeanStd returns the per-column mean and population standard deviation.
func columnMeanStd(m [][]float64, cols int) (mean, std []float64) {
	mean = make([]float64, cols)
	std = make([]float64, cols)
	col := make([]float64, len(m))
	for j := 0; j < cols; j++ {
		for i, row := range m {
			col[i] = row[j]
		}
		mean[j], std[j] = stat.PopMeanStdDev(col, nil)
	}
	return mean, std
}
