package config

import (
	"errors"
	"fmt"
	"os"

	"ats-coverage/internal/model"
	"ats-coverage/internal/simulation"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
// Every key is optional; an absent key keeps the reference study value.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Cost       CostConfig       `yaml:"cost"`
	Revenue    RevenueConfig    `yaml:"revenue"`
	Report     ReportConfig     `yaml:"report"`
}

type SimulationConfig struct {
	Trials      int     `yaml:"trials"`
	Seed        uint64  `yaml:"seed"`
	Systems     int     `yaml:"systems"`
	ParetoAlpha float64 `yaml:"pareto_alpha"`
	MinShare    float64 `yaml:"min_share"`
	Months      int     `yaml:"months"`
}

type CostConfig struct {
	HourlyRate                float64 `yaml:"hourly_rate"`
	HoursPerSystem            float64 `yaml:"hours_per_system"`
	InfrastructureCost        float64 `yaml:"infrastructure_cost"`
	MaintenanceHoursPerSystem float64 `yaml:"maintenance_hours_per_system"`
}

type RevenueConfig struct {
	BaseMonthly      float64 `yaml:"base_monthly"`
	PerCoveragePoint float64 `yaml:"per_coverage_point"`
}

type ReportConfig struct {
	// Milestones are the system counts printed in the coverage and ROI tables.
	Milestones []int `yaml:"milestones"`
}

// Default returns the reference study parameters.
func Default() *Config {
	sim := simulation.DefaultConfig()
	return &Config{
		Simulation: SimulationConfig{
			Trials:      sim.Trials,
			Seed:        sim.Seed,
			Systems:     sim.Market.Systems,
			ParetoAlpha: sim.Market.ParetoAlpha,
			MinShare:    sim.Market.MinShare,
			Months:      sim.Months,
		},
		Cost: CostConfig{
			HourlyRate:                sim.Economics.Cost.HourlyRate,
			HoursPerSystem:            sim.Economics.Cost.HoursPerSystem,
			InfrastructureCost:        sim.Economics.Cost.InfrastructureCost,
			MaintenanceHoursPerSystem: sim.Economics.Cost.MaintenanceHoursPerSystem,
		},
		Revenue: RevenueConfig{
			BaseMonthly:      sim.Economics.Revenue.BaseMonthly,
			PerCoveragePoint: sim.Economics.Revenue.PerCoveragePoint,
		},
		Report: ReportConfig{
			Milestones: []int{5, 10, 15, 20, 34},
		},
	}
}

// Load decodes path over the defaults and validates the result. Keys absent
// from the file keep their default; keys present, including explicit zeros,
// replace it. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		if err := decodeFile(path, c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked decodes the YAML file without defaults or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	var c Config
	if err := decodeFile(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func decodeFile(path string, into *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToSimulation().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	for _, m := range c.Report.Milestones {
		if m < 1 || m > c.Simulation.Systems {
			return fmt.Errorf("report.milestones: %d outside [1, %d]", m, c.Simulation.Systems)
		}
	}
	return nil
}

// ToSimulation converts the file shape into the engine's immutable config.
func (c *Config) ToSimulation() simulation.Config {
	return simulation.Config{
		Trials: c.Simulation.Trials,
		Seed:   c.Simulation.Seed,
		Market: model.MarketParams{
			Systems:     c.Simulation.Systems,
			ParetoAlpha: c.Simulation.ParetoAlpha,
			MinShare:    c.Simulation.MinShare,
		},
		Economics: model.Economics{
			Cost: model.CostModel{
				HourlyRate:                c.Cost.HourlyRate,
				HoursPerSystem:            c.Cost.HoursPerSystem,
				InfrastructureCost:        c.Cost.InfrastructureCost,
				MaintenanceHoursPerSystem: c.Cost.MaintenanceHoursPerSystem,
			},
			Revenue: model.RevenueModel{
				BaseMonthly:      c.Revenue.BaseMonthly,
				PerCoveragePoint: c.Revenue.PerCoveragePoint,
			},
		},
		Months: c.Simulation.Months,
	}
}
