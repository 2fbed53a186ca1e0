package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCost is returned when cost or revenue parameters cannot produce a
// finite, strictly positive total cost.
var ErrInvalidCost = errors.New("invalid cost parameters")

// CostModel defines the linear cost coefficients of testing a set of systems.
// Units:
// - HourlyRate: $/hour (blended)
// - HoursPerSystem: one-time testing hours per system
// - InfrastructureCost: $/month, independent of system count
// - MaintenanceHoursPerSystem: hours/month per system
type CostModel struct {
	HourlyRate                float64
	HoursPerSystem            float64
	InfrastructureCost        float64
	MaintenanceHoursPerSystem float64
}

// RevenueModel maps market coverage (percent) to monthly revenue.
type RevenueModel struct {
	BaseMonthly      float64
	PerCoveragePoint float64
}

// Economics bundles cost and revenue into the ROI model.
type Economics struct {
	Cost    CostModel
	Revenue RevenueModel
}

func DefaultEconomics() Economics {
	return Economics{
		Cost: CostModel{
			HourlyRate:                85,
			HoursPerSystem:            16,
			InfrastructureCost:        500,
			MaintenanceHoursPerSystem: 2,
		},
		Revenue: RevenueModel{
			BaseMonthly:      400000,
			PerCoveragePoint: 8000,
		},
	}
}

func NewEconomics(cost CostModel, revenue RevenueModel) (*Economics, error) {
	e := &Economics{Cost: cost, Revenue: revenue}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (c CostModel) Validate() error {
	if !(c.HourlyRate > 0) {
		return fmt.Errorf("%w: HourlyRate must be > 0", ErrInvalidCost)
	}
	if !(c.HoursPerSystem > 0) {
		return fmt.Errorf("%w: HoursPerSystem must be > 0", ErrInvalidCost)
	}
	if !(c.InfrastructureCost > 0) {
		return fmt.Errorf("%w: InfrastructureCost must be > 0", ErrInvalidCost)
	}
	if !(c.MaintenanceHoursPerSystem >= 0) {
		return fmt.Errorf("%w: MaintenanceHoursPerSystem must be >= 0", ErrInvalidCost)
	}
	return nil
}

func (r RevenueModel) Validate() error {
	if math.IsNaN(r.BaseMonthly) || math.IsInf(r.BaseMonthly, 0) {
		return fmt.Errorf("%w: BaseMonthly must be finite", ErrInvalidCost)
	}
	if math.IsNaN(r.PerCoveragePoint) || math.IsInf(r.PerCoveragePoint, 0) {
		return fmt.Errorf("%w: PerCoveragePoint must be finite", ErrInvalidCost)
	}
	return nil
}

func (e Economics) Validate() error {
	if err := e.Cost.Validate(); err != nil {
		return err
	}
	return e.Revenue.Validate()
}

// Costs returns the one-time testing cost and the recurring monthly cost for
// testing n systems.
func (c CostModel) Costs(n int) (oneTime, monthly float64) {
	oneTime = float64(n) * c.HoursPerSystem * c.HourlyRate
	monthly = c.InfrastructureCost + float64(n)*c.MaintenanceHoursPerSystem*c.HourlyRate
	return oneTime, monthly
}

// Total is the cost of testing n systems over the given horizon.
func (c CostModel) Total(n, months int) float64 {
	oneTime, monthly := c.Costs(n)
	return oneTime + monthly*float64(months)
}

// Monthly returns monthly revenue at the given coverage (percent).
func (r RevenueModel) Monthly(coverage float64) float64 {
	return r.BaseMonthly + coverage*r.PerCoveragePoint
}

// ROI returns the percentage gain of total revenue over total cost for n
// systems at the given coverage over the horizon:
//
//	ROI = (revenue*months - totalCost) / totalCost * 100
func (e Economics) ROI(n int, coverage float64, months int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: system count %d is negative", ErrInvalidCost, n)
	}
	if months <= 0 {
		return 0, fmt.Errorf("%w: months must be > 0, got %d", ErrInvalidCost, months)
	}
	if err := e.Cost.Validate(); err != nil {
		return 0, err
	}
	totalCost := e.Cost.Total(n, months)
	if !(totalCost > 0) || math.IsInf(totalCost, 0) {
		return 0, fmt.Errorf("%w: total cost %v for %d systems", ErrInvalidCost, totalCost, n)
	}
	totalRevenue := e.Revenue.Monthly(coverage) * float64(months)
	roi := ((totalRevenue - totalCost) / totalCost) * 100
	if math.IsNaN(roi) || math.IsInf(roi, 0) {
		return 0, fmt.Errorf("%w: roi not finite for %d systems at %.2f%% coverage", ErrInvalidCost, n, coverage)
	}
	return roi, nil
}
