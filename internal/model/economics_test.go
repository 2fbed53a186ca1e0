package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostsMatchMilestoneTable(t *testing.T) {
	c := DefaultEconomics().Cost

	oneTime, monthly := c.Costs(5)
	assert.Equal(t, 6800.0, oneTime)
	assert.Equal(t, 1350.0, monthly)

	oneTime, monthly = c.Costs(34)
	assert.Equal(t, 46240.0, oneTime)
	assert.Equal(t, 6280.0, monthly)
}

func TestRevenueMonthly(t *testing.T) {
	r := DefaultEconomics().Revenue
	assert.Equal(t, 796000.0, r.Monthly(49.5))
	assert.Equal(t, 400000.0, r.Monthly(0))
}

func TestROIReferenceValue(t *testing.T) {
	e := DefaultEconomics()

	roi, err := e.ROI(5, 49.5, 12)
	require.NoError(t, err)

	want := ((796000.0 * 12) - (6800.0 + 1350.0*12)) / (6800.0 + 1350.0*12) * 100
	assert.Equal(t, want, roi)
	assert.InDelta(t, 41430.4347826087, roi, 1e-9)
}

func TestROIIsPure(t *testing.T) {
	e := DefaultEconomics()
	first, err := e.ROI(15, 79.5, 12)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.ROI(15, 79.5, 12)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestROIFailsFastOnBadCost(t *testing.T) {
	cases := map[string]CostModel{
		"zero rate":      {HourlyRate: 0, HoursPerSystem: 16, InfrastructureCost: 500, MaintenanceHoursPerSystem: 2},
		"negative hours": {HourlyRate: 85, HoursPerSystem: -1, InfrastructureCost: 500, MaintenanceHoursPerSystem: 2},
		"zero infra":     {HourlyRate: 85, HoursPerSystem: 16, InfrastructureCost: 0, MaintenanceHoursPerSystem: 2},
		"negative maint": {HourlyRate: 85, HoursPerSystem: 16, InfrastructureCost: 500, MaintenanceHoursPerSystem: -2},
		"nan rate":       {HourlyRate: math.NaN(), HoursPerSystem: 16, InfrastructureCost: 500, MaintenanceHoursPerSystem: 2},
	}
	for name, cost := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewEconomics(cost, DefaultEconomics().Revenue)
			assert.ErrorIs(t, err, ErrInvalidCost)
		})
	}
}

func TestROIRejectsNonPositiveTotalCost(t *testing.T) {
	e := Economics{
		Cost:    CostModel{HourlyRate: -85, HoursPerSystem: 16, InfrastructureCost: -500},
		Revenue: DefaultEconomics().Revenue,
	}
	roi, err := e.ROI(5, 49.5, 12)
	assert.ErrorIs(t, err, ErrInvalidCost)
	assert.Zero(t, roi)

	e = Economics{Revenue: DefaultEconomics().Revenue}
	_, err = e.ROI(0, 0, 12)
	assert.ErrorIs(t, err, ErrInvalidCost)

	_, err = DefaultEconomics().ROI(5, 49.5, 0)
	assert.ErrorIs(t, err, ErrInvalidCost)
}

func TestTierFromRank(t *testing.T) {
	assert.Equal(t, TierOne, TierFromRank(1))
	assert.Equal(t, TierOne, TierFromRank(5))
	assert.Equal(t, TierTwo, TierFromRank(6))
	assert.Equal(t, TierTwo, TierFromRank(15))
	assert.Equal(t, TierLongTail, TierFromRank(16))
}

func TestMarketCoverage(t *testing.T) {
	m := &Market{
		Tier1: []System{{Name: "a", MarketShare: 10}, {Name: "b", MarketShare: 5}},
		Tier2: []System{{Name: "c", MarketShare: 2.5}},
	}
	assert.Equal(t, []float64{10, 15, 17.5}, m.Coverage())
	assert.Equal(t, "c", m.Ranked()[2].Name)

	var empty *Market
	assert.True(t, empty.Empty())
	assert.Empty(t, empty.Coverage())
}
