package model

import (
	"errors"
	"fmt"
)

// ErrInvalidMarket is returned for market parameters that cannot produce a
// normalized share vector.
var ErrInvalidMarket = errors.New("invalid market parameters")

// MarketParams configures the synthetic market-share distribution.
// Shares follow a Lomax (Pareto II) law shifted by MinShare; Alpha < 1 gives a
// heavy tail where a few market leaders dominate.
type MarketParams struct {
	Systems     int
	ParetoAlpha float64
	MinShare    float64
}

func DefaultMarketParams() MarketParams {
	return MarketParams{
		Systems:     34,
		ParetoAlpha: 0.8,
		MinShare:    0.5,
	}
}

func (p MarketParams) Validate() error {
	if p.Systems <= 0 {
		return fmt.Errorf("%w: Systems must be > 0", ErrInvalidMarket)
	}
	if !(p.ParetoAlpha > 0) {
		return fmt.Errorf("%w: ParetoAlpha must be > 0", ErrInvalidMarket)
	}
	if !(p.MinShare >= 0) {
		return fmt.Errorf("%w: MinShare must be >= 0", ErrInvalidMarket)
	}
	return nil
}

// System is one ATS entry of the market data file.
type System struct {
	Name        string  `json:"name"`
	MarketShare float64 `json:"marketShare"`
}

// Market is the ranked system list. Tier1 precedes Tier2 in rank order.
type Market struct {
	Tier1 []System `json:"tier1"`
	Tier2 []System `json:"tier2"`
}

// Ranked returns tier1 followed by tier2; position i has rank i+1.
func (m *Market) Ranked() []System {
	if m == nil {
		return nil
	}
	out := make([]System, 0, len(m.Tier1)+len(m.Tier2))
	out = append(out, m.Tier1...)
	return append(out, m.Tier2...)
}

func (m *Market) Empty() bool {
	return m == nil || len(m.Tier1)+len(m.Tier2) == 0
}

// Coverage returns the cumulative market share by rank.
func (m *Market) Coverage() []float64 {
	ranked := m.Ranked()
	out := make([]float64, len(ranked))
	sum := 0.0
	for i, s := range ranked {
		sum += s.MarketShare
		out[i] = sum
	}
	return out
}
