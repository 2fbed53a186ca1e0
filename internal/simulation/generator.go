package simulation

import (
	"math/rand/v2"
	"sort"

	"ats-coverage/internal/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Scenario is one synthetic market: shares in percent, summing to 100,
// ranked descending (index 0 is the market leader).
type Scenario []float64

// Generator draws market scenarios from a shifted Lomax distribution.
type Generator struct {
	params model.MarketParams
	pareto distuv.Pareto
}

func NewGenerator(params model.MarketParams, seed uint64) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		params: params,
		pareto: distuv.Pareto{
			Xm:    1,
			Alpha: params.ParetoAlpha,
			Src:   rand.NewPCG(seed, seed),
		},
	}, nil
}

// Next returns a fresh scenario. Shares are normalized before they are
// ranked, so sampling noise is applied ahead of rank assignment.
func (g *Generator) Next() Scenario {
	shares := make([]float64, g.params.Systems)
	for i := range shares {
		// Lomax = Pareto(xm=1) - 1
		shares[i] = g.pareto.Rand() - 1 + g.params.MinShare
	}
	floats.Scale(100/floats.Sum(shares), shares)
	sort.Sort(sort.Reverse(sort.Float64Slice(shares)))
	return shares
}

// Coverage returns the cumulative coverage curve of the scenario.
func (s Scenario) Coverage() []float64 {
	return floats.CumSum(make([]float64, len(s)), s)
}
