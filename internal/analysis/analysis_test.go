package analysis

import (
	"math"
	"testing"

	"ats-coverage/internal/model"
	"ats-coverage/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	d := Describe([]int{3, 5, 5, 7, 10, 12})
	assert.Equal(t, 6, d.Count)
	assert.InDelta(t, 7.0, d.Mean, 1e-12)
	assert.InDelta(t, 6.0, d.Median, 1e-12)
	assert.Equal(t, 5.0, d.Mode)
	assert.InDelta(t, math.Sqrt(58.0/6), d.Std, 1e-12)
	assert.Equal(t, 3, d.Min)
	assert.Equal(t, 12, d.Max)

	odd := Describe([]int{9, 1, 4})
	assert.Equal(t, 4.0, odd.Median)

	assert.Equal(t, Distribution{}, Describe(nil))
}

func TestHistogram(t *testing.T) {
	h := Histogram([]int{1, 2, 2, 4}, 4)
	assert.Equal(t, []float64{0.25, 0.5, 0, 0.25}, h)
	assert.Equal(t, []float64{0, 0}, Histogram(nil, 2))
}

func TestSecretaryOptimum(t *testing.T) {
	assert.InDelta(t, 12.5079, SecretaryOptimum(34), 1e-4)
}

func fixedResult() *simulation.Result {
	return &simulation.Result{
		Trials:        4,
		Systems:       4,
		OptimalCounts: []int{2, 2, 3, 4},
		MeanCoverage:  []float64{40, 70, 90, 100},
		StdCoverage:   []float64{5, 4, 2, 0},
		MeanROI:       []float64{100, 300, 300, 200},
		StdROI:        []float64{10, 20, 30, 40},
	}
}

func TestArgMaxAndMilestones(t *testing.T) {
	res := fixedResult()
	assert.Equal(t, 2, ArgMaxMeanROI(res))

	ms := Milestones(res, []int{1, 2, 9})
	require.Len(t, ms, 2)
	assert.False(t, ms[0].IsMaximum)
	assert.True(t, ms[1].IsMaximum)
	assert.Equal(t, 70.0, ms[1].MeanCoverage)
}

func TestRankByMeanROI(t *testing.T) {
	ranked := RankByMeanROI(fixedResult())
	require.Len(t, ranked, 4)
	assert.Equal(t, 2, ranked[0].Systems)
	assert.Equal(t, 3, ranked[1].Systems)
	assert.Equal(t, 1, ranked[3].Systems)
	assert.InDelta(t, 0.5, ranked[0].OptimalShare, 1e-12)
}

func TestROIAtMatchesModel(t *testing.T) {
	econ := model.DefaultEconomics()
	cov := []float64{10, 20, 30, 40, 49.5}
	got, err := ROIAt(cov, econ, []int{5}, 12)
	require.NoError(t, err)
	want, err := econ.ROI(5, 49.5, 12)
	require.NoError(t, err)
	assert.Equal(t, want, got[0])

	_, err = ROIAt(cov, econ, []int{6}, 12)
	assert.Error(t, err)
}

func TestSensitivityCostlierTestingStopsEarlier(t *testing.T) {
	// diminishing returns: each extra system adds less coverage
	cov := make([]float64, 34)
	sum := 0.0
	for i := range cov {
		sum += 100 * math.Pow(0.85, float64(i)) * 0.15 / (1 - math.Pow(0.85, 34))
		cov[i] = sum
	}
	econ := model.DefaultEconomics()
	grid, err := Sensitivity(cov, econ, []float64{50, 150}, []float64{8, 40}, 12)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	for _, row := range grid {
		for _, n := range row {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 34)
		}
	}
	assert.GreaterOrEqual(t, grid[0][0], grid[1][1])

	econ.Cost.InfrastructureCost = 0
	_, err = Sensitivity(cov, econ, []float64{50}, []float64{8}, 12)
	assert.ErrorIs(t, err, model.ErrInvalidCost)
}
