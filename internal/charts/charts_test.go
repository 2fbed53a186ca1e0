package charts

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"ats-coverage/internal/model"
	"ats-coverage/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T) *simulation.Result {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.Trials = 200
	res, err := simulation.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).Run()
	require.NoError(t, err)
	return res
}

func sampleMarket() *model.Market {
	return &model.Market{
		Tier1: []model.System{
			{Name: "Workday", MarketShare: 15.2},
			{Name: "SAP SuccessFactors", MarketShare: 11.5},
			{Name: "Oracle Taleo", MarketShare: 9.8},
			{Name: "iCIMS", MarketShare: 7.3},
			{Name: "Greenhouse", MarketShare: 5.7},
		},
		Tier2: []model.System{
			{Name: "Lever", MarketShare: 4.5},
			{Name: "SmartRecruiters", MarketShare: 3.8},
			{Name: "BambooHR", MarketShare: 1.7},
		},
	}
}

func assertFiles(t *testing.T, dir string, paths []string, names ...string) {
	t.Helper()
	require.Len(t, paths, len(names))
	for i, name := range names {
		assert.Equal(t, filepath.Join(dir, name), paths[i])
		assert.FileExists(t, paths[i])
	}
}

func TestRenderSimulation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	paths, err := RenderSimulation(dir, run(t), sampleMarket())
	require.NoError(t, err)
	assertFiles(t, dir, paths, FileCoverageVsSystems, FileROIVsSystems, FileMarginalGain, FileOptimalDistribution)
}

func TestRenderSimulationWithoutOverlay(t *testing.T) {
	dir := t.TempDir()
	paths, err := RenderSimulation(dir, run(t), nil)
	require.NoError(t, err)
	assert.Len(t, paths, 4)
}

func TestRenderPresentationIllustrative(t *testing.T) {
	dir := t.TempDir()
	paths, err := RenderPresentation(dir, Illustrative(), sampleMarket(), model.DefaultEconomics(), 12)
	require.NoError(t, err)
	assertFiles(t, dir, paths,
		FileROIVsSystems, FileMarketCoverage, FileMarginalGain,
		FileRegionalDistribution, FileCostBreakdown, FileSensitivityHeatmap)

	// Rendering twice into the same directory overwrites.
	_, err = RenderPresentation(dir, Illustrative(), sampleMarket(), model.DefaultEconomics(), 12)
	require.NoError(t, err)
}

func TestRenderPresentationEmptyMarket(t *testing.T) {
	dir := t.TempDir()
	paths, err := RenderPresentation(dir, Illustrative(), &model.Market{}, model.DefaultEconomics(), 12)
	require.NoError(t, err)
	assert.Len(t, paths, 6)
}

func TestLiveDataset(t *testing.T) {
	res := run(t)
	ds, err := Live(res, model.DefaultEconomics())
	require.NoError(t, err)

	assert.Equal(t, "simulation", ds.Source)
	assert.Equal(t, []int{5, 10, 15, 20, 34}, ds.Milestones)
	assert.Len(t, ds.ROI12, 5)
	assert.Len(t, ds.ROI24, 5)
	for i := range ds.ROI12 {
		assert.Greater(t, ds.ROI24[i], ds.ROI12[i], "longer horizon amortizes the one-time cost")
	}
	assert.GreaterOrEqual(t, ds.OptimalSystems, 1)
	assert.LessOrEqual(t, ds.OptimalSystems, res.Systems)
	assert.Equal(t, res.MeanCoverage[ds.OptimalSystems-1], ds.OptimalCoverage)
	require.Len(t, ds.Sensitivity, len(ds.HourlyRates))
	for _, row := range ds.Sensitivity {
		assert.Len(t, row, len(ds.HoursPerSystem))
	}

	paths, err := RenderPresentation(t.TempDir(), ds, sampleMarket(), model.DefaultEconomics(), 12)
	require.NoError(t, err)
	assert.Len(t, paths, 6)
}

func TestLiveDropsMilestonesBeyondMarket(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Trials = 50
	cfg.Market.Systems = 12
	res, err := simulation.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).Run()
	require.NoError(t, err)

	ds, err := Live(res, model.DefaultEconomics())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 12}, ds.Milestones)
}

func TestLiveSmallMarketRenders(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Trials = 50
	cfg.Market.Systems = 4
	res, err := simulation.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).Run()
	require.NoError(t, err)

	ds, err := Live(res, model.DefaultEconomics())
	require.NoError(t, err)
	assert.Equal(t, []int{4}, ds.Milestones)
	assert.Len(t, ds.ROI12, 1)

	paths, err := RenderPresentation(t.TempDir(), ds, sampleMarket(), model.DefaultEconomics(), 12)
	require.NoError(t, err)
	assert.Len(t, paths, 6)
}

func TestSensitivityHeatmapRejectsMismatchedGrid(t *testing.T) {
	ds := Illustrative()
	ds.Sensitivity = ds.Sensitivity[:2]
	_, err := SensitivityHeatmap(t.TempDir(), ds, model.DefaultEconomics().Cost)
	assert.Error(t, err)
}

func TestSensitivityGridFirstRateOnTop(t *testing.T) {
	g := grid(Illustrative().Sensitivity)
	assert.Equal(t, 5.0, g.Y(0))
	assert.Equal(t, 0.0, g.Y(5))

	tk := ticks([]string{"$50", "$70", "$85"}, true)
	assert.Equal(t, 2.0, tk[0].Value)
	assert.Equal(t, "$50", tk[0].Label)
}

func TestBaseCaseNote(t *testing.T) {
	ds := Illustrative()
	assert.Equal(t, "Base case: $85/hr, 16 hours/system → 15 systems optimal",
		baseCase(ds, model.DefaultEconomics().Cost))

	off := model.DefaultEconomics().Cost
	off.HourlyRate = 90
	assert.Empty(t, baseCase(ds, off))
}

func TestROITitleNamesSource(t *testing.T) {
	assert.Contains(t, roiTitle(Illustrative()), "(illustrative data)")
	assert.Contains(t, roiTitle(Dataset{Source: "simulation", OptimalSystems: 1}), "(simulation data)")
}

func TestTierDividers(t *testing.T) {
	divs := tierDividers(sampleMarket())
	require.Len(t, divs, 2)
	assert.Equal(t, 4.5, divs[0].x)
	assert.Equal(t, 7.5, divs[1].x)

	onlyTier1 := &model.Market{Tier1: sampleMarket().Tier1}
	assert.Empty(t, tierDividers(onlyTier1))
	assert.Empty(t, tierDividers(nil))
}

func TestPieAnglesCoverCircle(t *testing.T) {
	p := &pie{values: []float64{40, 35, 25}}
	starts, sweeps := p.angles()
	require.Len(t, starts, 3)
	total := 0.0
	for _, s := range sweeps {
		total += s
	}
	assert.InDelta(t, 2*3.141592653589793, total, 1e-12)
	assert.InDelta(t, pieStart, starts[0], 1e-12)
}
