package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"ats-coverage/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Presentation chart filenames. FileROIVsSystems and FileMarginalGain are
// shared with the simulation set.
const (
	FileMarketCoverage       = "market_coverage.png"
	FileRegionalDistribution = "regional_distribution.png"
	FileCostBreakdown        = "cost_breakdown.png"
	FileSensitivityHeatmap   = "sensitivity_heatmap.png"
)

// Estimated cumulative coverage past the ranked systems of the data file.
var longTail = plotter.XYs{{X: 20, Y: 87.3}, {X: 25, Y: 92.1}, {X: 30, Y: 96.2}, {X: 34, Y: 100}}

// Tier boundaries used when no market data is available.
const (
	defaultTier1Coverage = 49.5
	defaultTier2Coverage = 79.5
)

type region struct {
	name   string
	share  float64
	value  float64 // $M
	traits string
}

var regions = []region{
	{name: "Americas", share: 40, value: 2720, traits: "U.S.-dominated\nIntegration-focused"},
	{name: "EMEA", share: 35, value: 2380, traits: "GDPR compliance\nMultilingual"},
	{name: "APAC", share: 25, value: 1700, traits: "Fastest growth (18%)\nMobile-first"},
}

// RenderPresentation writes the six presentation charts into dir and returns
// their paths. An empty market omits the real-data series.
func RenderPresentation(dir string, ds Dataset, market *model.Market, econ model.Economics, months int) ([]string, error) {
	renderers := []func() (string, error){
		func() (string, error) { return ROIComparison(dir, ds) },
		func() (string, error) { return MarketCoverage(dir, market) },
		func() (string, error) { return SystemShares(dir, market) },
		func() (string, error) { return RegionalDistribution(dir) },
		func() (string, error) { return CostBreakdown(dir, ds.Milestones, econ, months) },
		func() (string, error) { return SensitivityHeatmap(dir, ds, econ.Cost) },
	}
	paths := make([]string, 0, len(renderers))
	for _, render := range renderers {
		path, err := render()
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func nominal(counts []int) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = strconv.Itoa(c)
	}
	return out
}

func newBars(vals []float64, width vg.Length, c color.RGBA) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(plotter.Values(vals), width)
	if err != nil {
		return nil, err
	}
	b.Color = fade(c, 0xcc)
	b.LineStyle.Width = vg.Points(1.2)
	return b, nil
}

// barLabels places one label above the bar at each index.
func barLabels(vals []float64, format string, align text.XAlignment) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(vals))
	texts := make([]string, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		texts[i] = fmt.Sprintf(format, v)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = align
		l.TextStyle[i].YAlign = text.YBottom
	}
	return l, nil
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

func roiTitle(ds Dataset) string {
	return fmt.Sprintf("ROI Analysis: Optimal Stopping at %d Systems (%s data)\nPeak ROI at %.1f%% Market Coverage",
		ds.OptimalSystems, ds.Source, ds.OptimalCoverage)
}

// ROIComparison draws 12 and 24 month ROI side by side at each milestone.
func ROIComparison(dir string, ds Dataset) (string, error) {
	p := newPlot(
		roiTitle(ds),
		"Number of ATS Systems Tested",
		"Return on Investment (%)",
	)
	w := vg.Points(28)
	short, err := newBars(ds.ROI12, w, colorPrimary)
	if err != nil {
		return "", err
	}
	short.Offset = -w / 2
	long, err := newBars(ds.ROI24, w, colorSuccess)
	if err != nil {
		return "", err
	}
	long.Offset = w / 2
	p.Add(short, long)
	p.Legend.Add("12-Month ROI", short)
	p.Legend.Add("24-Month ROI", long)
	p.Legend.Top = true
	p.NominalX(nominal(ds.Milestones)...)

	l12, err := barLabels(ds.ROI12, "%.0f%%", text.XRight)
	if err != nil {
		return "", err
	}
	l24, err := barLabels(ds.ROI24, "%.0f%%", text.XLeft)
	if err != nil {
		return "", err
	}
	p.Add(l12, l24)

	if i := indexOf(ds.Milestones, ds.OptimalSystems); i >= 0 {
		top := math.Max(ds.ROI12[i], ds.ROI24[i])
		opt, err := vline(float64(i), 0, top*1.1, colorAccent)
		if err != nil {
			return "", err
		}
		note, err := annotate(float64(i)+0.3, top*1.05,
			fmt.Sprintf("Maximum ROI\n%.0f%% (12M)\n%.0f%% (24M)", ds.ROI12[i], ds.ROI24[i]))
		if err != nil {
			return "", err
		}
		p.Add(opt, note)
		p.Legend.Add(fmt.Sprintf("Optimal: %d systems", ds.OptimalSystems), opt)
	}
	return save(p, dir, FileROIVsSystems, chartWidth, chartHeight)
}

// tierBounds returns the cumulative share at the end of tier 1 and tier 2.
func tierBounds(market *model.Market) (float64, float64) {
	if market.Empty() {
		return defaultTier1Coverage, defaultTier2Coverage
	}
	t1 := 0.0
	for _, s := range market.Tier1 {
		t1 += s.MarketShare
	}
	cov := market.Coverage()
	return t1, cov[len(cov)-1]
}

// MarketCoverage draws the cumulative share of the ranked systems, extended
// by the long-tail estimate, over shaded tier regions.
func MarketCoverage(dir string, market *model.Market) (string, error) {
	t1, t2 := tierBounds(market)
	n1, n2 := model.TierOneSize, model.TierTwoEnd
	if !market.Empty() {
		n1, n2 = len(market.Tier1), len(market.Ranked())
	}
	total := longTail[len(longTail)-1].X

	p := newPlot(
		fmt.Sprintf("Market Coverage vs Systems Tested\nPareto Principle: %d Systems = %.1f%% Coverage", n2, t2),
		"Number of ATS Systems Tested",
		"Cumulative Market Coverage (%)",
	)
	p.X.Min, p.X.Max = 0, total+2
	p.Y.Min, p.Y.Max = 0, 105

	for _, s := range []struct {
		lo, hi float64
		c      color.RGBA
		label  string
	}{
		{0, t1, colorTier1, fmt.Sprintf("Tier 1 (Top %d)", n1)},
		{t1, t2, colorTier2, fmt.Sprintf("Tier 2 (%d-%d)", n1+1, n2)},
		{t2, 100, colorLongTail, fmt.Sprintf("Long Tail (%d+)", n2+1)},
	} {
		poly, err := span(0, total+2, s.lo, s.hi, fade(s.c, 0x1a))
		if err != nil {
			return "", err
		}
		p.Add(poly)
		p.Legend.Add(s.label, poly)
	}

	linear, err := newLine(plotter.XYs{{X: 0, Y: 0}, {X: total, Y: 100}}, fade(colorBlack, 0x4d), vg.Points(1.5), dashed)
	if err != nil {
		return "", err
	}
	p.Add(linear)
	p.Legend.Add("Linear", linear)

	curve := plotter.XYs{{X: 0, Y: 0}}
	for i, c := range market.Coverage() {
		curve = append(curve, plotter.XY{X: float64(i + 1), Y: c})
	}
	last := curve[len(curve)-1]
	for _, pt := range longTail {
		if pt.X > last.X {
			curve = append(curve, pt)
		}
	}
	l, s, err := plotter.NewLinePoints(curve)
	if err != nil {
		return "", err
	}
	l.LineStyle.Color = colorPrimary
	l.LineStyle.Width = vg.Points(3)
	s.GlyphStyle.Color = colorPrimary
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(4)
	p.Add(l, s)
	p.Legend.Add("Actual Coverage", l, s)

	marks := []struct {
		x, y  float64
		label string
	}{
		{float64(n1), t1, fmt.Sprintf("Tier 1\n%.1f%%", t1)},
		{float64(n2), t2, fmt.Sprintf("Optimal\n%.1f%%", t2)},
		{total, 100, "Full\n100%"},
	}
	for _, m := range marks {
		v, err := vline(m.x, 0, m.y, fade(colorGray, 0x99))
		if err != nil {
			return "", err
		}
		h, err := hline(m.y, 0, m.x, fade(colorGray, 0x99), dashed)
		if err != nil {
			return "", err
		}
		note, err := annotate(m.x, m.y+2, m.label)
		if err != nil {
			return "", err
		}
		note.TextStyle[0].XAlign = text.XCenter
		p.Add(v, h, note)
	}
	return save(p, dir, FileMarketCoverage, chartWidth, chartHeight)
}

// SystemShares draws one bar per ranked system of the data file, colored by
// tier, with a divider at each tier boundary.
func SystemShares(dir string, market *model.Market) (string, error) {
	p := newPlot(
		"Marginal Gain per System: Diminishing Returns\nPower Law Distribution (Pareto α ≈ 0.8)",
		"ATS System (Ranked by Market Share)",
		"Market Share (%)",
	)
	ranked := market.Ranked()
	if len(ranked) == 0 {
		note, err := annotate(0.5, 0.5, "No market data available")
		if err != nil {
			return "", err
		}
		note.TextStyle[0].XAlign = text.XCenter
		p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = 0, 1, 0, 1
		p.Add(note)
		return save(p, dir, FileMarginalGain, chartWidth, chartHeight)
	}

	tier1 := market.Tier1
	names := make([]string, len(ranked))
	shares := make([]float64, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
		shares[i] = s.MarketShare
	}

	w := vg.Points(30)
	for _, t := range []struct {
		from, to int
		c        color.RGBA
		label    string
	}{
		{0, len(tier1), colorTier1, "Tier 1"},
		{len(tier1), len(ranked), colorTier2, "Tier 2"},
	} {
		if t.from == t.to {
			continue
		}
		b, err := newBars(shares[t.from:t.to], w, t.c)
		if err != nil {
			return "", err
		}
		b.XMin = float64(t.from)
		p.Add(b)
		p.Legend.Add(t.label, b)
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Legend.Top = true

	var significant plotter.XYs
	var texts []string
	for i, v := range shares {
		if i < len(tier1) || v > 2.0 {
			significant = append(significant, plotter.XY{X: float64(i), Y: v})
			texts = append(texts, fmt.Sprintf("%.1f%%", v))
		}
	}
	if len(significant) > 0 {
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: significant, Labels: texts})
		if err != nil {
			return "", err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].XAlign = text.XCenter
		}
		p.Add(l)
	}

	top := floats.Max(shares)
	for _, d := range tierDividers(market) {
		div, err := vline(d.x, 0, top*1.1, d.c)
		if err != nil {
			return "", err
		}
		p.Add(div)
		p.Legend.Add(d.label, div)
	}
	return save(p, dir, FileMarginalGain, chartWidth, chartHeight)
}

type divider struct {
	x     float64
	c     color.RGBA
	label string
}

// tierDividers places a divider after the last system of each non-empty tier.
// Bars sit at x = rank-1.
func tierDividers(market *model.Market) []divider {
	if market.Empty() {
		return nil
	}
	var out []divider
	n1, n := len(market.Tier1), len(market.Ranked())
	if n1 > 0 && n1 < n {
		out = append(out, divider{x: float64(n1) - 0.5, c: colorRed, label: "Tier 1 → Tier 2"})
	}
	if len(market.Tier2) > 0 {
		out = append(out, divider{x: float64(n) - 0.5, c: colorOrange, label: "Tier 2 → Long Tail"})
	}
	return out
}

// RegionalDistribution draws regional shares as a pie next to regional
// market values as bars.
func RegionalDistribution(dir string) (string, error) {
	shares := make([]float64, len(regions))
	values := make([]float64, len(regions))
	names := make([]string, len(regions))
	wedgeLabels := make([]string, len(regions))
	for i, r := range regions {
		shares[i], values[i], names[i] = r.share, r.value, r.name
		wedgeLabels[i] = fmt.Sprintf("%s\n%.1f%%", r.name, r.share)
	}
	colors := []color.RGBA{colorPrimary, colorSecondary, colorAccent}
	wedgeColors := make([]color.Color, len(colors))
	for i, c := range colors {
		wedgeColors[i] = c
	}

	left := plot.New()
	left.Title.Text = fmt.Sprintf("Global Market Share by Region\n$%.1fB Total Market (2026)", floats.Sum(values)/1000)
	left.HideAxes()
	wedges := &pie{
		values:  shares,
		colors:  wedgeColors,
		explode: 0.05,
		line:    draw.LineStyle{Color: colorBlack, Width: vg.Points(2)},
	}
	labels, err := wedges.labels(0.6, wedgeLabels)
	if err != nil {
		return "", err
	}
	left.Add(wedges, labels)

	right := newPlot("Regional Market Values\nCAGR: 12.5% (2023-2026)", "", "Market Value (Millions USD)")
	total := floats.Sum(values)
	for i := range values {
		b, err := plotter.NewBarChart(plotter.Values{values[i]}, vg.Points(60))
		if err != nil {
			return "", err
		}
		b.Color = fade(colors[i], 0xcc)
		b.LineStyle.Width = vg.Points(2)
		b.XMin = float64(i)
		right.Add(b)
	}
	right.NominalX(names...)

	printer := message.NewPrinter(language.English)
	top := make(plotter.XYs, len(values))
	amounts := make([]string, len(values))
	mid := make(plotter.XYs, len(values))
	traits := make([]string, len(values))
	for i, v := range values {
		top[i] = plotter.XY{X: float64(i), Y: v}
		amounts[i] = printer.Sprintf("$%.0fM\n(%.0f%%)", v, v/total*100)
		mid[i] = plotter.XY{X: float64(i), Y: v / 2}
		traits[i] = regions[i].traits
	}
	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: top, Labels: amounts})
	if err != nil {
		return "", err
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].XAlign = text.XCenter
	}
	traitLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: mid, Labels: traits})
	if err != nil {
		return "", err
	}
	for i := range traitLabels.TextStyle {
		traitLabels.TextStyle[i].XAlign = text.XCenter
		traitLabels.TextStyle[i].YAlign = text.YCenter
	}
	right.Add(valueLabels, traitLabels)
	right.Y.Max = floats.Max(values) * 1.2

	return saveTiles(dir, FileRegionalDistribution, [][]*plot.Plot{{left, right}}, 15*vg.Inch, chartHeight)
}

// saveTiles lays plots out on one canvas and writes it as PNG.
func saveTiles(dir, name string, plots [][]*plot.Plot, w, h vg.Length) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Inch / 2,
		PadY:      vg.Inch / 4,
		PadTop:    vg.Inch / 4,
		PadBottom: vg.Inch / 4,
		PadLeft:   vg.Inch / 4,
		PadRight:  vg.Inch / 4,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i, row := range plots {
		for j, p := range row {
			p.Draw(canvases[i][j])
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	defer f.Close()
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return path, f.Close()
}

// CostBreakdown draws the one-time and monthly cost components of the cost
// model at each count, in thousands of dollars.
func CostBreakdown(dir string, counts []int, econ model.Economics, months int) (string, error) {
	testing := make([]float64, len(counts))
	infra := make([]float64, len(counts))
	maint := make([]float64, len(counts))
	totals := make([]float64, len(counts))
	for i, n := range counts {
		oneTime, _ := econ.Cost.Costs(n)
		testing[i] = oneTime / 1000
		infra[i] = econ.Cost.InfrastructureCost / 1000
		maint[i] = float64(n) * econ.Cost.MaintenanceHoursPerSystem * econ.Cost.HourlyRate / 1000
		totals[i] = econ.Cost.Total(n, months) / 1000
	}

	p := newPlot(
		fmt.Sprintf("Cost Breakdown by Number of Systems\n$%.0f/hr Blended Rate, %.0f Hours/System", econ.Cost.HourlyRate, econ.Cost.HoursPerSystem),
		"Number of Systems",
		"Cost ($1,000s)",
	)
	w := vg.Points(22)
	for i, c := range []struct {
		vals  []float64
		col   color.RGBA
		label string
	}{
		{testing, colorPrimary, "One-time Testing"},
		{infra, colorAccent, "Infrastructure (monthly)"},
		{maint, colorSecondary, "Maintenance (monthly)"},
	} {
		b, err := newBars(c.vals, w, c.col)
		if err != nil {
			return "", err
		}
		b.Offset = w * vg.Length(i-1)
		p.Add(b)
		p.Legend.Add(c.label, b)
	}
	p.NominalX(nominal(counts)...)
	p.Legend.Top = true
	p.Legend.Left = true

	pos := make(plotter.XYs, len(counts))
	texts := make([]string, len(counts))
	for i := range counts {
		pos[i] = plotter.XY{X: float64(i), Y: testing[i] + infra[i] + maint[i] + 3}
		texts[i] = fmt.Sprintf("%dM Total:\n$%.0fK", months, totals[i])
	}
	if len(counts) > 0 {
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: pos, Labels: texts})
		if err != nil {
			return "", err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].XAlign = text.XCenter
		}
		p.Add(l)
	}
	return save(p, dir, FileCostBreakdown, chartWidth, chartHeight)
}

// grid adapts the sensitivity matrix to plotter.GridXYZ: columns are hours
// per system, rows are hourly rates. Row 0 is drawn at the top.
type grid [][]int

func (g grid) Dims() (c, r int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g[0]), len(g)
}
func (g grid) Z(c, r int) float64 { return float64(g[r][c]) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(len(g) - 1 - r) }

// ticks labels positions 0..n-1, or n-1..0 when reversed.
func ticks(labels []string, reversed bool) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(labels))
	for i, l := range labels {
		v := float64(i)
		if reversed {
			v = float64(len(labels) - 1 - i)
		}
		out[i] = plot.Tick{Value: v, Label: l}
	}
	return out
}

// swatch is a legend entry filled with a single color.
type swatch struct{ color.Color }

func (s swatch) Thumbnail(c *draw.Canvas) {
	r := c.Rectangle
	c.FillPolygon(s.Color, []vg.Point{
		r.Min, {X: r.Min.X, Y: r.Max.Y}, r.Max, {X: r.Max.X, Y: r.Min.Y},
	})
}

// heatColor mirrors the palette lookup of plotter.HeatMap.
func heatColor(hm *plotter.HeatMap, colors []color.Color, v float64) color.Color {
	ps := float64(len(colors)-1) / (hm.Max - hm.Min)
	return colors[int((v-hm.Min)*ps+0.5)]
}

// baseCase describes the grid cell matching the cost model, or "" when the
// grid does not contain it.
func baseCase(ds Dataset, base model.CostModel) string {
	r := slices.Index(ds.HourlyRates, base.HourlyRate)
	c := slices.Index(ds.HoursPerSystem, base.HoursPerSystem)
	if r < 0 || c < 0 {
		return ""
	}
	return fmt.Sprintf("Base case: $%g/hr, %g hours/system → %d systems optimal",
		base.HourlyRate, base.HoursPerSystem, ds.Sensitivity[r][c])
}

// SensitivityHeatmap draws the optimal count for each hourly rate and hours
// per system pair, with a legend keyed by count and the base case noted.
func SensitivityHeatmap(dir string, ds Dataset, base model.CostModel) (string, error) {
	g := grid(ds.Sensitivity)
	cols, rows := g.Dims()
	if cols == 0 || rows != len(ds.HourlyRates) || cols != len(ds.HoursPerSystem) {
		return "", fmt.Errorf("sensitivity grid is %dx%d, want %dx%d", rows, cols, len(ds.HourlyRates), len(ds.HoursPerSystem))
	}

	pal, err := brewer.GetPalette(brewer.TypeAny, "RdYlGn", 11)
	if err != nil {
		return "", err
	}
	hm := plotter.NewHeatMap(g, pal)
	hm.Min, hm.Max = 5, 20
	for _, row := range ds.Sensitivity {
		for _, v := range row {
			hm.Min = math.Min(hm.Min, float64(v))
			hm.Max = math.Max(hm.Max, float64(v))
		}
	}

	p := newPlot(
		"Sensitivity Analysis: Optimal Systems Count\nImpact of Cost Parameters on Optimal Stopping Point",
		"Hours per System",
		"Hourly Rate",
	)
	p.Add(hm)

	hours := make([]string, cols)
	for i, h := range ds.HoursPerSystem {
		hours[i] = strconv.FormatFloat(h, 'f', -1, 64)
	}
	rates := make([]string, rows)
	for i, r := range ds.HourlyRates {
		rates[i] = "$" + strconv.FormatFloat(r, 'f', -1, 64)
	}
	p.X.Tick.Marker = ticks(hours, false)
	p.Y.Tick.Marker = ticks(rates, true)

	cells := make(plotter.XYs, 0, rows*cols)
	values := make([]string, 0, rows*cols)
	for r, row := range ds.Sensitivity {
		for c, v := range row {
			cells = append(cells, plotter.XY{X: g.X(c), Y: g.Y(r)})
			values = append(values, strconv.Itoa(v))
		}
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: cells, Labels: values})
	if err != nil {
		return "", err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(l)

	// keyed legend in a blank column right of the grid
	seen := map[int]bool{}
	var counts []int
	for _, row := range ds.Sensitivity {
		for _, v := range row {
			if !seen[v] {
				seen[v] = true
				counts = append(counts, v)
			}
		}
	}
	slices.Sort(counts)
	for i := len(counts) - 1; i >= 0; i-- {
		p.Legend.Add(fmt.Sprintf("%d systems optimal", counts[i]), swatch{heatColor(hm, pal.Colors(), float64(counts[i]))})
	}
	p.Legend.Top = true
	p.X.Max = float64(cols) + 1.5

	p.X.Label.Text = fmt.Sprintf("Hours per System (%s data)", ds.Source)
	if note := baseCase(ds, base); note != "" {
		p.X.Label.Text += "\n" + note
	}

	return save(p, dir, FileSensitivityHeatmap, 11*vg.Inch, 8*vg.Inch)
}
