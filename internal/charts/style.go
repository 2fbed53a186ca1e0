package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Palette shared by every chart.
var (
	colorPrimary   = rgb(0x2E, 0x86, 0xAB)
	colorSecondary = rgb(0xA2, 0x3B, 0x72)
	colorAccent    = rgb(0xF1, 0x8F, 0x01)
	colorSuccess   = rgb(0x06, 0xA7, 0x7D)
	colorDanger    = rgb(0xC7, 0x3E, 0x1D)
	colorTier1     = rgb(0x4A, 0x90, 0xE2)
	colorTier2     = rgb(0x7B, 0x68, 0xEE)
	colorLongTail  = rgb(0xFF, 0xB3, 0x47)

	colorBlue   = rgb(0x1F, 0x4E, 0xC8)
	colorRed    = rgb(0xD6, 0x27, 0x28)
	colorGreen  = rgb(0x2C, 0xA0, 0x2C)
	colorOrange = rgb(0xFF, 0x7F, 0x0E)
	colorPurple = rgb(0x80, 0x00, 0x80)
	colorGray   = rgb(0x80, 0x80, 0x80)
	colorBlack  = color.RGBA{A: 0xff}
)

const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 7 * vg.Inch
)

var dashed = []vg.Length{vg.Points(6), vg.Points(4)}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func fade(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Points(8)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func newLine(xys plotter.XYs, c color.Color, width vg.Length, dash []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	l.LineStyle.Dashes = dash
	return l, nil
}

func vline(x, y0, y1 float64, c color.Color) (*plotter.Line, error) {
	return newLine(plotter.XYs{{X: x, Y: y0}, {X: x, Y: y1}}, c, vg.Points(2), dashed)
}

func hline(y, x0, x1 float64, c color.Color, dash []vg.Length) (*plotter.Line, error) {
	return newLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}}, c, vg.Points(1.5), dash)
}

// band fills the area between lo and hi along xs.
func band(xs, lo, hi []float64, c color.Color) (*plotter.Polygon, error) {
	pts := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		pts = append(pts, plotter.XY{X: xs[i], Y: lo[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: xs[i], Y: hi[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Width = 0
	return poly, nil
}

// span shades a horizontal strip between y0 and y1.
func span(x0, x1, y0, y1 float64, c color.Color) (*plotter.Polygon, error) {
	return band([]float64{x0, x1}, []float64{y0, y0}, []float64{y1, y1}, c)
}

func annotate(x, y float64, text string) (*plotter.Labels, error) {
	return plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{text},
	})
}

func xsRange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func toXYs(xs, ys []float64) plotter.XYs {
	out := make(plotter.XYs, len(xs))
	for i := range xs {
		out[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return out
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// save writes p as PNG into dir, creating dir if needed.
func save(p *plot.Plot, dir, name string, w, h vg.Length) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return path, nil
}
