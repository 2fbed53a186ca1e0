package charts

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pie draws wedges of unit radius around the data origin, counter-clockwise
// from 12 o'clock. Explode pushes each wedge out along its bisector.
type pie struct {
	values  []float64
	colors  []color.Color
	explode float64
	line    draw.LineStyle
}

const pieStart = math.Pi / 2

func (p *pie) angles() (starts, sweeps []float64) {
	total := floats.Sum(p.values)
	a := pieStart
	for _, v := range p.values {
		sweep := 2 * math.Pi * v / total
		starts = append(starts, a)
		sweeps = append(sweeps, sweep)
		a += sweep
	}
	return starts, sweeps
}

func (p *pie) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	starts, sweeps := p.angles()
	for i := range p.values {
		mid := starts[i] + sweeps[i]/2
		cx, cy := p.explode*math.Cos(mid), p.explode*math.Sin(mid)

		steps := int(math.Max(2, sweeps[i]/(2*math.Pi)*180))
		pts := make([]vg.Point, 0, steps+2)
		pts = append(pts, vg.Point{X: trX(cx), Y: trY(cy)})
		for k := 0; k <= steps; k++ {
			a := starts[i] + sweeps[i]*float64(k)/float64(steps)
			pts = append(pts, vg.Point{X: trX(cx + math.Cos(a)), Y: trY(cy + math.Sin(a))})
		}
		c.FillPolygon(p.colors[i%len(p.colors)], c.ClipPolygonXY(pts))
		c.StrokeLines(p.line, c.ClipLinesXY(append(pts, pts[0]))...)
	}
}

func (p *pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	r := 1 + p.explode + 0.35
	return -r, r, -r, r
}

// labels places each text at radius r along its wedge bisector.
func (p *pie) labels(r float64, texts []string) (*plotter.Labels, error) {
	starts, sweeps := p.angles()
	xys := make(plotter.XYs, len(texts))
	for i := range texts {
		mid := starts[i] + sweeps[i]/2
		xys[i] = plotter.XY{X: r * math.Cos(mid), Y: r * math.Sin(mid)}
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
	}
	return l, nil
}
