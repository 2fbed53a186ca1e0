package strategy

// Context is what a stopping rule sees for one trial: the ROI and coverage
// curves indexed by system count minus one.
type Context struct {
	Trial    int
	ROI      []float64
	Coverage []float64
}

// Strategy picks how many ranked systems to test for one trial.
// Decide returns a count in [1, len(ctx.ROI)], or 0 when the curve is empty.
type Strategy interface {
	Name() string
	Decide(ctx Context) int
}
