package ode

import "math"

// Grid is the shared step configuration. Every stepper given the same
// Grid visits the same x values, so their results are directly
// comparable.
type Grid struct {
	X0    float64
	Y0    float64
	H     float64
	Steps int
}

// StepCount derives the iteration count n = floor((xf − xi) / h).
// The grid truncates rather than rounds: with xi=0, xf=47, h=10 the last
// sample lands on x=40, not 47.
func StepCount(xi, xf, h float64) (int, error) {
	if h == 0 {
		return 0, ErrZeroStep
	}
	n := int(math.Floor((xf - xi) / h))
	if n < 0 {
		return 0, ErrNegativeSpan
	}
	return n, nil
}

// NewGrid builds a Grid for the interval [x0, xf] with step h and initial
// value y0. It fails fast on a malformed configuration; there is no
// sensible partial-result semantic for a bad grid.
func NewGrid(x0, y0, h, xf float64) (Grid, error) {
	n, err := StepCount(x0, xf, h)
	if err != nil {
		return Grid{}, err
	}
	return Grid{X0: x0, Y0: y0, H: h, Steps: n}, nil
}

func (g Grid) Validate() error {
	if g.H == 0 {
		return ErrZeroStep
	}
	if g.Steps < 0 {
		return ErrNegativeSpan
	}
	return nil
}

// XFinal returns the last grid point, x0 + steps·h.
func (g Grid) XFinal() float64 {
	return g.X0 + float64(g.Steps)*g.H
}
