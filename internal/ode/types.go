package ode

import "math"

// Func is the right-hand side of y'(x) = f(x, y). It must be pure and
// deterministic; RK4 evaluates it up to four times per step.
type Func func(x, y float64) float64

// Solution is a closed-form y(x), supplied only for comparison purposes.
type Solution func(x float64) float64

// Point is a single (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// Trajectory is an ordered sequence of samples held as parallel slices.
// Index 0 is the initial condition; index i is the state after i steps.
// It is produced once per integration and never mutated afterwards.
type Trajectory struct {
	Xs []float64
	Ys []float64
}

// Len returns the number of samples (steps + 1 for a full integration).
func (tr Trajectory) Len() int { return len(tr.Xs) }

// At returns the i-th sample.
func (tr Trajectory) At(i int) Point { return Point{X: tr.Xs[i], Y: tr.Ys[i]} }

// Final returns the last sample. It panics on an empty trajectory.
func (tr Trajectory) Final() Point { return tr.At(tr.Len() - 1) }

func (tr Trajectory) Clone() Trajectory {
	c := Trajectory{
		Xs: make([]float64, len(tr.Xs)),
		Ys: make([]float64, len(tr.Ys)),
	}
	copy(c.Xs, tr.Xs)
	copy(c.Ys, tr.Ys)
	return c
}

// IsValid reports whether every sample is a finite number. A false result
// means the caller's derivative left its domain (the engine never masks
// NaN or Inf).
func (tr Trajectory) IsValid() bool {
	for _, y := range tr.Ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return false
		}
	}
	return true
}

// AbsError is the pointwise comparison used for reporting:
// |sol(p.X) − p.Y|, the reference evaluated at the sample's own x.
func AbsError(sol Solution, p Point) float64 {
	return math.Abs(sol(p.X) - p.Y)
}
