package ode

// Stepper advances the approximation by one grid step. Implementations
// are side-effect-free: the new y is returned, nothing is retained.
//
// The x passed in is the pre-step x; every scheme advances it by h before
// its first derivative evaluation.
type Stepper interface {
	Name() string
	Step(f Func, x, y, h float64) float64
}

// Integrate drives a stepper over the grid and collects the trajectory.
// The returned trajectory has exactly g.Steps+1 samples, the first being
// (x0, y0). Each iteration is a pure state transition; the accumulated x
// matches the stepper-internal x at every step.
func Integrate(s Stepper, f Func, g Grid) (Trajectory, error) {
	if err := g.Validate(); err != nil {
		return Trajectory{}, err
	}

	tr := Trajectory{
		Xs: make([]float64, 0, g.Steps+1),
		Ys: make([]float64, 0, g.Steps+1),
	}

	x, y := g.X0, g.Y0
	tr.Xs = append(tr.Xs, x)
	tr.Ys = append(tr.Ys, y)

	for i := 0; i < g.Steps; i++ {
		y = s.Step(f, x, y, g.H)
		x += g.H
		tr.Xs = append(tr.Xs, x)
		tr.Ys = append(tr.Ys, y)
	}

	return tr, nil
}

// SampleSolution evaluates a closed-form solution on the same grid the
// steppers use, producing the ground-truth trajectory. The first sample
// is the supplied initial condition (x0, y0); later samples evaluate the
// closed form directly, so they carry no integration error.
func SampleSolution(sol Solution, g Grid) (Trajectory, error) {
	if err := g.Validate(); err != nil {
		return Trajectory{}, err
	}

	tr := Trajectory{
		Xs: make([]float64, 0, g.Steps+1),
		Ys: make([]float64, 0, g.Steps+1),
	}

	x := g.X0
	tr.Xs = append(tr.Xs, x)
	tr.Ys = append(tr.Ys, g.Y0)

	for i := 0; i < g.Steps; i++ {
		x += g.H
		tr.Xs = append(tr.Xs, x)
		tr.Ys = append(tr.Ys, sol(x))
	}

	return tr, nil
}
