// Package ode provides the core primitives for fixed-step integration of
// a scalar first-order ordinary differential equation y'(x) = f(x, y).
//
// The package defines:
//
//   - [Func]: the derivative callback f(x, y)
//   - [Solution]: an optional closed-form y(x) used as ground truth
//   - [Grid]: the shared sampling grid {x0, y0, h, steps}
//   - [Stepper]: a one-step advancing scheme
//   - [Trajectory]: the sampled approximation produced by [Integrate]
//
// # Example
//
//	g, _ := ode.NewGrid(0, 160, 10, 47)
//	tr, _ := ode.Integrate(steppers.NewRK4(), f, g)
//	err := ode.AbsError(sol, tr.Final())
//
// All steppers share the same convention: x is advanced before the first
// derivative evaluation of a step, so stage times are measured from the
// post-increment x. Every method consuming the same Grid visits the same
// x values, which is what makes the per-method errors comparable.
package ode
