// Package steppers implements the three fixed-step schemes: Euler,
// improved Euler (Heun) and classical Runge-Kutta 4. All of them advance
// x before the first slope evaluation, so stage times are measured from
// the post-increment x.
package steppers

import "github.com/equisdel/odelab/internal/ode"

// Euler is the first-order forward method. The slope is taken at the
// advanced x but the pre-step y. Local truncation error O(h²).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f ode.Func, x, y, h float64) float64 {
	nx := x + h
	return y + h*f(nx, y)
}
