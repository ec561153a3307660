package steppers

import "github.com/equisdel/odelab/internal/ode"

// RK4 is the classical four-stage Runge-Kutta scheme, the accuracy
// baseline among the three methods. Local truncation error O(h⁵).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(f ode.Func, x, y, h float64) float64 {
	nx := x + h
	k1 := f(nx, y)
	k2 := f(nx+h/2, y+(h/2)*k1)
	k3 := f(nx+h/2, y+(h/2)*k2)
	k4 := f(nx+h, y+h*k3)
	return y + (h/6)*(k1+2*k2+2*k3+k4)
}
