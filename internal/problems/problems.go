// Package problems registers the built-in initial value problems, each
// pairing a derivative with its closed-form solution and default grid.
package problems

import (
	"fmt"
	"math"
	"sort"

	"github.com/equisdel/odelab/internal/ode"
)

// Problem is one initial value problem y' = f(x, y), y(x0) = y0, with
// defaults for the grid and an optional closed-form solution. A nil
// Solution disables error reporting for the problem.
type Problem struct {
	Name     string
	Summary  string
	F        ode.Func
	Solution ode.Solution

	X0 float64
	Y0 float64
	H  float64
	XF float64
}

// Grid derives the default grid for the problem.
func (p Problem) Grid() (ode.Grid, error) {
	return ode.NewGrid(p.X0, p.Y0, p.H, p.XF)
}

type Registry struct {
	problems map[string]func() Problem
}

func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]func() Problem)}

	r.problems["cooling"] = newCooling
	r.problems["exponential"] = newExponential
	r.problems["decay"] = newDecay
	r.problems["logistic"] = newLogistic

	return r
}

func (r *Registry) Get(name string) (Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// coolingK follows from the measured temperatures: 120°C at t=15 and
// 90°C at t=20, ambient 35°C, so e^(−5k) = 55/85 ⇒ k = −ln(11/17)/5.
var coolingK = -math.Log(11.0/17.0) / 5.0

func newCooling() Problem {
	return Problem{
		Name:    "cooling",
		Summary: "Newton cooling of a 160°C pie in 35°C ambient air",
		F: func(x, y float64) float64 {
			return -coolingK * (y - 35)
		},
		Solution: func(x float64) float64 {
			return math.Exp(-coolingK*x)*125 + 35
		},
		X0: 0, Y0: 160, H: 10, XF: 47,
	}
}

func newExponential() Problem {
	return Problem{
		Name:    "exponential",
		Summary: "pure growth y' = y with solution e^x",
		F: func(x, y float64) float64 {
			return y
		},
		Solution: math.Exp,
		X0:       0, Y0: 1, H: 0.1, XF: 2,
	}
}

func newDecay() Problem {
	const lambda = 0.5
	return Problem{
		Name:    "decay",
		Summary: "exponential decay y' = -0.5y from y(0)=100",
		F: func(x, y float64) float64 {
			return -lambda * y
		},
		Solution: func(x float64) float64 {
			return 100 * math.Exp(-lambda*x)
		},
		X0: 0, Y0: 100, H: 0.25, XF: 10,
	}
}

func newLogistic() Problem {
	const (
		rate     = 1.0
		capacity = 10.0
	)
	return Problem{
		Name:    "logistic",
		Summary: "logistic growth y' = y(1 - y/10) from y(0)=1",
		F: func(x, y float64) float64 {
			return rate * y * (1 - y/capacity)
		},
		Solution: func(x float64) float64 {
			return capacity / (1 + 9*math.Exp(-rate*x))
		},
		X0: 0, Y0: 1, H: 0.2, XF: 8,
	}
}
