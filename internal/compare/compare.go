// Package compare drives every stepper and the reference sampler over one
// shared grid and computes the per-method final-point errors.
package compare

import (
	"context"
	"math"
	"sync"

	"github.com/equisdel/odelab/internal/ode"
)

// MethodResult holds one method's trajectory, its final sample, and the
// absolute error against the reference at that x. AbsError is NaN when no
// closed-form solution was supplied.
type MethodResult struct {
	Method     string
	Trajectory ode.Trajectory
	Final      ode.Point
	AbsError   float64
}

// Report is the immutable outcome of one comparison run. Results keep the
// order the steppers were registered in.
type Report struct {
	Grid           ode.Grid
	Results        []MethodResult
	Reference      ode.Trajectory
	ReferenceFinal float64
	HasReference   bool
}

// ByMethod returns the result for a method name, if present.
func (r *Report) ByMethod(name string) (MethodResult, bool) {
	for _, res := range r.Results {
		if res.Method == name {
			return res, true
		}
	}
	return MethodResult{}, false
}

// Runner fans the steppers out over the same grid. Steppers share no
// mutable state, so each one runs in its own goroutine; the comparison is
// the join point.
type Runner struct {
	steppers []ode.Stepper
}

func NewRunner(steppers ...ode.Stepper) *Runner {
	return &Runner{steppers: steppers}
}

// Run integrates every registered stepper over g, then samples the
// closed-form solution (when given) and fills in the errors. sol may be
// nil, in which case error reporting is skipped.
func (r *Runner) Run(ctx context.Context, f ode.Func, sol ode.Solution, g ode.Grid) (*Report, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	results := make([]MethodResult, len(r.steppers))
	errs := make([]error, len(r.steppers))

	var wg sync.WaitGroup
	for i, s := range r.steppers {
		wg.Add(1)
		go func(idx int, s ode.Stepper) {
			defer wg.Done()

			tr, err := ode.Integrate(s, f, g)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = MethodResult{
				Method:     s.Name(),
				Trajectory: tr,
				Final:      tr.Final(),
				AbsError:   math.NaN(),
			}
		}(i, s)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	rep := &Report{Grid: g, Results: results, ReferenceFinal: math.NaN()}

	if sol != nil {
		ref, err := ode.SampleSolution(sol, g)
		if err != nil {
			return nil, err
		}
		rep.Reference = ref
		rep.ReferenceFinal = sol(g.XFinal())
		rep.HasReference = true
		for i := range rep.Results {
			rep.Results[i].AbsError = ode.AbsError(sol, rep.Results[i].Final)
		}
	}

	return rep, nil
}
