package problems

import (
	"math"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.List()
	if len(names) == 0 {
		t.Fatal("expected built-in problems")
	}
	for _, name := range names {
		p, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if p.F == nil {
			t.Errorf("%s has no derivative", name)
		}
		if p.H == 0 {
			t.Errorf("%s has no default step size", name)
		}
	}

	if _, err := r.Get("unknown"); err == nil {
		t.Error("expected error for unknown problem")
	}
}

// Each closed form must actually solve its ODE: the centered difference
// of the solution must agree with f along the default interval.
func TestClosedFormsSolveTheirODEs(t *testing.T) {
	r := NewRegistry()
	const eps = 1e-6

	for _, name := range r.List() {
		p, err := r.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Solution == nil {
			continue
		}

		for frac := 0.1; frac < 1; frac += 0.2 {
			x := p.X0 + frac*(p.XF-p.X0)
			y := p.Solution(x)
			numeric := (p.Solution(x+eps) - p.Solution(x-eps)) / (2 * eps)
			analytic := p.F(x, y)

			scale := math.Max(math.Abs(analytic), 1)
			if math.Abs(numeric-analytic)/scale > 1e-4 {
				t.Errorf("%s: f(%g, y)=%g but d/dx sol=%g", name, x, analytic, numeric)
			}
		}
	}
}

func TestSolutionsMatchInitialConditions(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.List() {
		p, err := r.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Solution == nil {
			continue
		}
		if math.Abs(p.Solution(p.X0)-p.Y0) > 1e-9 {
			t.Errorf("%s: sol(x0)=%g, want y0=%g", name, p.Solution(p.X0), p.Y0)
		}
	}
}

func TestCoolingScenario(t *testing.T) {
	r := NewRegistry()
	p, err := r.Get("cooling")
	if err != nil {
		t.Fatal(err)
	}

	g, err := p.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if g.Steps != 4 {
		t.Errorf("default grid should take 4 steps, got %d", g.Steps)
	}

	// Known value: y(47) = 35 + 125·e^(−47k).
	want := 37.088244722632794
	if math.Abs(p.Solution(47)-want) > 1e-12 {
		t.Errorf("sol(47) = %.17g, want %.17g", p.Solution(47), want)
	}

	// The rate constant encodes the measured 5-minute cooling ratio:
	// (y(t+5) − 35) / (y(t) − 35) = 11/17 for any t.
	ratio := (p.Solution(20) - 35) / (p.Solution(15) - 35)
	if math.Abs(ratio-11.0/17.0) > 1e-12 {
		t.Errorf("5-minute cooling ratio = %g, want 11/17", ratio)
	}
}
