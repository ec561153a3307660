package steppers

import (
	"math"
	"testing"

	"github.com/equisdel/odelab/internal/ode"
)

// The pie-cooling scenario: y' = k(35−y), k = −ln(11/17)/5, y(0)=160,
// h=10, xf=47 truncates to a 5-point grid ending at x=40.
var coolK = -math.Log(11.0/17.0) / 5.0

func coolF(x, y float64) float64 { return -coolK * (y - 35) }

func coolSol(x float64) float64 { return math.Exp(-coolK*x)*125 + 35 }

func coolGrid(t *testing.T) ode.Grid {
	t.Helper()
	g, err := ode.NewGrid(0, 160, 10, 47)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCoolingScenario_FinalValues(t *testing.T) {
	tests := []struct {
		stepper ode.Stepper
		finalY  float64
	}{
		{NewEuler(), 35.035007560018656},
		{NewHeun(), 43.34874389894321},
		{NewRK4(), 38.976152777346805},
	}

	g := coolGrid(t)
	for _, tt := range tests {
		t.Run(tt.stepper.Name(), func(t *testing.T) {
			tr, err := ode.Integrate(tt.stepper, coolF, g)
			if err != nil {
				t.Fatal(err)
			}
			if tr.Len() != 5 {
				t.Fatalf("expected 5 samples, got %d", tr.Len())
			}
			final := tr.Final()
			if final.X != 40 {
				t.Errorf("final x = %g, want 40 (grid truncates 47)", final.X)
			}
			if math.Abs(final.Y-tt.finalY) > 1e-12 {
				t.Errorf("final y = %.17g, want %.17g", final.Y, tt.finalY)
			}
		})
	}
}

func TestCoolingScenario_AccuracyOrdering(t *testing.T) {
	g := coolGrid(t)

	trE, err := ode.Integrate(NewEuler(), coolF, g)
	if err != nil {
		t.Fatal(err)
	}
	trR, err := ode.Integrate(NewRK4(), coolF, g)
	if err != nil {
		t.Fatal(err)
	}

	errE := ode.AbsError(coolSol, trE.Final())
	errR := ode.AbsError(coolSol, trR.Final())

	if errR >= errE {
		t.Errorf("RK4 error %g should be below Euler error %g", errR, errE)
	}
}

func TestIdempotence(t *testing.T) {
	g := coolGrid(t)
	for _, s := range All() {
		first, err := ode.Integrate(s, coolF, g)
		if err != nil {
			t.Fatal(err)
		}
		second, err := ode.Integrate(s, coolF, g)
		if err != nil {
			t.Fatal(err)
		}
		for i := range first.Ys {
			if first.Xs[i] != second.Xs[i] || first.Ys[i] != second.Ys[i] {
				t.Fatalf("%s: run 2 diverged from run 1 at sample %d", s.Name(), i)
			}
		}
	}
}

// recorder captures the exact arguments each stepper passes to f.
type recorder struct {
	f     ode.Func
	calls []ode.Point
}

func (r *recorder) fn(x, y float64) float64 {
	r.calls = append(r.calls, ode.Point{X: x, Y: y})
	return r.f(x, y)
}

func TestEuler_EvaluationPoint(t *testing.T) {
	rec := &recorder{f: coolF}
	y1 := NewEuler().Step(rec.fn, 0, 160, 10)

	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 evaluation, got %d", len(rec.calls))
	}
	// Advanced x, pre-step y.
	if rec.calls[0] != (ode.Point{X: 10, Y: 160}) {
		t.Errorf("evaluated at %+v, want (10, 160)", rec.calls[0])
	}
	want := 160 + 10*coolF(10, 160)
	if y1 != want {
		t.Errorf("step result %g, want %g", y1, want)
	}
}

func TestHeun_SecondSlopeEvaluationPoint(t *testing.T) {
	rec := &recorder{f: coolF}
	NewHeun().Step(rec.fn, 0, 160, 10)

	if len(rec.calls) != 2 {
		t.Fatalf("expected 2 evaluations, got %d", len(rec.calls))
	}
	if rec.calls[0].X != 10 {
		t.Errorf("first slope at x=%g, want 10", rec.calls[0].X)
	}
	// Locked-in behavior: the second slope is taken one full step past
	// the advanced x (x0 + 2h), not at the advanced x itself.
	if rec.calls[1].X != 20 {
		t.Errorf("second slope at x=%g, want 20", rec.calls[1].X)
	}
	wantPred := 160 + 10*coolF(10, 160)
	if rec.calls[1].Y != wantPred {
		t.Errorf("second slope at predictor y=%g, want %g", rec.calls[1].Y, wantPred)
	}
}

func TestRK4_StageEvaluationPoints(t *testing.T) {
	rec := &recorder{f: coolF}
	NewRK4().Step(rec.fn, 0, 160, 10)

	if len(rec.calls) != 4 {
		t.Fatalf("expected 4 evaluations, got %d", len(rec.calls))
	}
	// Stage times are measured from the post-increment x.
	wantXs := []float64{10, 15, 15, 20}
	for i, want := range wantXs {
		if rec.calls[i].X != want {
			t.Errorf("stage %d at x=%g, want %g", i+1, rec.calls[i].X, want)
		}
	}
	if rec.calls[0].Y != 160 {
		t.Errorf("k1 should use the pre-step y, got %g", rec.calls[0].Y)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		s, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%s): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("ByName(%s) returned %s", name, s.Name())
		}
	}

	if _, err := ByName("rk45"); err == nil {
		t.Error("expected error for unknown method")
	}
}
