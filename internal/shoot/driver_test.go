package shoot

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/kylecz/blshoot/internal/bl"
)

func solveCanonical(t *testing.T) *Result {
	t.Helper()
	res, err := Solve(context.Background(), DefaultParams())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return res
}

func TestSolveCanonicalConverges(t *testing.T) {
	p := DefaultParams()
	res := solveCanonical(t)

	if res.Status != Converged {
		t.Fatalf("expected converged status, got %s (errProfile=%e)", res.Status, res.ErrProfile)
	}
	if res.Iterations < 1 || res.Iterations > p.MaxIter {
		t.Errorf("unexpected iteration count %d", res.Iterations)
	}
	if res.ErrProfile > p.TolProfile {
		t.Errorf("profile change %e above tolerance %e", res.ErrProfile, p.TolProfile)
	}
}

func TestSolveVelocityProfile(t *testing.T) {
	p := DefaultParams()
	res := solveCanonical(t)

	if res.U[0] != 0 {
		t.Errorf("no-slip wall: expected u[0]=0, got %g", res.U[0])
	}
	if math.Abs(res.U[res.N]-1) > p.TolBC {
		t.Errorf("far-field velocity residual %e above %e", math.Abs(res.U[res.N]-1), p.TolBC)
	}
	for i := 1; i < len(res.U); i++ {
		if res.U[i] < res.U[i-1]-1e-7 {
			t.Fatalf("velocity profile not monotone at index %d: %g < %g", i, res.U[i], res.U[i-1])
		}
	}
}

func TestSolveTemperatureProfile(t *testing.T) {
	p := DefaultParams()
	res := solveCanonical(t)

	if res.T[0] != res.Beta {
		t.Errorf("wall temperature %g should equal converged guess beta %g", res.T[0], res.Beta)
	}
	if res.T[0] <= 1 {
		t.Errorf("adiabatic-gradient wall at mach 1 should run hot, got T(0)=%g", res.T[0])
	}
	if math.Abs(res.T[res.N]-1) > p.TolBC {
		t.Errorf("far-field temperature residual %e above %e", math.Abs(res.T[res.N]-1), p.TolBC)
	}
}

func TestSolveGrid(t *testing.T) {
	res := solveCanonical(t)

	if len(res.Eta) != res.N+1 {
		t.Fatalf("expected %d grid points, got %d", res.N+1, len(res.Eta))
	}
	if res.Eta[0] != 0 || res.Eta[res.N] != 10 {
		t.Errorf("grid endpoints wrong: [%g, %g]", res.Eta[0], res.Eta[res.N])
	}
	for i := 1; i < len(res.Eta); i++ {
		if math.Abs(res.Eta[i]-res.Eta[i-1]-0.2) > 1e-12 {
			t.Fatalf("grid spacing at %d: %g", i, res.Eta[i]-res.Eta[i-1])
		}
	}
}

func TestSolveWallCoordinate(t *testing.T) {
	res := solveCanonical(t)

	if res.Y[0] != 0 {
		t.Errorf("wall coordinate should start at 0, got %g", res.Y[0])
	}
	for i := 1; i < len(res.Y); i++ {
		if res.Y[i] < res.Y[i-1] {
			t.Fatalf("wall coordinate decreasing at index %d", i)
		}
	}
	// The temperature excess inside the layer makes y(etamax) exceed the
	// plain sqrt(2)*etamax mapping of a uniform-temperature stream.
	if res.Y[res.N] <= math.Sqrt2*res.Eta[res.N] {
		t.Errorf("expected stretched wall coordinate, got y_max=%g", res.Y[res.N])
	}
}

func TestSolveIdempotent(t *testing.T) {
	a := solveCanonical(t)
	b := solveCanonical(t)

	if a.Alpha != b.Alpha || a.Beta != b.Beta || a.Iterations != b.Iterations {
		t.Fatalf("repeat solve diverged: (%g,%g,%d) vs (%g,%g,%d)",
			a.Alpha, a.Beta, a.Iterations, b.Alpha, b.Beta, b.Iterations)
	}
	for _, pair := range [][2][]float64{{a.Eta, b.Eta}, {a.Y, b.Y}, {a.U, b.U}, {a.T, b.T}} {
		for i := range pair[0] {
			if pair[0][i] != pair[1][i] {
				t.Fatalf("repeat solve differs at index %d: %g vs %g", i, pair[0][i], pair[1][i])
			}
		}
	}
}

func TestSolveZeroIterations(t *testing.T) {
	p := DefaultParams()
	p.MaxIter = 0

	res, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if res.Status != IterationLimitReached {
		t.Errorf("expected iteration-limit status, got %s", res.Status)
	}
	if res.Iterations != 0 {
		t.Errorf("expected 0 iterations, got %d", res.Iterations)
	}
	if res.Alpha != p.Alpha0 || res.Beta != p.Beta0 {
		t.Errorf("guess should be untouched, got (%g, %g)", res.Alpha, res.Beta)
	}
	if res.T[0] != p.Beta0 {
		t.Errorf("wall temperature should equal initial guess %g, got %g", p.Beta0, res.T[0])
	}
	if res.U[0] != 0 {
		t.Errorf("no-slip wall should hold without iterations, got %g", res.U[0])
	}
	if !math.IsInf(res.ErrProfile, 1) {
		t.Errorf("profile error was never measured, got %g", res.ErrProfile)
	}
	if math.IsInf(res.ErrBC, 1) || math.IsNaN(res.ErrBC) {
		t.Errorf("boundary residual should be measured, got %g", res.ErrBC)
	}
}

func TestSolveObserverProgress(t *testing.T) {
	p := DefaultParams()
	s := New(p)

	var profErrs, bcErrs []float64
	s.AddObserver(ObserverFunc(func(iter int, errProfile, errBC float64) {
		if iter != len(profErrs)+1 {
			t.Errorf("iterations reported out of order: %d", iter)
		}
		profErrs = append(profErrs, errProfile)
		bcErrs = append(bcErrs, errBC)
	}))

	res, err := s.Solve(context.Background())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if len(profErrs) != res.Iterations {
		t.Fatalf("expected %d observed iterations, got %d", res.Iterations, len(profErrs))
	}
	last := len(profErrs) - 1
	if profErrs[last] != res.ErrProfile || bcErrs[last] != res.ErrBC {
		t.Errorf("result errors should match last observation")
	}
	if profErrs[last] > profErrs[0] {
		t.Errorf("profile change should trend down: first %e, last %e", profErrs[0], profErrs[last])
	}
}

func TestSolveContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Solve(ctx, DefaultParams())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParamsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero segments", func(p *Params) { p.N = 0 }},
		{"negative eta max", func(p *Params) { p.EtaMax = -1 }},
		{"zero temperature", func(p *Params) { p.Temperature = 0 }},
		{"negative iteration cap", func(p *Params) { p.MaxIter = -1 }},
		{"zero profile tolerance", func(p *Params) { p.TolProfile = 0 }},
		{"zero bc tolerance", func(p *Params) { p.TolBC = 0 }},
		{"non-positive wall temperature guess", func(p *Params) { p.Beta0 = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if _, err := Solve(context.Background(), p); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCramer(t *testing.T) {
	x0, x1, err := cramer([2][2]float64{{2, 0}, {0, 4}}, [2]float64{6, 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x0 != 3 || x1 != 2 {
		t.Errorf("expected (3, 2), got (%g, %g)", x0, x1)
	}

	_, _, err = cramer([2][2]float64{{1, 2}, {2, 4}}, [2]float64{1, 1})
	if !errors.Is(err, errSingular) {
		t.Fatalf("expected singular error, got %v", err)
	}
}

func TestPassErrorWrapping(t *testing.T) {
	cause := &bl.NonPhysicalStateError{Eta: 0.4, Temperature: -0.1}
	err := error(&PassError{Iteration: 3, Pass: "perturb-alpha", Wrapped: cause})

	var npe *bl.NonPhysicalStateError
	if !errors.As(err, &npe) {
		t.Fatal("PassError should expose its cause via Unwrap")
	}
	if npe != cause {
		t.Error("unwrapped cause mismatch")
	}
}

func TestStatusString(t *testing.T) {
	if Converged.String() != "converged" {
		t.Errorf("got %q", Converged.String())
	}
	if IterationLimitReached.String() != "iteration-limit" {
		t.Errorf("got %q", IterationLimitReached.String())
	}
}
