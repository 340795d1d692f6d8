package shoot

import (
	"context"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/kylecz/blshoot/internal/bl"
	"github.com/kylecz/blshoot/internal/integrators"
)

// Solver runs the shooting method: forward integrations of the similarity
// system over a fixed grid, wrapped in a 2-parameter Newton iteration on
// the unknown wall values f''(0) and T(0) until the far-field conditions
// f' -> 1 and T -> 1 are met.
type Solver struct {
	params    Params
	sys       *bl.Similarity
	integ     *integrators.RKF45
	observers []Observer
}

func New(p Params) *Solver {
	return &Solver{
		params: p,
		sys:    bl.NewSimilarity(p.Mach, p.Temperature),
		integ:  integrators.NewRKF45(),
	}
}

func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Solve runs a full solve with the given parameters. Convenience wrapper
// around New followed by Solver.Solve.
func Solve(ctx context.Context, p Params) (*Result, error) {
	return New(p).Solve(ctx)
}

// Solve iterates until the profile-change criterion is met or the
// iteration cap is reached. The boundary residual is reported but never
// gates the loop. A non-physical state or singular Jacobian aborts the
// run with no result.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	p := s.params
	if err := p.validate(); err != nil {
		return nil, err
	}

	grid := make([]float64, p.N+1)
	floats.Span(grid, 0, p.EtaMax)

	alpha, beta := p.Alpha0, p.Beta0

	var (
		base       []bl.State
		resAlpha   float64
		resBeta    float64
		prevNorm   float64
		errProfile = math.Inf(1)
		errBC      = math.Inf(1)
		status     = IterationLimitReached
		iters      int
	)

	for iter := 1; iter <= p.MaxIter; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		profiles, err := s.runPasses(iter, grid, alpha, beta)
		if err != nil {
			return nil, err
		}
		base = profiles[0]
		resAlpha, resBeta = alpha, beta
		iters = iter

		u := column(base, bl.IdxU)
		uFar := u[p.N]
		tFar := base[p.N][bl.IdxT]
		errBC = math.Abs(uFar - 1)

		// 2x2 finite-difference sensitivity of the far-field values to
		// the two wall guesses.
		var jac [2][2]float64
		jac[0][0] = (profiles[1][p.N][bl.IdxU] - uFar) / delta
		jac[1][0] = (profiles[1][p.N][bl.IdxT] - tFar) / delta
		jac[0][1] = (profiles[2][p.N][bl.IdxU] - uFar) / delta
		jac[1][1] = (profiles[2][p.N][bl.IdxT] - tFar) / delta

		rhs := [2]float64{1 - uFar, 1 - tFar}
		dAlpha, dBeta, err := cramer(jac, rhs)
		if err != nil {
			return nil, &SingularJacobianError{Iteration: iter, Determinant: jac[0][0]*jac[1][1] - jac[0][1]*jac[1][0]}
		}
		alpha += dAlpha
		beta += dBeta

		norm := floats.Norm(u, 2)
		errProfile = math.Abs(norm - prevNorm)
		prevNorm = norm

		for _, o := range s.observers {
			o.OnIteration(iter, errProfile, errBC)
		}

		if errProfile <= p.TolProfile {
			status = Converged
			break
		}
	}

	if base == nil {
		// Iteration cap of zero: no Newton update, return the profile of
		// the initial guess alone.
		prof, err := s.integrate(grid, alpha, beta)
		if err != nil {
			return nil, &PassError{Iteration: 0, Pass: passBaseline, Wrapped: err}
		}
		base = prof
		resAlpha, resBeta = alpha, beta
		errBC = math.Abs(base[p.N][bl.IdxU] - 1)
	}

	res := &Result{
		Eta:        grid,
		U:          column(base, bl.IdxU),
		T:          column(base, bl.IdxT),
		N:          p.N,
		Alpha:      resAlpha,
		Beta:       resBeta,
		Iterations: iters,
		Status:     status,
		ErrProfile: errProfile,
		ErrBC:      errBC,
	}
	res.Y = wallCoordinate(grid, res.T)
	return res, nil
}

// runPasses performs the baseline and the two perturbed integrations of
// one outer iteration. The passes share only read-only inputs, so they
// run concurrently and join before the Jacobian is assembled.
func (s *Solver) runPasses(iter int, grid []float64, alpha, beta float64) ([3][]bl.State, error) {
	guesses := [3][2]float64{
		{alpha, beta},
		{alpha + delta, beta},
		{alpha, beta + delta},
	}
	passes := [3]string{passBaseline, passPerturbAlpha, passPerturbBeta}

	var (
		profiles [3][]bl.State
		errs     [3]error
		wg       sync.WaitGroup
	)
	for i := range guesses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			profiles[i], errs[i] = s.integrate(grid, guesses[i][0], guesses[i][1])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return profiles, &PassError{Iteration: iter, Pass: passes[i], Wrapped: err}
		}
	}
	return profiles, nil
}

// integrate advances the state across the whole grid from the fixed wall
// conditions f(0)=f'(0)=T'(0)=0 and the guessed f''(0)=alpha, T(0)=beta.
func (s *Solver) integrate(grid []float64, alpha, beta float64) ([]bl.State, error) {
	states := make([]bl.State, len(grid))
	y := bl.State{0, 0, alpha, beta, 0}
	states[0] = y.Clone()

	h := grid[1] - grid[0]
	for i := 0; i < len(grid)-1; i++ {
		next, err := s.integ.Step(s.sys, y, grid[i], h)
		if err != nil {
			return nil, err
		}
		y = next
		states[i+1] = y
	}
	return states, nil
}

// cramer solves the 2x2 linear system jac * x = res.
func cramer(jac [2][2]float64, res [2]float64) (x0, x1 float64, err error) {
	det := jac[0][0]*jac[1][1] - jac[0][1]*jac[1][0]
	if math.Abs(det) < 1e-300 || math.IsNaN(det) {
		return 0, 0, errSingular
	}
	x0 = (res[0]*jac[1][1] - res[1]*jac[0][1]) / det
	x1 = (jac[0][0]*res[1] - jac[1][0]*res[0]) / det
	return x0, x1, nil
}

// wallCoordinate maps the similarity coordinate to a physical-like
// wall-normal coordinate by forward accumulation of the temperature, with
// the sqrt(2) similarity scaling applied at the end.
func wallCoordinate(eta, temp []float64) []float64 {
	y := make([]float64, len(eta))
	for i := 1; i < len(eta); i++ {
		y[i] = y[i-1] + temp[i]*(eta[i]-eta[i-1])
	}
	floats.Scale(math.Sqrt2, y)
	return y
}

func column(states []bl.State, comp int) []float64 {
	out := make([]float64, len(states))
	for i, s := range states {
		out[i] = s[comp]
	}
	return out
}
