package shoot

import "fmt"

// Default solve parameters for the canonical sonic case.
const (
	DefaultMach        = 1.0
	DefaultTemperature = 300.0
	DefaultEtaMax      = 10.0
	DefaultN           = 50
	DefaultMaxIter     = 40
	DefaultTolProfile  = 1e-6
	DefaultTolBC       = 1e-6
	DefaultAlpha0      = 0.5
	DefaultBeta0       = 1.2
)

// delta is the finite-difference perturbation applied to each free
// initial condition when building the shooting Jacobian.
const delta = 1e-7

// Params configures one solve. Mach and Temperature parameterize the
// physical model; the rest control the grid and the outer Newton
// iteration. Alpha0 and Beta0 are the starting guesses for the two free
// initial conditions f''(0) and T(0).
type Params struct {
	Mach        float64
	Temperature float64
	EtaMax      float64
	N           int
	MaxIter     int
	TolProfile  float64
	TolBC       float64
	Alpha0      float64
	Beta0       float64
}

func DefaultParams() Params {
	return Params{
		Mach:        DefaultMach,
		Temperature: DefaultTemperature,
		EtaMax:      DefaultEtaMax,
		N:           DefaultN,
		MaxIter:     DefaultMaxIter,
		TolProfile:  DefaultTolProfile,
		TolBC:       DefaultTolBC,
		Alpha0:      DefaultAlpha0,
		Beta0:       DefaultBeta0,
	}
}

func (p Params) validate() error {
	if p.N < 1 {
		return fmt.Errorf("shoot: grid segments must be >= 1, got %d", p.N)
	}
	if p.EtaMax <= 0 {
		return fmt.Errorf("shoot: eta max must be positive, got %f", p.EtaMax)
	}
	if p.Temperature <= 0 {
		return fmt.Errorf("shoot: freestream temperature must be positive, got %f", p.Temperature)
	}
	if p.MaxIter < 0 {
		return fmt.Errorf("shoot: iteration cap must be >= 0, got %d", p.MaxIter)
	}
	if p.TolProfile <= 0 || p.TolBC <= 0 {
		return fmt.Errorf("shoot: tolerances must be positive, got %g and %g", p.TolProfile, p.TolBC)
	}
	if p.Beta0 <= 0 {
		return fmt.Errorf("shoot: initial wall temperature guess must be positive, got %f", p.Beta0)
	}
	return nil
}

// Status reports how the outer iteration ended.
type Status int

const (
	// Converged means the profile-change criterion was met.
	Converged Status = iota
	// IterationLimitReached means the iteration cap was hit first; the
	// last computed profile is still usable, callers should inspect
	// ErrProfile and ErrBC before trusting it.
	IterationLimitReached
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimitReached:
		return "iteration-limit"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the converged (or best-effort) boundary-layer solution.
// Eta, Y, U and T all have N+1 entries and share indexing. Y is the
// wall-normal physical-like coordinate obtained from the similarity
// coordinate; U is the velocity ratio f'; T the scaled temperature.
type Result struct {
	Eta []float64
	Y   []float64
	U   []float64
	T   []float64
	N   int

	// Alpha and Beta are the initial conditions f''(0) and T(0) used for
	// the returned profile.
	Alpha float64
	Beta  float64

	Iterations int
	Status     Status
	ErrProfile float64
	ErrBC      float64
}

// BCMet reports whether the far-field boundary residual met its
// tolerance. The outer loop never gates on this; it is an independently
// checked convergence fact.
func (r *Result) BCMet(tol float64) bool {
	return r.ErrBC <= tol
}
