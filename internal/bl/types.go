package bl

import "math"

// Physical constants of the similarity model. These are part of the model
// contract, not user configuration.
const (
	Gamma      = 1.4   // specific-heat ratio
	Sutherland = 110.4 // Sutherland coefficient [K]
	Prandtl    = 0.72  // Prandtl number
)

// Indices into a State vector.
const (
	IdxF   = 0 // scaled stream function f
	IdxU   = 1 // f' (velocity ratio u/u_inf)
	IdxFpp = 2 // f''
	IdxT   = 3 // scaled temperature T/T_inf
	IdxTp  = 4 // T'
)

// Dim is the number of state components.
const Dim = 5

// State is the 5-component similarity state (f, f', f'', T, T') at one
// grid point.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is a componentwise ODE system y' = f(eta, y). The integrator
// advances one component at a time, so the right-hand side is exposed per
// component rather than as a vector.
type System interface {
	Dim() int
	Derive(comp int, eta float64, y State) (float64, error)
}
