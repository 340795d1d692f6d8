package bl

import "math"

// Similarity is the compressible laminar boundary-layer similarity system
// in first-order form: the Falkner-Skan-type momentum equation coupled to
// the energy equation, with Sutherland's law for viscosity.
//
// State layout: y = (f, f', f'', T, T') with T scaled by the freestream
// temperature.
type Similarity struct {
	Mach        float64 // freestream Mach number
	Temperature float64 // freestream static temperature [K]
}

func NewSimilarity(mach, temperature float64) *Similarity {
	return &Similarity{Mach: mach, Temperature: temperature}
}

func (s *Similarity) Dim() int { return Dim }

// ratio is the Sutherland coefficient scaled by the freestream
// temperature, cmu/Tinf.
func (s *Similarity) ratio() float64 { return Sutherland / s.Temperature }

// Derive evaluates the derivative of a single state component. The
// evaluation is pure; components 2 and 4 require a strictly positive
// scaled temperature and fail with NonPhysicalStateError otherwise.
func (s *Similarity) Derive(comp int, eta float64, y State) (float64, error) {
	switch comp {
	case IdxF:
		return y[IdxU], nil
	case IdxU:
		return y[IdxFpp], nil
	case IdxFpp:
		t := y[IdxT]
		if t <= 0 {
			return 0, &NonPhysicalStateError{Eta: eta, Temperature: t}
		}
		r := s.ratio()
		visc := y[IdxTp] * (1/(2*t) - 1/(t+r))
		return -y[IdxFpp]*visc - y[IdxF]*y[IdxFpp]*(t+r)/(math.Sqrt(t)*(1+r)), nil
	case IdxT:
		return y[IdxTp], nil
	case IdxTp:
		t := y[IdxT]
		if t <= 0 {
			return 0, &NonPhysicalStateError{Eta: eta, Temperature: t}
		}
		r := s.ratio()
		tp := y[IdxTp]
		conv := Prandtl * y[IdxF] * tp / math.Sqrt(t) * (t + r) / (1 + r)
		diss := (Gamma - 1) * Prandtl * s.Mach * s.Mach * y[IdxFpp] * y[IdxFpp]
		return -tp*tp*(0.5/t-1/(t+r)) - conv - diss, nil
	default:
		return 0, &ComponentError{Comp: comp}
	}
}
