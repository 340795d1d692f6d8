package integrators

import "github.com/kylecz/blshoot/internal/bl"

// Cash-Karp coefficients (RKF45, 5th-order weights only)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 3.0 / 5.0
	a5 = 1.0
	a6 = 7.0 / 8.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 3.0 / 10.0
	b42 = -9.0 / 10.0
	b43 = 6.0 / 5.0
	b51 = -11.0 / 54.0
	b52 = 5.0 / 2.0
	b53 = -70.0 / 27.0
	b54 = 35.0 / 27.0
	b61 = 1631.0 / 55296.0
	b62 = 175.0 / 512.0
	b63 = 575.0 / 13824.0
	b64 = 44275.0 / 110592.0
	b65 = 253.0 / 4096.0

	c1 = 37.0 / 378.0
	c3 = 250.0 / 621.0
	c4 = 125.0 / 594.0
	c6 = 512.0 / 1771.0
)

// RKF45 is a fixed-step Runge-Kutta-Fehlberg stepper. Only the 5th-order
// stage combination is applied; the embedded error estimate is not
// computed and the step size is never adapted.
//
// The update is decoupled: each state component is advanced through its
// own six stages in the fixed order y5, y4, y3, y2, y1, and every stage
// sees the other four components frozen at their pre-step values. This
// semi-implicit splitting is part of the numerical contract, not an
// approximation to remove.
type RKF45 struct{}

func NewRKF45() *RKF45 {
	return &RKF45{}
}

// Step advances y from eta to eta+h.
func (r *RKF45) Step(sys bl.System, y bl.State, eta, h float64) (bl.State, error) {
	n := sys.Dim()
	out := y.Clone()
	stage := y.Clone()

	for comp := n - 1; comp >= 0; comp-- {
		// All stages start from the original pre-step state; only the
		// component being advanced varies across stages.
		copy(stage, y)

		k1, err := sys.Derive(comp, eta, y)
		if err != nil {
			return nil, err
		}

		stage[comp] = y[comp] + h*b21*k1
		k2, err := sys.Derive(comp, eta+a2*h, stage)
		if err != nil {
			return nil, err
		}

		stage[comp] = y[comp] + h*(b31*k1+b32*k2)
		k3, err := sys.Derive(comp, eta+a3*h, stage)
		if err != nil {
			return nil, err
		}

		stage[comp] = y[comp] + h*(b41*k1+b42*k2+b43*k3)
		k4, err := sys.Derive(comp, eta+a4*h, stage)
		if err != nil {
			return nil, err
		}

		stage[comp] = y[comp] + h*(b51*k1+b52*k2+b53*k3+b54*k4)
		k5, err := sys.Derive(comp, eta+a5*h, stage)
		if err != nil {
			return nil, err
		}

		stage[comp] = y[comp] + h*(b61*k1+b62*k2+b63*k3+b64*k4+b65*k5)
		k6, err := sys.Derive(comp, eta+a6*h, stage)
		if err != nil {
			return nil, err
		}

		out[comp] = y[comp] + h*(c1*k1+c3*k3+c4*k4+c6*k6)
	}

	return out, nil
}
