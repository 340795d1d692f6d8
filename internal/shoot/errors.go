package shoot

import (
	"errors"
	"fmt"
)

// errSingular is returned by the 2x2 solve when the determinant is
// numerically zero; the driver wraps it with iteration context.
var errSingular = errors.New("shoot: singular 2x2 system")

// Integration pass labels used in error reporting.
const (
	passBaseline     = "baseline"
	passPerturbAlpha = "perturb-alpha"
	passPerturbBeta  = "perturb-beta"
)

// SingularJacobianError means the 2x2 shooting Jacobian determinant is
// numerically zero, so the Newton step is undefined. Usually a symptom of
// a bad initial guess pair.
type SingularJacobianError struct {
	Iteration   int
	Determinant float64
}

func (e *SingularJacobianError) Error() string {
	return fmt.Sprintf("shoot: singular jacobian at iteration %d (det=%.6g)", e.Iteration, e.Determinant)
}

// PassError wraps an integration failure with the outer iteration index
// and the pass (baseline, perturb-alpha, perturb-beta) that triggered it.
type PassError struct {
	Iteration int
	Pass      string
	Wrapped   error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("shoot: iteration %d, %s pass: %v", e.Iteration, e.Pass, e.Wrapped)
}

func (e *PassError) Unwrap() error {
	return e.Wrapped
}
