package bl

import "fmt"

// NonPhysicalStateError reports a scaled temperature that dropped to or
// below zero during integration. The model is undefined there (sqrt and
// division by T), so the run must abort rather than propagate NaN.
type NonPhysicalStateError struct {
	Eta         float64
	Temperature float64
}

func (e *NonPhysicalStateError) Error() string {
	return fmt.Sprintf("bl: non-physical state at eta=%.4f: scaled temperature %.6g <= 0", e.Eta, e.Temperature)
}

// ComponentError reports a derivative request for a component index
// outside the 5-component state.
type ComponentError struct {
	Comp int
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("bl: no such state component %d", e.Comp)
}
