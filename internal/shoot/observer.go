package shoot

// Observer receives per-iteration progress from the outer Newton loop.
// errProfile is the change in the Euclidean norm of the velocity profile
// between consecutive iterations; errBC the far-field velocity residual
// of this iteration's baseline pass.
type Observer interface {
	OnIteration(iter int, errProfile, errBC float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(iter int, errProfile, errBC float64)

func (f ObserverFunc) OnIteration(iter int, errProfile, errBC float64) {
	f(iter, errProfile, errBC)
}
