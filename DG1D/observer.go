package DG1D

// Observer receives the solution at selected steps of a run. The state must
// not be retained past the call, it is advanced in place.
type Observer interface {
	Observe(step int, time float64, U *State) error
}

type ObserverFunc func(step int, time float64, U *State) error

func (f ObserverFunc) Observe(step int, time float64, U *State) error {
	return f(step, time, U)
}
