package DG1D

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration               = errors.New("invalid configuration")
	ErrNumericalInstability        = errors.New("numerical instability")
	ErrUnsupportedInitialCondition = errors.New("unsupported initial condition")
)

// SimulationError records where in the run a failure happened
type SimulationError struct {
	Step int
	Time float64
	Err  error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d, time %.6g: %v", e.Step, e.Time, e.Err)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

func NewSimulationError(step int, time float64, err error) *SimulationError {
	return &SimulationError{Step: step, Time: time, Err: err}
}
