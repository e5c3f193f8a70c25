package DG1D

import (
	"fmt"
	"math"
)

// EffectiveCFL scales the user CFL by the DG stability limit 1/(2N+1)
func EffectiveCFL(CFL float64, N int) float64 {
	return CFL / float64(2*N+1)
}

// ComputeDT returns cfl*dx/maxSpeed, clipped so that t+dt does not pass tf
func ComputeDT(cfl, dx, maxSpeed, t, tf float64) (dt float64, err error) {
	if math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) || maxSpeed <= 0 {
		err = fmt.Errorf("%w: maximum wave speed is %v", ErrNumericalInstability, maxSpeed)
		return
	}
	dt = cfl * dx / maxSpeed
	if t+dt > tf {
		dt = tf - t
	}
	return
}
