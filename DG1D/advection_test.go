package DG1D

import (
	"math"
)

// advection transports every field with constant speed C using an upwind flux
type advection struct {
	C float64
}

func (a advection) PhysicalFlux(q [NumFields]float64) (f [NumFields]float64) {
	for n := range q {
		f[n] = a.C * q[n]
	}
	return
}

func (a advection) NumericalFlux(qL, qR [NumFields]float64) (f [NumFields]float64) {
	for n := range qL {
		f[n] = 0.5*a.C*(qL[n]+qR[n]) - 0.5*math.Abs(a.C)*(qR[n]-qL[n])
	}
	return
}

func (a advection) MaxWaveSpeed(q [NumFields]float64) float64 {
	return math.Abs(a.C)
}

func sineWave(x float64) (q [NumFields]float64) {
	s := math.Sin(2 * math.Pi * x)
	return [NumFields]float64{1 + 0.5*s, s, 2 - s}
}

type countingLimiter struct {
	calls int
}

func (cl *countingLimiter) Limit(U *State, dx float64) error {
	cl.calls++
	return nil
}
