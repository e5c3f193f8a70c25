package DG1D

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDT(t *testing.T) {
	assert.InDelta(t, 0.3, EffectiveCFL(0.9, 1), 1.e-15)
	assert.Equal(t, 0.9, EffectiveCFL(0.9, 0))

	dt, err := ComputeDT(0.3, 0.02, 2, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.003, dt, 1.e-15)

	// Clipped to reach the final time exactly
	dt, err = ComputeDT(0.3, 0.02, 2, 0.999, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, dt, 1.e-15)

	for _, speed := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = ComputeDT(0.3, 0.02, speed, 0, 1)
		assert.ErrorIs(t, err, ErrNumericalInstability)
	}
}

func TestSimulationError(t *testing.T) {
	err := fmt.Errorf("run failed: %w",
		NewSimulationError(12, 0.25, fmt.Errorf("%w: density is NaN", ErrNumericalInstability)))
	assert.ErrorIs(t, err, ErrNumericalInstability)
	var se *SimulationError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 12, se.Step)
	assert.Equal(t, 0.25, se.Time)
	assert.Contains(t, err.Error(), "step 12")
}

func TestSSPRK3SteadyState(t *testing.T) {
	constant := func(x float64) [NumFields]float64 { return [NumFields]float64{1, 0, 2.5} }
	for _, N := range []int{0, 2} {
		a, _ := newAdvectionCase(t, N, 4, BC_Transmissive, 1)
		U := Project(a.Mesh, a.Tables, constant)
		before := U.Copy()
		lim := &countingLimiter{}
		rk := NewSSPRK3(a, lim)
		for step := 0; step < 25; step++ {
			require.NoError(t, rk.Step(U, 0.01))
		}
		assert.Equal(t, 75, lim.calls)
		for n := 0; n < NumFields; n++ {
			assert.InDeltaSlice(t, before.Data(Field(n)), U.Data(Field(n)), 1.e-13)
		}
	}
}

func TestSSPRK3PeriodicAdvection(t *testing.T) {
	// One period returns the initial data up to discretization error
	var (
		N, K = 2, 20
		tf   = 1. / 1.5
	)
	a, U := newAdvectionCase(t, N, K, BC_Periodic, 1)
	U0 := U.Copy()
	rk := NewSSPRK3(a, nil)
	cfl := EffectiveCFL(0.9, N)
	var time float64
	for tf-time > 1.e-12 {
		dt, err := ComputeDT(cfl, a.Mesh.Dx, a.MaxWaveSpeed(U), time, tf)
		require.NoError(t, err)
		require.NoError(t, rk.Step(U, dt))
		time += dt
	}
	assert.InDelta(t, tf, time, 1.e-12)
	exact := func(x float64) float64 { return sineWave(x)[Density] }
	assert.Less(t, L2Error(a.Mesh, a.Tables, U, Density, exact), 1.e-3)
	// The mean is carried through unchanged
	var m0, m1 float64
	for i := 0; i < K; i++ {
		m0 += U0.Q[Density].At(i, 0)
		m1 += U.Q[Density].At(i, 0)
	}
	assert.InDelta(t, m0, m1, 1.e-12)
}
