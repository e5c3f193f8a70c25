package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOD(t *testing.T) {
	rp := NewSodProblem()
	assert.InDelta(t, 0.30313, rp.PStar, 1.e-5)
	assert.InDelta(t, 0.92745, rp.UStar, 1.e-5)
	rhoL, rhoR := rp.StarDensities()
	assert.InDelta(t, 0.42632, rhoL, 1.e-5)
	assert.InDelta(t, 0.26557, rhoR, 1.e-5)

	X, Rho, P, U, E := SOD_calc(0.1)
	require.Equal(t, len(X), len(Rho))
	for i := 1; i < len(X); i++ {
		assert.True(t, X[i] >= X[i-1], "samples must be ordered")
	}
	// Key positions from the tabulated solution
	s := rp.WaveSpeeds()
	assert.InDelta(t, 0.3817, rp.X0+s[0]*0.1, 1.e-3)
	assert.InDelta(t, 0.4929, rp.X0+s[1]*0.1, 1.e-3)
	assert.InDelta(t, 0.5927, rp.X0+s[2]*0.1, 1.e-3)
	assert.True(t, math.Abs(rp.X0+s[4]*0.1-0.6752) < 0.0001)
	assert.True(t, math.Abs(rp.X0+s[4]*0.2-0.8504) < 0.0001)

	assert.Equal(t, 1., Rho[0])
	assert.Equal(t, 0.125, Rho[len(Rho)-1])
	assert.Equal(t, 0.1, P[len(P)-1])
	assert.Equal(t, 0., U[0])
	assert.InDelta(t, 1/(0.4*1), E[0], 1.e-14)
	rhoCheck := []float64{1, 0.9240353444481086, 0.4263194281781805, 0.26557371170513905, 0.125}
	for _, rho := range rhoCheck {
		assert.True(t, hasNear(Rho, rho, 0.001), "missing density %v", rho)
	}
}

func TestRiemannSampling(t *testing.T) {
	rp := NewSodProblem()
	// Before the waves arrive
	rho, u, p := rp.Sample(0.05, 0.2)
	assert.Equal(t, [3]float64{1, 0, 1}, [3]float64{rho, u, p})
	rho, u, p = rp.Sample(0.95, 0.2)
	assert.Equal(t, [3]float64{0.125, 0, 0.1}, [3]float64{rho, u, p})
	// Initial data
	rho, _, _ = rp.Sample(0.49, 0)
	assert.Equal(t, 1., rho)
	// Fan is isentropic and continuous at its tail
	s := rp.WaveSpeeds()
	xTail := rp.X0 + s[1]*0.2
	rhoFan, uFan, pFan := rp.Sample(xTail-1.e-9, 0.2)
	rhoStar, _ := rp.StarDensities()
	assert.InDelta(t, rhoStar, rhoFan, 1.e-6)
	assert.InDelta(t, rp.UStar, uFan, 1.e-6)
	assert.InDelta(t, rp.PStar, pFan, 1.e-6)
	assert.InDelta(t, pFan/math.Pow(rhoFan, 1.4), 1., 1.e-10)

	// Symmetric collision produces two shocks and a stationary contact
	rc, err := NewRiemannProblem(1.4, 1, 1, 1, 1, -1, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0., rc.UStar, 1.e-12)
	assert.Greater(t, rc.PStar, 1.)
	ws := rc.WaveSpeeds()
	assert.Equal(t, ws[0], ws[1])
	assert.Equal(t, ws[3], ws[4])
	assert.InDelta(t, -ws[0], ws[4], 1.e-12)

	_, err = NewRiemannProblem(1.4, 1, -10, 0.1, 1, 10, 0.1, 0)
	assert.Error(t, err)
	_, err = NewRiemannProblem(1.4, -1, 0, 1, 1, 0, 1, 0)
	assert.Error(t, err)
}

func hasNear(a []float64, val, tol float64) bool {
	for _, v := range a {
		if math.Abs(v-val) <= tol {
			return true
		}
	}
	return false
}
