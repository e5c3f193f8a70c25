package DG1D

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newAdvectionCase(t *testing.T, N, K int, bc BCType, parallelDegree int) (a *Assembler, U *State) {
	t.Helper()
	qt, err := NewQuadratureTables(N)
	require.NoError(t, err)
	m, err := NewMesh1D(0, 1, K)
	require.NoError(t, err)
	a = NewAssembler(m, qt, advection{C: 1.5}, bc, parallelDegree)
	U = Project(m, qt, sineWave)
	return
}

func TestAssemblerFreeStream(t *testing.T) {
	constant := func(x float64) [NumFields]float64 { return [NumFields]float64{1, 0, 2.5} }
	for N := 0; N <= 4; N++ {
		for _, bc := range []BCType{BC_Transmissive, BC_Periodic} {
			a, _ := newAdvectionCase(t, N, 6, bc, 1)
			U := Project(a.Mesh, a.Tables, constant)
			Res := NewState(a.Mesh.K, a.Tables.Np)
			require.NoError(t, a.Assemble(U, Res))
			assert.InDeltaf(t, 0., Res.MaxAbs(), 1.e-13, "N = %d, bc = %s", N, bc.Print())
		}
	}
}

func TestAssemblerConservation(t *testing.T) {
	for N := 0; N <= 3; N++ {
		a, U := newAdvectionCase(t, N, 9, BC_Transmissive, 1)
		Res := NewState(a.Mesh.K, a.Tables.Np)
		require.NoError(t, a.Assemble(U, Res))
		var (
			fLeft  = a.Flux.PhysicalFlux(a.Tables.LeftEdge(U, 0))
			fRight = a.Flux.PhysicalFlux(a.Tables.RightEdge(U, a.Mesh.K-1))
		)
		// Interior faces cancel in the cell average equations
		for n := 0; n < NumFields; n++ {
			var sum float64
			for i := 0; i < a.Mesh.K; i++ {
				sum += Res.Q[n].At(i, 0)
			}
			assert.InDeltaf(t, fLeft[n]-fRight[n], -sum, 1.e-12, "N = %d, field %s", N, Field(n))
		}
	}
	// Periodic domains conserve exactly
	a, U := newAdvectionCase(t, 2, 9, BC_Periodic, 1)
	Res := NewState(a.Mesh.K, a.Tables.Np)
	require.NoError(t, a.Assemble(U, Res))
	for n := 0; n < NumFields; n++ {
		var sum float64
		for i := 0; i < a.Mesh.K; i++ {
			sum += Res.Q[n].At(i, 0)
		}
		assert.InDelta(t, 0., sum, 1.e-12)
	}
}

func TestAssemblerSingleJump(t *testing.T) {
	// Piecewise constant upwind advection: Res_i = C*(u_i - u_{i-1})
	qt, err := NewQuadratureTables(0)
	require.NoError(t, err)
	m, err := NewMesh1D(0, 1, 4)
	require.NoError(t, err)
	a := NewAssembler(m, qt, advection{C: 2}, BC_Transmissive, 1)
	U := Project(m, qt, func(x float64) [NumFields]float64 {
		if x < 0.5 {
			return [NumFields]float64{1, 0, 0}
		}
		return [NumFields]float64{0.125, 0, 0}
	})
	Res := NewState(m.K, qt.Np)
	require.NoError(t, a.Assemble(U, Res))
	assert.InDelta(t, 0., Res.Q[Density].At(1, 0), 1.e-15)
	assert.InDelta(t, 2*(0.125-1), Res.Q[Density].At(2, 0), 1.e-15)
	assert.InDelta(t, 0., Res.Q[Density].At(3, 0), 1.e-15)
}

func TestAssemblerParallelMatchesSerial(t *testing.T) {
	defer goleak.VerifyNone(t)
	for _, bc := range []BCType{BC_Transmissive, BC_Reflective, BC_Periodic} {
		aS, U := newAdvectionCase(t, 3, 37, bc, 1)
		aP, _ := newAdvectionCase(t, 3, 37, bc, 4)
		require.Equal(t, 4, aP.Partitions.ParallelDegree)
		ResS := NewState(aS.Mesh.K, aS.Tables.Np)
		ResP := NewState(aP.Mesh.K, aP.Tables.Np)
		require.NoError(t, aS.Assemble(U, ResS))
		require.NoError(t, aP.Assemble(U, ResP))
		for n := 0; n < NumFields; n++ {
			if diff := cmp.Diff(ResS.Data(Field(n)), ResP.Data(Field(n)),
				cmpopts.EquateApprox(0, 1.e-14)); diff != "" {
				t.Errorf("%s residual mismatch (-serial +parallel):\n%s", Field(n), diff)
			}
		}
	}
}

func TestBoundaryConditions(t *testing.T) {
	q := [NumFields]float64{1, 0.3, 2.5}
	assert.Equal(t, q, BC_Transmissive.Ghost(q))
	assert.Equal(t, [NumFields]float64{1, -0.3, 2.5}, BC_Reflective.Ghost(q))

	for label, expected := range map[string]BCType{
		"":             BC_Transmissive,
		"Transmissive": BC_Transmissive,
		" wall ":       BC_Reflective,
		"PERIODIC":     BC_Periodic,
	} {
		bc, err := NewBCType(label)
		require.NoError(t, err)
		assert.Equal(t, expected, bc)
	}
	_, err := NewBCType("inflow")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestMaxWaveSpeed(t *testing.T) {
	a, U := newAdvectionCase(t, 2, 5, BC_Transmissive, 1)
	assert.Equal(t, 1.5, a.MaxWaveSpeed(U))
}
