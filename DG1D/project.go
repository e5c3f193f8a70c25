package DG1D

import (
	"math"
)

// InitialCondition returns the conserved state at a physical coordinate
type InitialCondition func(x float64) (q [NumFields]float64)

// Project computes the L2 projection of ic onto the modal basis of every cell
func Project(mesh *Mesh1D, qt *QuadratureTables, ic InitialCondition) (U *State) {
	U = NewState(mesh.K, qt.Np)
	for i := 0; i < mesh.K; i++ {
		for q, r := range qt.R {
			val := ic(mesh.X(i, r))
			vf := qt.Vf.RawRowView(q)
			wq := 0.5 * qt.W[q]
			for n := 0; n < NumFields; n++ {
				row := U.Q[n].RawRowView(i)
				for j := range row {
					row[j] += wq * vf[j] * val[n]
				}
			}
		}
	}
	return
}

// L2Error integrates (u_h - exact)^2 over the mesh with a quadrature rule
// two orders finer than the solution's own
func L2Error(mesh *Mesh1D, qt *QuadratureTables, U *State, f Field, exact func(x float64) float64) float64 {
	var (
		R, W = JacobiGQ(0, 0, qt.N+2)
		V    = make([][]float64, len(R))
		sum  float64
	)
	for q, r := range R {
		V[q] = make([]float64, qt.Np)
		for j := range V[q] {
			V[q][j] = ShapeValue(j, r)
		}
	}
	for i := 0; i < mesh.K; i++ {
		coeffs := U.Q[f].RawRowView(i)
		for q, r := range R {
			var uh float64
			for j, c := range coeffs {
				uh += c * V[q][j]
			}
			e := uh - exact(mesh.X(i, r))
			sum += 0.5 * mesh.Dx * W[q] * e * e
		}
	}
	return math.Sqrt(sum)
}

// L1Error is the mean absolute difference sampled at the uniform points of
// every cell
func L1Error(mesh *Mesh1D, qt *QuadratureTables, U *State, f Field, exact func(x float64) float64) float64 {
	var (
		sum float64
		n   int
	)
	for i := 0; i < mesh.K; i++ {
		coeffs := U.Q[f].RawRowView(i)
		for q, r := range qt.Ru {
			var uh float64
			for j, c := range coeffs {
				uh += c * qt.Vu.At(q, j)
			}
			sum += math.Abs(uh - exact(mesh.X(i, r)))
			n++
		}
	}
	return sum / float64(n)
}
