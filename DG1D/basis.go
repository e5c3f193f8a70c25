package DG1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
	The modal basis is the Legendre family scaled so that
		(1/2) * Int_{-1}^{1} phi_i(r) phi_j(r) dr = delta_ij
	which makes phi_0 = 1 and the mode 0 coefficient the cell average.
	The element mass matrix is then Dx * I.
*/
func ShapeValue(j int, r float64) float64 {
	return math.Sqrt2 * JacobiP([]float64{r}, 0, 0, j)[0]
}

func ShapeGrad(j int, r float64) float64 {
	return math.Sqrt2 * GradJacobiP([]float64{r}, 0, 0, j)[0]
}

// QuadratureTables holds basis values at the Gauss points (Vf, Vg) and at
// Nu equally spaced points (Vu). Vu row 0 is r = -1, row Nu-1 is r = +1.
type QuadratureTables struct {
	N, Np, Nu int
	R, W      []float64
	Vf, Vg    *mat.Dense // Np x Np, row = node, col = mode
	Ru        []float64
	Vu        *mat.Dense // Nu x Np
}

func NewQuadratureTables(N int) (qt *QuadratureTables, err error) {
	if N < 0 {
		err = fmt.Errorf("%w: polynomial degree must be >= 0, have %d", ErrConfiguration, N)
		return
	}
	var (
		Np = N + 1
		Nu = max(2, Np)
	)
	qt = &QuadratureTables{
		N:  N,
		Np: Np,
		Nu: Nu,
		Vf: mat.NewDense(Np, Np, nil),
		Vg: mat.NewDense(Np, Np, nil),
		Ru: floats.Span(make([]float64, Nu), -1, 1),
		Vu: mat.NewDense(Nu, Np, nil),
	}
	qt.Ru[Nu-1] = 1 // exact edge, Span can round
	qt.R, qt.W = JacobiGQ(0, 0, N)
	for j := 0; j < Np; j++ {
		for i, r := range qt.R {
			qt.Vf.Set(i, j, ShapeValue(j, r))
			qt.Vg.Set(i, j, ShapeGrad(j, r))
		}
		for i, r := range qt.Ru {
			qt.Vu.Set(i, j, ShapeValue(j, r))
		}
	}
	return
}

func (qt *QuadratureTables) LeftRow() []float64  { return qt.Vu.RawRowView(0) }
func (qt *QuadratureTables) RightRow() []float64 { return qt.Vu.RawRowView(qt.Nu - 1) }

// Evaluate sums the modal expansion at an arbitrary reference point
func (qt *QuadratureTables) Evaluate(coeffs []float64, r float64) (u float64) {
	for j, c := range coeffs {
		u += c * ShapeValue(j, r)
	}
	return
}

// Trace evaluates all fields of cell i using a precomputed basis row
func Trace(U *State, i int, row []float64) (q [NumFields]float64) {
	for n := 0; n < NumFields; n++ {
		q[n] = floats.Dot(row, U.Q[n].RawRowView(i))
	}
	return
}

func (qt *QuadratureTables) LeftEdge(U *State, i int) [NumFields]float64 {
	return Trace(U, i, qt.LeftRow())
}

func (qt *QuadratureTables) RightEdge(U *State, i int) [NumFields]float64 {
	return Trace(U, i, qt.RightRow())
}
