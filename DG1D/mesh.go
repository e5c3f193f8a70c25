package DG1D

import (
	"fmt"
)

// Mesh1D is a uniform partition of [XMin, XMax] into K cells
type Mesh1D struct {
	XMin, XMax, Dx float64
	K              int
}

func NewMesh1D(xmin, xmax float64, K int) (m *Mesh1D, err error) {
	switch {
	case K < 1:
		err = fmt.Errorf("%w: number of cells must be positive, have %d", ErrConfiguration, K)
		return
	case !(xmax > xmin):
		err = fmt.Errorf("%w: domain [%g, %g] is empty", ErrConfiguration, xmin, xmax)
		return
	}
	m = &Mesh1D{
		XMin: xmin,
		XMax: xmax,
		Dx:   (xmax - xmin) / float64(K),
		K:    K,
	}
	return
}

func (m *Mesh1D) CellCenter(i int) float64 {
	return m.XMin + (float64(i)+0.5)*m.Dx
}

// X maps reference coordinate r in [-1,1] of cell i to physical space
func (m *Mesh1D) X(i int, r float64) float64 {
	return m.CellCenter(i) + 0.5*m.Dx*r
}
