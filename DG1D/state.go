package DG1D

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/dgeuler1d/utils"
)

const NumFields = 3

type Field uint8

const (
	Density Field = iota
	Momentum
	Energy
)

var FieldNames = []string{"Rho", "RhoU", "Ener"}

func (f Field) String() string { return FieldNames[f] }

// State holds modal coefficients of the conserved variables, one K x Np
// matrix per field with rows indexed by cell
type State struct {
	K, Np int
	Q     [NumFields]*mat.Dense
}

func NewState(K, Np int) (s *State) {
	s = &State{K: K, Np: Np}
	for n := range s.Q {
		s.Q[n] = mat.NewDense(K, Np, nil)
	}
	return
}

func (s *State) Copy() (c *State) {
	c = NewState(s.K, s.Np)
	c.CopyFrom(s)
	return
}

func (s *State) CopyFrom(src *State) {
	for n := range s.Q {
		s.Q[n].Copy(src.Q[n])
	}
}

func (s *State) Data(f Field) []float64 {
	return s.Q[f].RawMatrix().Data
}

// CellAverage is the mode 0 coefficient of each field
func (s *State) CellAverage(i int) (q [NumFields]float64) {
	for n := range s.Q {
		q[n] = s.Q[n].At(i, 0)
	}
	return
}

func (s *State) IsFinite() bool {
	for n := range s.Q {
		if !utils.IsFinite(s.Data(Field(n))...) {
			return false
		}
	}
	return true
}

// MaxAbs is the largest coefficient magnitude over all fields
func (s *State) MaxAbs() (m float64) {
	for n := range s.Q {
		d := s.Data(Field(n))
		m = math.Max(m, math.Max(floats.Max(d), -floats.Min(d)))
	}
	return
}
