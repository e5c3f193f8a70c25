package DG1D

import (
	"fmt"
	"strings"
)

type BCType uint8

const (
	BC_Transmissive BCType = iota
	BC_Reflective
	BC_Periodic
)

var (
	BCNames = map[string]BCType{
		"transmissive": BC_Transmissive,
		"outflow":      BC_Transmissive,
		"reflective":   BC_Reflective,
		"wall":         BC_Reflective,
		"periodic":     BC_Periodic,
	}
	BCPrintNames = []string{"Transmissive", "Reflective Wall", "Periodic"}
)

func (bc BCType) Print() (txt string) {
	txt = BCPrintNames[bc]
	return
}

func NewBCType(label string) (bc BCType, err error) {
	var ok bool
	if len(label) == 0 {
		return BC_Transmissive, nil
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if bc, ok = BCNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use boundary condition named [%s]", ErrConfiguration, label)
	}
	return
}

// Ghost returns the exterior state seen across a domain boundary face.
// Periodic boundaries never call this, they are coupled as interior faces.
func (bc BCType) Ghost(q [NumFields]float64) (g [NumFields]float64) {
	g = q
	if bc == BC_Reflective {
		g[Momentum] = -q[Momentum]
	}
	return
}
