package Euler1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/sod_shock_tube"
)

type InitType uint

const (
	INIT_Sod InitType = iota
	INIT_Lax
	INIT_ShuOsher
	INIT_DensityWave
	INIT_Constant
)

var (
	InitNames = map[string]InitType{
		"sod":          INIT_Sod,
		"lax":          INIT_Lax,
		"shuosher":     INIT_ShuOsher,
		"shu-osher":    INIT_ShuOsher,
		"densitywave":  INIT_DensityWave,
		"density wave": INIT_DensityWave,
		"constant":     INIT_Constant,
		"freestream":   INIT_Constant,
	}
	InitPrintNames = []string{"Sod Shock Tube", "Lax Shock Tube", "Shu-Osher Shock Entropy Interaction",
		"Density Wave", "Constant State"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType, err error) {
	var ok bool
	if len(label) == 0 {
		return INIT_Sod, nil
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("%w: [%s]", DG1D.ErrUnsupportedInitialCondition, label)
	}
	return
}

// ExactState returns the analytic conserved state at (x, t)
type ExactState func(x, t float64) Conserved

// Case bundles an initial condition with its domain and natural boundary
type Case struct {
	Init       InitType
	XMin, XMax float64
	FinalTime  float64
	BC         DG1D.BCType
	IC         DG1D.InitialCondition
	Exact      ExactState // nil when no closed form is known
}

func (it InitType) NewCase(gamma float64) (c *Case, err error) {
	c = &Case{Init: it, BC: DG1D.BC_Transmissive}
	switch it {
	case INIT_Sod:
		c.XMin, c.XMax, c.FinalTime = 0, 1, 0.2
		var rp *sod_shock_tube.RiemannProblem
		if rp, err = sod_shock_tube.NewRiemannProblem(gamma, 1, 0, 1, 0.125, 0, 0.1, 0.5); err != nil {
			return
		}
		c.riemann(gamma, rp)
	case INIT_Lax:
		c.XMin, c.XMax, c.FinalTime = -5, 5, 1.3
		var rp *sod_shock_tube.RiemannProblem
		if rp, err = sod_shock_tube.NewRiemannProblem(gamma, 0.445, 0.698, 3.528, 0.5, 0, 0.571, 0); err != nil {
			return
		}
		c.riemann(gamma, rp)
	case INIT_ShuOsher:
		c.XMin, c.XMax, c.FinalTime = -5, 5, 1.8
		c.IC = func(x float64) Conserved {
			if x < -4 {
				return NewStateP(gamma, 3.857143, 2.629369, 10.333333)
			}
			return NewStateP(gamma, 1+0.2*math.Sin(5*x), 0, 1)
		}
	case INIT_DensityWave:
		c.XMin, c.XMax, c.FinalTime = 0, 1, 1
		c.BC = DG1D.BC_Periodic
		c.Exact = func(x, t float64) Conserved {
			return NewStateP(gamma, 1+0.2*math.Sin(2*math.Pi*(x-t)), 1, 1)
		}
		c.IC = func(x float64) Conserved { return c.Exact(x, 0) }
	case INIT_Constant:
		c.XMin, c.XMax, c.FinalTime = 0, 1, 1
		q := Conserved{1, 0, 2.5}
		c.Exact = func(x, t float64) Conserved { return q }
		c.IC = func(x float64) Conserved { return q }
	default:
		err = fmt.Errorf("%w: init type %d", DG1D.ErrUnsupportedInitialCondition, it)
	}
	return
}

func (c *Case) riemann(gamma float64, rp *sod_shock_tube.RiemannProblem) {
	c.Exact = func(x, t float64) Conserved {
		rho, u, p := rp.Sample(x, t)
		return NewStateP(gamma, rho, u, p)
	}
	c.IC = func(x float64) Conserved { return c.Exact(x, 0) }
}
