package Euler1D

import (
	"math"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/utils"
)

// Conserved variables: density, momentum, total energy per volume
type Conserved = [DG1D.NumFields]float64

/*
	Calorically perfect gas
		p = (Gamma-1) * (E - 0.5*rho*u^2)
		F(q) = [rho*u, rho*u^2 + p, u*(E+p)]
*/
type State struct {
	Gamma, Rho, RhoU, Ener float64
	U, Pres, CVel, Ht      float64
}

func NewState(gamma float64, q Conserved) (s *State) {
	s = &State{
		Gamma: gamma,
		Rho:   q[DG1D.Density],
		RhoU:  q[DG1D.Momentum],
		Ener:  q[DG1D.Energy],
	}
	s.U = s.RhoU / s.Rho
	s.Pres = (gamma - 1.) * (s.Ener - 0.5*s.RhoU*s.U)
	s.CVel = math.Sqrt(gamma * s.Pres / s.Rho)
	s.Ht = (s.Ener + s.Pres) / s.Rho
	return
}

// NewStateP builds the conserved state from primitive density, velocity, pressure
func NewStateP(gamma, rho, u, p float64) Conserved {
	return Conserved{rho, rho * u, p/(gamma-1.) + 0.5*rho*u*u}
}

func (s *State) Flux() Conserved {
	return Conserved{s.RhoU, s.RhoU*s.U + s.Pres, s.U * (s.Ener + s.Pres)}
}

// Gas is the Euler flux model used by the DG assembler
type Gas struct {
	Gamma    float64
	FluxType FluxType
}

func NewGas(gamma float64, ft FluxType) *Gas {
	return &Gas{Gamma: gamma, FluxType: ft}
}

func (g *Gas) PhysicalFlux(q Conserved) Conserved {
	return NewState(g.Gamma, q).Flux()
}

func (g *Gas) MaxWaveSpeed(q Conserved) float64 {
	s := NewState(g.Gamma, q)
	return math.Abs(s.U) + s.CVel
}

func (g *Gas) NumericalFlux(qL, qR Conserved) Conserved {
	sL, sR := NewState(g.Gamma, qL), NewState(g.Gamma, qR)
	switch g.FluxType {
	case FLUX_Average:
		return AverageFlux(sL, sR)
	case FLUX_Roe:
		return RoeFlux(sL, sR)
	case FLUX_HLL:
		return HLLFlux(sL, sR)
	default:
		return LaxFlux(sL, sR)
	}
}

// Primitive returns density, velocity and pressure
func (g *Gas) Primitive(q Conserved) (rho, u, p float64) {
	s := NewState(g.Gamma, q)
	return s.Rho, s.U, s.Pres
}

// Admissible is true for finite, positive density and pressure
func (g *Gas) Admissible(q Conserved) bool {
	s := NewState(g.Gamma, q)
	return utils.IsFinite(q[:]...) && s.Rho > 0 && s.Pres > 0
}
