package Euler1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/dgeuler1d/DG1D"
)

type FluxType uint

const (
	FLUX_LaxFriedrichs FluxType = iota
	FLUX_Roe
	FLUX_HLL
	FLUX_Average
)

var (
	FluxNames = map[string]FluxType{
		"lax":     FLUX_LaxFriedrichs,
		"rusanov": FLUX_LaxFriedrichs,
		"roe":     FLUX_Roe,
		"hll":     FLUX_HLL,
		"average": FLUX_Average,
	}
	FluxPrintNames = []string{"Lax Friedrichs (Rusanov)", "Roe", "HLL", "Average"}
)

func (ft FluxType) Print() (txt string) {
	txt = FluxPrintNames[ft]
	return
}

func NewFluxType(label string) (ft FluxType, err error) {
	var ok bool
	if len(label) == 0 {
		return FLUX_LaxFriedrichs, nil
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if ft, ok = FluxNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use flux named [%s]", DG1D.ErrConfiguration, label)
	}
	return
}

// AverageFlux is central and has no dissipation, useful only for testing
func AverageFlux(sL, sR *State) (f Conserved) {
	fL, fR := sL.Flux(), sR.Flux()
	for n := range f {
		f[n] = 0.5 * (fL[n] + fR[n])
	}
	return
}

// LaxFlux is the local Lax-Friedrichs (Rusanov) flux
func LaxFlux(sL, sR *State) (f Conserved) {
	var (
		fL, fR = sL.Flux(), sR.Flux()
		qL     = Conserved{sL.Rho, sL.RhoU, sL.Ener}
		qR     = Conserved{sR.Rho, sR.RhoU, sR.Ener}
		LFc    = math.Max(math.Abs(sL.U)+sL.CVel, math.Abs(sR.U)+sR.CVel)
	)
	for n := range f {
		f[n] = 0.5*(fL[n]+fR[n]) - 0.5*LFc*(qR[n]-qL[n])
	}
	return
}

// RoeFlux uses Roe averaged eigenvalues with the Harten entropy fix
func RoeFlux(sL, sR *State) (f Conserved) {
	var (
		srl, srr = math.Sqrt(sL.Rho), math.Sqrt(sR.Rho)
		roeAve   = func(uL, uR float64) float64 { return (srl*uL + srr*uR) / (srl + srr) }
		rhoRL    = srl * srr
		uRL      = roeAve(sL.U, sR.U)
		htRL     = roeAve(sL.Ht, sR.Ht)
		aRL      = math.Sqrt((sL.Gamma - 1) * (htRL - 0.5*uRL*uRL))
		delRho   = sR.Rho - sL.Rho
		delU     = sR.U - sL.U
		delP     = sR.Pres - sL.Pres
		fAve     = AverageFlux(sL, sR)
	)
	// Phi modifies the eigenvalues near zero to eliminate expansion shocks
	phi := func(eig, del float64) float64 {
		absLam := math.Abs(eig)
		if absLam > del {
			return absLam
		}
		return (eig*eig + del*del) / (2 * del)
	}
	var (
		delta            = aRL / 20
		phi1, phi2, phi3 = phi(uRL-aRL, delta), phi(uRL, delta), phi(uRL+aRL, delta)
		ooarl2           = 1 / (aRL * aRL)
		f1               = (delP - rhoRL*aRL*delU) * 0.5 * ooarl2
		f2               = delRho - delP*ooarl2
		f3               = (delP + rhoRL*aRL*delU) * 0.5 * ooarl2
	)
	f[DG1D.Density] = fAve[DG1D.Density] - 0.5*(phi1*f1+phi2*f2+phi3*f3)
	f[DG1D.Momentum] = fAve[DG1D.Momentum] - 0.5*(phi1*f1*(uRL-aRL)+phi2*f2*uRL+phi3*f3*(uRL+aRL))
	f[DG1D.Energy] = fAve[DG1D.Energy] - 0.5*(phi1*f1*(htRL-aRL*uRL)+phi2*f2*uRL*uRL*0.5+phi3*f3*(htRL+uRL*aRL))
	return
}

// HLLFlux uses Davis wave speed estimates
func HLLFlux(sL, sR *State) (f Conserved) {
	var (
		fL, fR = sL.Flux(), sR.Flux()
		qL     = Conserved{sL.Rho, sL.RhoU, sL.Ener}
		qR     = Conserved{sR.Rho, sR.RhoU, sR.Ener}
		SL     = math.Min(sL.U-sL.CVel, sR.U-sR.CVel)
		SR     = math.Max(sL.U+sL.CVel, sR.U+sR.CVel)
	)
	switch {
	case SL >= 0:
		return fL
	case SR <= 0:
		return fR
	}
	for n := range f {
		f[n] = (SR*fL[n] - SL*fR[n] + SL*SR*(qR[n]-qL[n])) / (SR - SL)
	}
	return
}
