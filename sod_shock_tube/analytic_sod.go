package sod_shock_tube

import (
	"fmt"
	"math"

	"github.com/notargets/dgeuler1d/utils"
)

// RiemannProblem is the exact solution of a 1D Riemann problem for a
// calorically perfect gas with the initial jump located at X0
type RiemannProblem struct {
	Gamma        float64
	RhoL, UL, PL float64
	RhoR, UR, PR float64
	X0           float64
	PStar, UStar float64
	cL, cR       float64
	iterations   int
}

func NewSodProblem() *RiemannProblem {
	rp, err := NewRiemannProblem(1.4, 1, 0, 1, 0.125, 0, 0.1, 0.5)
	if err != nil {
		panic(err)
	}
	return rp
}

func NewRiemannProblem(gamma, rhoL, uL, pL, rhoR, uR, pR, x0 float64) (rp *RiemannProblem, err error) {
	if rhoL <= 0 || rhoR <= 0 || pL <= 0 || pR <= 0 || gamma <= 1 {
		err = fmt.Errorf("riemann problem needs positive density and pressure and gamma > 1")
		return
	}
	rp = &RiemannProblem{
		Gamma: gamma,
		RhoL:  rhoL,
		UL:    uL,
		PL:    pL,
		RhoR:  rhoR,
		UR:    uR,
		PR:    pR,
		X0:    x0,
		cL:    math.Sqrt(gamma * pL / rhoL),
		cR:    math.Sqrt(gamma * pR / rhoR),
	}
	// Pressure positivity condition
	if 2*(rp.cL+rp.cR)/(gamma-1) <= uR-uL {
		err = fmt.Errorf("initial data generates vacuum")
		return
	}
	err = rp.solveStar()
	return
}

// pressureFunction is Toro's f_K(p) and its derivative for one side
func (rp *RiemannProblem) pressureFunction(p, rhoK, pK, cK float64) (f, df float64) {
	g := rp.Gamma
	if p > pK { // shock
		A := 2 / ((g + 1) * rhoK)
		B := (g - 1) / (g + 1) * pK
		q := math.Sqrt(A / (B + p))
		f = (p - pK) * q
		df = q * (1 - 0.5*(p-pK)/(B+p))
		return
	}
	// rarefaction
	pr := p / pK
	f = 2 * cK / (g - 1) * (math.Pow(pr, (g-1)/(2*g)) - 1)
	df = 1 / (rhoK * cK) * math.Pow(pr, -(g+1)/(2*g))
	return
}

func (rp *RiemannProblem) solveStar() (err error) {
	var (
		tol  = 1.e-14
		du   = rp.UR - rp.UL
		p    = math.Max(tol, 0.5*(rp.PL+rp.PR)-0.125*du*(rp.RhoL+rp.RhoR)*(rp.cL+rp.cR))
		fL   float64
		fR   float64
		dfL  float64
		dfR  float64
		pNew float64
	)
	for rp.iterations = 1; rp.iterations <= 100; rp.iterations++ {
		fL, dfL = rp.pressureFunction(p, rp.RhoL, rp.PL, rp.cL)
		fR, dfR = rp.pressureFunction(p, rp.RhoR, rp.PR, rp.cR)
		pNew = math.Max(tol, p-(fL+fR+du)/(dfL+dfR))
		change := 2 * math.Abs(pNew-p) / (pNew + p)
		p = pNew
		if change < tol {
			break
		}
	}
	if rp.iterations > 100 || !utils.IsFinite(p) {
		return fmt.Errorf("star pressure iteration did not converge, p = %v", p)
	}
	fL, _ = rp.pressureFunction(p, rp.RhoL, rp.PL, rp.cL)
	fR, _ = rp.pressureFunction(p, rp.RhoR, rp.PR, rp.cR)
	rp.PStar = p
	rp.UStar = 0.5*(rp.UL+rp.UR) + 0.5*(fR-fL)
	return
}

// StarDensities are the densities either side of the contact
func (rp *RiemannProblem) StarDensities() (rhoStarL, rhoStarR float64) {
	var (
		g  = rp.Gamma
		g6 = (g - 1) / (g + 1)
	)
	starRho := func(rhoK, pK float64) float64 {
		pr := rp.PStar / pK
		if pr > 1 {
			return rhoK * (pr + g6) / (g6*pr + 1)
		}
		return rhoK * math.Pow(pr, 1/g)
	}
	return starRho(rp.RhoL, rp.PL), starRho(rp.RhoR, rp.PR)
}

// WaveSpeeds are the left wave head and tail, the contact and the right wave
// tail and head. Shocks have equal head and tail speeds.
func (rp *RiemannProblem) WaveSpeeds() (s [5]float64) {
	var (
		g  = rp.Gamma
		g1 = (g - 1) / (2 * g)
		g2 = (g + 1) / (2 * g)
	)
	if rp.PStar > rp.PL {
		s[0] = rp.UL - rp.cL*math.Sqrt(g2*rp.PStar/rp.PL+g1)
		s[1] = s[0]
	} else {
		s[0] = rp.UL - rp.cL
		s[1] = rp.UStar - rp.cL*math.Pow(rp.PStar/rp.PL, g1)
	}
	s[2] = rp.UStar
	if rp.PStar > rp.PR {
		s[4] = rp.UR + rp.cR*math.Sqrt(g2*rp.PStar/rp.PR+g1)
		s[3] = s[4]
	} else {
		s[3] = rp.UStar + rp.cR*math.Pow(rp.PStar/rp.PR, g1)
		s[4] = rp.UR + rp.cR
	}
	return
}

// Sample returns density, velocity and pressure at x and time t
func (rp *RiemannProblem) Sample(x, t float64) (rho, u, p float64) {
	var (
		g            = rp.Gamma
		g5           = 2 / (g + 1)
		g7           = (g - 1) / 2
		s            = rp.WaveSpeeds()
		rhoSL, rhoSR = rp.StarDensities()
		pStar, uStar = rp.PStar, rp.UStar
		rhoL, uL, pL = rp.RhoL, rp.UL, rp.PL
		rhoR, uR, pR = rp.RhoR, rp.UR, rp.PR
	)
	if t <= 0 {
		if x < rp.X0 {
			return rhoL, uL, pL
		}
		return rhoR, uR, pR
	}
	S := (x - rp.X0) / t
	switch {
	case S <= s[0]:
		return rhoL, uL, pL
	case S < s[1]: // left fan
		u = g5 * (rp.cL + g7*uL + S)
		c := g5 * (rp.cL + g7*(uL-S))
		rho = rhoL * math.Pow(c/rp.cL, 2/(g-1))
		p = pL * math.Pow(c/rp.cL, 2*g/(g-1))
		return
	case S <= s[2]:
		return rhoSL, uStar, pStar
	case S <= s[3]:
		return rhoSR, uStar, pStar
	case S < s[4]: // right fan
		u = g5 * (-rp.cR + g7*uR + S)
		c := g5 * (rp.cR - g7*(uR-S))
		rho = rhoR * math.Pow(c/rp.cR, 2/(g-1))
		p = pR * math.Pow(c/rp.cR, 2*g/(g-1))
		return
	default:
		return rhoR, uR, pR
	}
}

// SOD_calc samples the Sod shock tube on [0,1] at time t, with points placed
// either side of every wave and through the rarefaction. E is the internal
// energy per unit mass.
func SOD_calc(t float64) (X, Rho, P, U, E []float64) {
	var (
		rp           = NewSodProblem()
		x_min, x_max = 0., 1.
		s            = rp.WaveSpeeds()
		tol          = 1.e-4
		nFan         = 10
	)
	X = append(X, x_min)
	x1, x2 := rp.X0+s[0]*t, rp.X0+s[1]*t
	X = append(X, x1-tol)
	for i := 0; i <= nFan; i++ {
		X = append(X, x1+(x2-x1)*float64(i)/float64(nFan))
	}
	for _, sp := range s[2:4] {
		xw := rp.X0 + sp*t
		X = append(X, xw-tol, xw+tol)
	}
	X = append(X, x_max)
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		Rho[i], U[i], P[i] = rp.Sample(x, t)
		E[i] = P[i] / ((rp.Gamma - 1.) * Rho[i])
	}
	return
}
