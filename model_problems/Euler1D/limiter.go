package Euler1D

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/utils"
)

type LimiterType uint8

const (
	None LimiterType = iota
	TVB
)

var (
	LimiterNames = map[string]LimiterType{
		"no":     None,
		"none":   None,
		"yes":    TVB,
		"tvb":    TVB,
		"minmod": TVB,
	}
	LimiterNamesRev = map[LimiterType]string{
		TVB: "TVB Minmod",
	}
)

func (lt LimiterType) Print() (txt string) {
	if val, ok := LimiterNamesRev[lt]; !ok {
		txt = "None"
	} else {
		txt = val
	}
	return
}

func NewLimiterType(label string) (lt LimiterType, err error) {
	var ok bool
	if len(label) == 0 {
		return None, nil
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if lt, ok = LimiterNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use limiter named [%s]", DG1D.ErrConfiguration, label)
	}
	return
}

/*
	TVBLimiter applies the Cockburn-Shu TVB modified minmod to the modal
	coefficients of each conserved field. With cell averages ubar and edge
	values uL, uR the deviations

		dL = ubar_i - uL_i,   dR = uR_i - ubar_i

	are compared with the neighbor average differences. When either is
	changed the cell is reduced to a linear with the limited slope.
*/
type TVBLimiter struct {
	M       float64
	BC      DG1D.BCType
	Tables  *DG1D.QuadratureTables
	Limited int // cells limited in the most recent call
	ubar    [DG1D.NumFields][]float64
}

func NewTVBLimiter(M float64, bc DG1D.BCType, qt *DG1D.QuadratureTables, K int) (l *TVBLimiter) {
	l = &TVBLimiter{
		M:      M,
		BC:     bc,
		Tables: qt,
	}
	for n := range l.ubar {
		l.ubar[n] = make([]float64, K+2) // one ghost each side
	}
	return
}

func MinmodTVB(a, b, c, Mdx2 float64) float64 {
	if math.Abs(a) <= Mdx2 {
		return a
	}
	return utils.Minmod(a, b, c)
}

func (l *TVBLimiter) Limit(U *DG1D.State, dx float64) (err error) {
	var (
		qt          = l.Tables
		K           = U.K
		Mdx2        = l.M * dx * dx
		left, right = qt.LeftRow(), qt.RightRow()
		sqrt3       = math.Sqrt(3)
	)
	l.Limited = 0
	if qt.N == 0 {
		return
	}
	l.ghostAverages(U)
	for i := 0; i < K; i++ {
		var limited bool
		for n := 0; n < DG1D.NumFields; n++ {
			var (
				ubar   = l.ubar[n]
				c      = U.Q[n].RawRowView(i)
				uAve   = ubar[i+1]
				dL     = uAve - floats.Dot(left, c)
				dR     = floats.Dot(right, c) - uAve
				dp     = ubar[i+2] - uAve
				dm     = uAve - ubar[i]
				dLlim  = MinmodTVB(dL, dp, dm, Mdx2)
				dRlim  = MinmodTVB(dR, dp, dm, Mdx2)
				change = dLlim != dL || dRlim != dR
			)
			if !change {
				continue
			}
			limited = true
			c[1] = 0.5 * (dLlim + dRlim) / sqrt3
			for j := 2; j < len(c); j++ {
				c[j] = 0
			}
		}
		if limited {
			l.Limited++
		}
	}
	return
}

// ghostAverages snapshots the cell averages with one ghost value each side
func (l *TVBLimiter) ghostAverages(U *DG1D.State) {
	K := U.K
	for i := 0; i < K; i++ {
		q := U.CellAverage(i)
		for n := range l.ubar {
			l.ubar[n][i+1] = q[n]
		}
	}
	var gL, gR Conserved
	if l.BC == DG1D.BC_Periodic {
		gL, gR = U.CellAverage(K-1), U.CellAverage(0)
	} else {
		gL, gR = l.BC.Ghost(U.CellAverage(0)), l.BC.Ghost(U.CellAverage(K-1))
	}
	for n := range l.ubar {
		l.ubar[n][0], l.ubar[n][K+1] = gL[n], gR[n]
	}
}
