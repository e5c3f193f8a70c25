package DG1D

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/dgeuler1d/utils"
)

// FluxModel supplies the physics for a system of NumFields conservation laws.
// PhysicalFlux may be called from several goroutines at once.
type FluxModel interface {
	PhysicalFlux(q [NumFields]float64) (f [NumFields]float64)
	NumericalFlux(qL, qR [NumFields]float64) (f [NumFields]float64)
	MaxWaveSpeed(q [NumFields]float64) float64
}

// Assembler computes the weak form residual Res such that dU/dt = -Res/Dx
type Assembler struct {
	Mesh       *Mesh1D
	Tables     *QuadratureTables
	Flux       FluxModel
	BC         BCType
	Partitions *utils.PartitionMap
}

func NewAssembler(mesh *Mesh1D, qt *QuadratureTables, flux FluxModel, bc BCType, parallelDegree int) *Assembler {
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	return &Assembler{
		Mesh:       mesh,
		Tables:     qt,
		Flux:       flux,
		BC:         bc,
		Partitions: utils.NewPartitionMap(parallelDegree, mesh.K),
	}
}

func (a *Assembler) Assemble(U, Res *State) (err error) {
	if a.Partitions.ParallelDegree == 1 {
		a.volume(U, Res, 0, a.Mesh.K)
	} else {
		var g errgroup.Group
		for np := 0; np < a.Partitions.ParallelDegree; np++ {
			kMin, kMax := a.Partitions.GetBucketRange(np)
			g.Go(func() error {
				a.volume(U, Res, kMin, kMax)
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return
		}
	}
	a.faces(U, Res)
	return
}

// volume overwrites rows [kMin, kMax) of Res with -Int f(u) dphi_j/dr
func (a *Assembler) volume(U, Res *State, kMin, kMax int) {
	var (
		qt     = a.Tables
		uq, fq [NumFields]float64
	)
	for i := kMin; i < kMax; i++ {
		for n := 0; n < NumFields; n++ {
			floats.Scale(0, Res.Q[n].RawRowView(i))
		}
		for q := 0; q < qt.Np; q++ {
			vf, vg := qt.Vf.RawRowView(q), qt.Vg.RawRowView(q)
			for n := 0; n < NumFields; n++ {
				uq[n] = floats.Dot(vf, U.Q[n].RawRowView(i))
			}
			fq = a.Flux.PhysicalFlux(uq)
			for n := 0; n < NumFields; n++ {
				floats.AddScaled(Res.Q[n].RawRowView(i), -qt.W[q]*fq[n], vg)
			}
		}
	}
}

// faces adds the numerical flux contributions, one face at a time.
// A face flux F leaves cell iL through its right edge and enters iR through
// its left edge.
func (a *Assembler) faces(U, Res *State) {
	var (
		K           = a.Mesh.K
		qt          = a.Tables
		left, right = qt.LeftRow(), qt.RightRow()
		F           [NumFields]float64
	)
	scatter := func(F [NumFields]float64, iL, iR int) {
		for n := 0; n < NumFields; n++ {
			if iL >= 0 {
				floats.AddScaled(Res.Q[n].RawRowView(iL), F[n], right)
			}
			if iR >= 0 {
				floats.AddScaled(Res.Q[n].RawRowView(iR), -F[n], left)
			}
		}
	}
	for i := 1; i < K; i++ {
		F = a.Flux.NumericalFlux(Trace(U, i-1, right), Trace(U, i, left))
		scatter(F, i-1, i)
	}
	if a.BC == BC_Periodic {
		F = a.Flux.NumericalFlux(Trace(U, K-1, right), Trace(U, 0, left))
		scatter(F, K-1, 0)
		return
	}
	uL := Trace(U, 0, left)
	F = a.Flux.NumericalFlux(a.BC.Ghost(uL), uL)
	scatter(F, -1, 0)
	uR := Trace(U, K-1, right)
	F = a.Flux.NumericalFlux(uR, a.BC.Ghost(uR))
	scatter(F, K-1, -1)
}

// MaxWaveSpeed samples every cell at the Gauss points and both edges.
// A NaN sample is returned immediately.
func (a *Assembler) MaxWaveSpeed(U *State) (smax float64) {
	var (
		qt   = a.Tables
		rows = make([][]float64, 0, qt.Np+2)
	)
	for q := 0; q < qt.Np; q++ {
		rows = append(rows, qt.Vf.RawRowView(q))
	}
	rows = append(rows, qt.LeftRow(), qt.RightRow())
	for i := 0; i < a.Mesh.K; i++ {
		for _, row := range rows {
			s := a.Flux.MaxWaveSpeed(Trace(U, i, row))
			if utils.IsNan(s) {
				return s
			}
			smax = math.Max(smax, s)
		}
	}
	return
}
