package Euler1D

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/InputParameters"
	"github.com/notargets/dgeuler1d/utils"
)

type Euler struct {
	// Input parameters
	CFL, FinalTime float64
	N, K           int
	PlotFreq       int
	LogFrequency   int
	Case           *Case
	Gas            *Gas
	LimiterType    LimiterType
	BC             DG1D.BCType
	Mesh           *DG1D.Mesh1D
	Tables         *DG1D.QuadratureTables
	Assembler      *DG1D.Assembler
	RK             *DG1D.SSPRK3
	Limiter        *TVBLimiter // nil when limiting is off
	U              *DG1D.State
	Time           float64
	Steps          int
	dt             float64
	logger         *zap.Logger
}

func NewEuler(ip *InputParameters.InputParameters1D, logger *zap.Logger) (c *Euler, err error) {
	var (
		it InitType
		ft FluxType
		lt LimiterType
	)
	if logger == nil {
		logger = zap.NewNop()
	}
	if err = ip.Validate(); err != nil {
		return
	}
	if it, err = NewInitType(ip.InitType); err != nil {
		return
	}
	if ft, err = NewFluxType(ip.FluxType); err != nil {
		return
	}
	if lt, err = NewLimiterType(ip.Limiter); err != nil {
		return
	}
	c = &Euler{
		CFL:          ip.CFL,
		N:            ip.PolynomialOrder,
		K:            ip.NumCells,
		PlotFreq:     ip.PlotFreq,
		LogFrequency: ip.LogFreq,
		Gas:          NewGas(ip.Gamma, ft),
		LimiterType:  lt,
		logger:       logger,
	}
	if c.LogFrequency < 1 {
		c.LogFrequency = 50
	}
	if c.Case, err = it.NewCase(ip.Gamma); err != nil {
		return
	}
	c.FinalTime = c.Case.FinalTime
	if ip.FinalTime > 0 {
		c.FinalTime = ip.FinalTime
	}
	if !(c.FinalTime > 0) {
		err = fmt.Errorf("%w: final time must be positive, have %v", DG1D.ErrConfiguration, c.FinalTime)
		return
	}
	c.BC = c.Case.BC
	if len(ip.BCType) != 0 {
		if c.BC, err = DG1D.NewBCType(ip.BCType); err != nil {
			return
		}
	}
	xmin, xmax := c.Case.XMin, c.Case.XMax
	if ip.XMin != 0 || ip.XMax != 0 {
		xmin, xmax = ip.XMin, ip.XMax
	}
	if c.Mesh, err = DG1D.NewMesh1D(xmin, xmax, c.K); err != nil {
		return
	}
	if c.Tables, err = DG1D.NewQuadratureTables(c.N); err != nil {
		return
	}
	c.Assembler = DG1D.NewAssembler(c.Mesh, c.Tables, c.Gas, c.BC, utils.SetParallelDegree(ip.ParallelDegree, c.K))
	var lim DG1D.Limiter
	if lt == TVB {
		c.Limiter = NewTVBLimiter(ip.TVBM, c.BC, c.Tables, c.K)
		lim = c.Limiter
	}
	c.RK = DG1D.NewSSPRK3(c.Assembler, lim)
	c.U = DG1D.Project(c.Mesh, c.Tables, c.Case.IC)
	return
}

// Done reports whether the final time has been reached within round off
func (c *Euler) Done() bool {
	return c.FinalTime-c.Time <= 1.e-13*math.Max(1, c.FinalTime)
}

// Run advances the solution to FinalTime. Observers see the initial state,
// every PlotFreq steps and the final state.
func (c *Euler) Run(ctx context.Context, observers ...DG1D.Observer) (err error) {
	var (
		cfl          = DG1D.EffectiveCFL(c.CFL, c.N)
		lastObserved = -1
		start        = time.Now()
	)
	notify := func() error {
		if lastObserved == c.Steps {
			return nil
		}
		lastObserved = c.Steps
		for _, o := range observers {
			if err := o.Observe(c.Steps, c.Time, c.U); err != nil {
				return DG1D.NewSimulationError(c.Steps, c.Time, err)
			}
		}
		return nil
	}
	c.PrintInitialization()
	if err = notify(); err != nil {
		return
	}
	for !c.Done() {
		if err = ctx.Err(); err != nil {
			return DG1D.NewSimulationError(c.Steps, c.Time, err)
		}
		if c.dt, err = DG1D.ComputeDT(cfl, c.Mesh.Dx, c.Assembler.MaxWaveSpeed(c.U), c.Time, c.FinalTime); err != nil {
			return DG1D.NewSimulationError(c.Steps, c.Time, err)
		}
		if err = c.RK.Step(c.U, c.dt); err != nil {
			return DG1D.NewSimulationError(c.Steps, c.Time, err)
		}
		c.Time += c.dt
		c.Steps++
		if !c.U.IsFinite() {
			return DG1D.NewSimulationError(c.Steps, c.Time,
				fmt.Errorf("%w: non finite solution coefficients", DG1D.ErrNumericalInstability))
		}
		if err = c.checkAdmissible(); err != nil {
			return DG1D.NewSimulationError(c.Steps, c.Time, err)
		}
		if c.Steps%c.LogFrequency == 0 {
			c.PrintUpdate()
		}
		if c.Steps%c.PlotFreq == 0 {
			if err = notify(); err != nil {
				return
			}
		}
	}
	if err = notify(); err != nil {
		return
	}
	c.PrintFinal(time.Since(start))
	return
}

// checkAdmissible requires positive density and pressure in every cell average
func (c *Euler) checkAdmissible() error {
	for i := 0; i < c.K; i++ {
		if q := c.U.CellAverage(i); !c.Gas.Admissible(q) {
			return fmt.Errorf("%w: inadmissible average in cell %d, rho = %g, E = %g",
				DG1D.ErrNumericalInstability, i, q[DG1D.Density], q[DG1D.Energy])
		}
	}
	return nil
}

func (c *Euler) PrintInitialization() {
	c.logger.Info("Euler equations in 1 dimension",
		zap.String("case", c.Case.Init.Print()),
		zap.String("flux", c.Gas.FluxType.Print()),
		zap.String("limiter", c.LimiterType.Print()),
		zap.String("bc", c.BC.Print()),
		zap.Float64("cfl", c.CFL),
		zap.Int("N", c.N),
		zap.Int("K", c.K),
		zap.Float64("xmin", c.Mesh.XMin),
		zap.Float64("xmax", c.Mesh.XMax),
		zap.Float64("finalTime", c.FinalTime),
		zap.Int("parallelDegree", c.Assembler.Partitions.ParallelDegree))
}

func (c *Euler) PrintUpdate() {
	rhoMin, rhoMax := c.DensityRange()
	fields := []zap.Field{
		zap.Int("step", c.Steps),
		zap.Float64("time", c.Time),
		zap.Float64("dt", c.dt),
		zap.Float64("rhoMin", rhoMin),
		zap.Float64("rhoMax", rhoMax),
		zap.Float64("maxResidual", c.RK.Res.MaxAbs()),
	}
	if c.Limiter != nil {
		fields = append(fields, zap.Int("limited", c.Limiter.Limited))
	}
	c.logger.Info("Update", fields...)
}

func (c *Euler) PrintFinal(elapsed time.Duration) {
	fields := []zap.Field{
		zap.Int("steps", c.Steps),
		zap.Float64("time", c.Time),
		zap.Duration("elapsed", elapsed),
		zap.String("memory", utils.GetMemUsage()),
	}
	if c.Steps > 0 {
		rate := float64(elapsed.Microseconds()) / float64(c.Steps*c.K)
		fields = append(fields, zap.Float64("usPerCellStep", rate))
	}
	if l1, l2, ok := c.DensityErrors(); ok {
		fields = append(fields, zap.Float64("rhoL1", l1), zap.Float64("rhoL2", l2))
	}
	c.logger.Info("Finished", fields...)
}

// Sample evaluates U at the uniformly spaced points of every cell.
// Neighboring cells both contribute a value at their shared face.
func (c *Euler) Sample(U *DG1D.State) (X []float64, Q [DG1D.NumFields][]float64) {
	var (
		qt = c.Tables
		n  = c.K * qt.Nu
	)
	X = make([]float64, 0, n)
	for f := range Q {
		Q[f] = make([]float64, 0, n)
	}
	for i := 0; i < c.K; i++ {
		for j, r := range qt.Ru {
			X = append(X, c.Mesh.X(i, r))
			q := DG1D.Trace(U, i, qt.Vu.RawRowView(j))
			for f := range Q {
				Q[f] = append(Q[f], q[f])
			}
		}
	}
	return
}

// DensityRange is the min and max of the density samples
func (c *Euler) DensityRange() (rhoMin, rhoMax float64) {
	_, Q := c.Sample(c.U)
	rhoMin, rhoMax = math.Inf(1), math.Inf(-1)
	for _, rho := range Q[DG1D.Density] {
		rhoMin, rhoMax = math.Min(rhoMin, rho), math.Max(rhoMax, rho)
	}
	return
}

// DensityErrors compares the density with the exact solution at the current
// time, ok is false when the case has no exact solution
func (c *Euler) DensityErrors() (l1, l2 float64, ok bool) {
	if c.Case.Exact == nil {
		return
	}
	exact := func(x float64) float64 { return c.Case.Exact(x, c.Time)[DG1D.Density] }
	l1 = DG1D.L1Error(c.Mesh, c.Tables, c.U, DG1D.Density, exact)
	l2 = DG1D.L2Error(c.Mesh, c.Tables, c.U, DG1D.Density, exact)
	return l1, l2, true
}

// WriteCSV writes x, rho, u, p at the sample points, followed by the exact
// primitives when the case has a closed form solution
func (c *Euler) WriteCSV(w io.Writer) (err error) {
	var (
		cw     = csv.NewWriter(w)
		X, Q   = c.Sample(c.U)
		header = []string{"x", "rho", "u", "p"}
		ff     = func(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }
	)
	if c.Case.Exact != nil {
		header = append(header, "rho_exact", "u_exact", "p_exact")
	}
	if err = cw.Write(header); err != nil {
		return
	}
	for i, x := range X {
		rho, u, p := c.Gas.Primitive(Conserved{Q[0][i], Q[1][i], Q[2][i]})
		rec := []string{ff(x), ff(rho), ff(u), ff(p)}
		if c.Case.Exact != nil {
			rhoE, uE, pE := c.Gas.Primitive(c.Case.Exact(x, c.Time))
			rec = append(rec, ff(rhoE), ff(uE), ff(pE))
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
