package Euler1D

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/InputParameters"
)

// ConvergenceStudy records density errors of one case over a series of meshes
type ConvergenceStudy struct {
	Title    string
	Order    int
	CFL      float64
	NumCells []int
	RhoL2    []float64
	RhoL1    []float64
}

func NewConvergenceStudy(title string, order int, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		Title: title,
		Order: order,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(numCells int, rhoL2, rhoL1 float64) {
	cs.NumCells = append(cs.NumCells, numCells)
	cs.RhoL2 = append(cs.RhoL2, rhoL2)
	cs.RhoL1 = append(cs.RhoL1, rhoL1)
}

// Orders are the observed L2 rates between successive meshes
func (cs *ConvergenceStudy) Orders() (p []float64) {
	for i := 1; i < len(cs.NumCells); i++ {
		ratio := float64(cs.NumCells[i]) / float64(cs.NumCells[i-1])
		p = append(p, math.Log(cs.RhoL2[i-1]/cs.RhoL2[i])/math.Log(ratio))
	}
	return
}

func (cs *ConvergenceStudy) Print(w io.Writer) {
	fmt.Fprintf(w, "Title = %s, Order = %d, CFL = %5.2f\n", cs.Title, cs.Order, cs.CFL)
	orders := cs.Orders()
	for i := range cs.NumCells {
		if i == 0 {
			fmt.Fprintf(w, "%6d, %12.5e, %12.5e\n", cs.NumCells[i], cs.RhoL2[i], cs.RhoL1[i])
			continue
		}
		fmt.Fprintf(w, "%6d, %12.5e, %12.5e, order = %5.2f\n", cs.NumCells[i], cs.RhoL2[i], cs.RhoL1[i], orders[i-1])
	}
}

var convergenceHeader = []string{"Title", "NumCells", "Order", "CFL", "RhoL2", "RhoL1"}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write(convergenceHeader); err != nil {
		return
	}
	for i := range cs.NumCells {
		rec := []string{
			cs.Title,
			strconv.Itoa(cs.NumCells[i]),
			strconv.Itoa(cs.Order),
			strconv.FormatFloat(cs.CFL, 'g', -1, 64),
			strconv.FormatFloat(cs.RhoL2[i], 'g', -1, 64),
			strconv.FormatFloat(cs.RhoL1[i], 'g', -1, 64),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadConvergenceCSV groups the records written by WriteCSV by title and order
func ReadConvergenceCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		cs      *ConvergenceStudy
		ok      bool
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != len(convergenceHeader) {
			return nil, fmt.Errorf("record %d: have %d fields, want %d", i, len(rec), len(convergenceHeader))
		}
		var (
			vals [4]float64
			k, n int
		)
		if k, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if n, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		for j, txt := range rec[3:] {
			if vals[j], err = strconv.ParseFloat(txt, 64); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		}
		key := rec[0] + rec[2]
		if cs, ok = studies[key]; !ok {
			cs = NewConvergenceStudy(rec[0], n, vals[0])
			studies[key] = cs
		}
		cs.Add(k, vals[1], vals[2])
	}
	return
}

// RunConvergence runs the parameters once per mesh size and records the
// density error at the final time. The case must have an exact solution.
func RunConvergence(ctx context.Context, ip *InputParameters.InputParameters1D, numCells []int,
	logger *zap.Logger) (cs *ConvergenceStudy, err error) {
	var (
		c *Euler
	)
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, K := range numCells {
		run := *ip
		run.NumCells = K
		run.PlotFreq = math.MaxInt32
		if c, err = NewEuler(&run, logger.With(zap.Int("K", K))); err != nil {
			return
		}
		if c.Case.Exact == nil {
			return nil, fmt.Errorf("%w: %s has no exact solution", DG1D.ErrConfiguration, c.Case.Init.Print())
		}
		if cs == nil {
			cs = NewConvergenceStudy(c.Case.Init.Print(), c.N, c.CFL)
		}
		if err = c.Run(ctx); err != nil {
			return
		}
		l1, l2, _ := c.DensityErrors()
		cs.Add(K, l2, l1)
	}
	return
}
