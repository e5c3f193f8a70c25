package Euler1D

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/utils"
)

var fieldColors = [3]utils.ColorName{utils.Blue, utils.Red, utils.Green}

// PlotObserver writes a PNG of density, velocity and pressure for each
// observed step, with the exact solution overlaid when one is known
type PlotObserver struct {
	Dir           string
	Width, Height vg.Length
	c             *Euler
	frameCount    int
}

func NewPlotObserver(c *Euler, dir string) (po *PlotObserver, err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	po = &PlotObserver{
		Dir:    dir,
		Width:  8 * vg.Inch,
		Height: 5 * vg.Inch,
		c:      c,
	}
	return
}

func (po *PlotObserver) FrameName(frame int) string {
	return filepath.Join(po.Dir, fmt.Sprintf("frame_%05d.png", frame))
}

func (po *PlotObserver) Observe(step int, time float64, U *DG1D.State) (err error) {
	var (
		c    = po.c
		X, Q = c.Sample(U)
		p    = plot.New()
		prim [3]plotter.XYs
	)
	p.Title.Text = fmt.Sprintf("%s, N = %d, K = %d, t = %8.5f, step %d",
		c.Case.Init.Print(), c.N, c.K, time, step)
	p.X.Label.Text = "x"
	for n := range prim {
		prim[n] = make(plotter.XYs, len(X))
	}
	for i, x := range X {
		rho, u, pres := c.Gas.Primitive(Conserved{Q[0][i], Q[1][i], Q[2][i]})
		for n, v := range [3]float64{rho, u, pres} {
			prim[n][i].X, prim[n][i].Y = x, v
		}
	}
	for n, name := range []string{"Rho", "U", "P"} {
		var l *plotter.Line
		if l, err = plotter.NewLine(prim[n]); err != nil {
			return
		}
		l.LineStyle.Color = utils.GetColor(fieldColors[n])
		l.LineStyle.Dashes = plotutil.Dashes(n)
		p.Add(l)
		p.Legend.Add(name, l)
	}
	if c.Case.Exact != nil {
		if err = po.addExact(p, time); err != nil {
			return
		}
	}
	if err = p.Save(po.Width, po.Height, po.FrameName(po.frameCount)); err != nil {
		return
	}
	po.frameCount++
	return
}

func (po *PlotObserver) addExact(p *plot.Plot, time float64) (err error) {
	var (
		c      = po.c
		nPts   = 4 * c.K
		mesh   = c.Mesh
		rhoPts = make(plotter.XYs, nPts)
		sc     *plotter.Scatter
	)
	for i := range rhoPts {
		x := mesh.XMin + (mesh.XMax-mesh.XMin)*(float64(i)+0.5)/float64(nPts)
		rho, _, _ := c.Gas.Primitive(c.Case.Exact(x, time))
		rhoPts[i].X, rhoPts[i].Y = x, rho
	}
	if sc, err = plotter.NewScatter(rhoPts); err != nil {
		return
	}
	sc.GlyphStyle.Color = utils.GetColor(utils.Black)
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)
	p.Legend.Add("Rho exact", sc)
	return
}
