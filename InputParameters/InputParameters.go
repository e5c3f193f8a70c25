package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/dgeuler1d/DG1D"
)

// Parameters obtained from the YAML input file or the command line
type InputParameters1D struct {
	Title           string  `json:"Title"`
	CFL             float64 `json:"CFL"`
	FinalTime       float64 `json:"FinalTime"`
	PolynomialOrder int     `json:"PolynomialOrder"`
	NumCells        int     `json:"NumCells"`
	XMin            float64 `json:"XMin"`
	XMax            float64 `json:"XMax"`
	Gamma           float64 `json:"Gamma"`
	FluxType        string  `json:"FluxType"`
	InitType        string  `json:"InitType"`
	BCType          string  `json:"BCType"`
	Limiter         string  `json:"Limiter"`
	TVBM            float64 `json:"TVBM"`
	PlotFreq        int     `json:"PlotFreq"`
	LogFreq         int     `json:"LogFreq"`
	ParallelDegree  int     `json:"ParallelDegree"`
}

// NewInputParameters1D returns the defaults of the command line tool. A zero
// FinalTime, XMin/XMax pair or empty BCType is filled from the selected case.
func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Title:           "Euler 1D",
		CFL:             0.9,
		PolynomialOrder: 1,
		NumCells:        50,
		Gamma:           1.4,
		FluxType:        "lax",
		InitType:        "sod",
		Limiter:         "no",
		PlotFreq:        1,
		LogFreq:         50,
		ParallelDegree:  1,
	}
}

// Parse overlays the YAML document onto the receiver
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) ReadFile(fileName string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("%w: parsing %s: %v", DG1D.ErrConfiguration, fileName, err)
	}
	return
}

func (ip *InputParameters1D) Validate() (err error) {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{DG1D.ErrConfiguration}, args...)...)
	}
	switch {
	case ip.PolynomialOrder < 0:
		return fail("PolynomialOrder must be >= 0, have %d", ip.PolynomialOrder)
	case ip.NumCells < 1:
		return fail("NumCells must be positive, have %d", ip.NumCells)
	case !(ip.CFL > 0):
		return fail("CFL must be positive, have %v", ip.CFL)
	case ip.FinalTime < 0:
		return fail("FinalTime must not be negative, have %v", ip.FinalTime)
	case !(ip.Gamma > 1):
		return fail("Gamma must exceed 1, have %v", ip.Gamma)
	case ip.TVBM < 0:
		return fail("TVBM must not be negative, have %v", ip.TVBM)
	case ip.PlotFreq < 1:
		return fail("PlotFreq must be positive, have %d", ip.PlotFreq)
	case (ip.XMin != 0 || ip.XMax != 0) && !(ip.XMax > ip.XMin):
		return fail("XMax (%v) must exceed XMin (%v)", ip.XMax, ip.XMin)
	}
	return
}

func (ip *InputParameters1D) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Fprintf(w, "%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Number of Cells\n", ip.NumCells)
	fmt.Fprintf(w, "[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Fprintf(w, "%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Fprintf(w, "[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Fprintf(w, "[%s]\t\t\t= InitType\n", ip.InitType)
	fmt.Fprintf(w, "[%s]\t\t\t= BCType\n", ip.BCType)
	fmt.Fprintf(w, "[%s]\t\t\t= Limiter\n", ip.Limiter)
	fmt.Fprintf(w, "%8.5f\t\t= TVB M\n", ip.TVBM)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Plot Frequency\n", ip.PlotFreq)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}

const ExampleFile = `
########################################
Title: "Sod Shock Tube"
CFL: 0.9
FluxType: Lax # Can be "Roe", "HLL"
InitType: Sod # Can be "Lax", "ShuOsher", "DensityWave", "Constant"
BCType: Transmissive # Can be "Reflective", "Periodic"
PolynomialOrder: 1
NumCells: 100
FinalTime: 0.2
Limiter: TVB
TVBM: 0.
########################################
`
