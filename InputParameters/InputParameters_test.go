package InputParameters

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/dgeuler1d/DG1D"
)

func TestInputParametersParse(t *testing.T) {
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse([]byte(ExampleFile)))
	assert.Equal(t, "Sod Shock Tube", ip.Title)
	assert.Equal(t, 100, ip.NumCells)
	assert.Equal(t, 1, ip.PolynomialOrder)
	assert.Equal(t, 0.2, ip.FinalTime)
	assert.Equal(t, "TVB", ip.Limiter)
	assert.Equal(t, "Transmissive", ip.BCType)
	// Fields absent from the file keep their defaults
	assert.Equal(t, 1.4, ip.Gamma)
	assert.Equal(t, 50, ip.LogFreq)
	require.NoError(t, ip.Validate())

	var buf bytes.Buffer
	ip.Print(&buf)
	assert.Contains(t, buf.String(), "= Number of Cells")
	assert.Contains(t, buf.String(), "[TVB]")
}

func TestInputParametersReadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("NumCells: 200\nCFL: 0.5\n"), 0o644))
	ip := NewInputParameters1D()
	require.NoError(t, ip.ReadFile(fileName))
	assert.Equal(t, 200, ip.NumCells)
	assert.Equal(t, 0.5, ip.CFL)

	require.NoError(t, os.WriteFile(fileName, []byte("NumCells: [1, 2\n"), 0o644))
	err := ip.ReadFile(fileName)
	assert.True(t, errors.Is(err, DG1D.ErrConfiguration))
	assert.Error(t, ip.ReadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestInputParametersValidate(t *testing.T) {
	for name, mod := range map[string]func(ip *InputParameters1D){
		"order":    func(ip *InputParameters1D) { ip.PolynomialOrder = -1 },
		"cells":    func(ip *InputParameters1D) { ip.NumCells = 0 },
		"cfl":      func(ip *InputParameters1D) { ip.CFL = 0 },
		"time":     func(ip *InputParameters1D) { ip.FinalTime = -1 },
		"gamma":    func(ip *InputParameters1D) { ip.Gamma = 1 },
		"tvb":      func(ip *InputParameters1D) { ip.TVBM = -5 },
		"plotFreq": func(ip *InputParameters1D) { ip.PlotFreq = 0 },
		"domain":   func(ip *InputParameters1D) { ip.XMin, ip.XMax = 1, 0 },
	} {
		ip := NewInputParameters1D()
		mod(ip)
		assert.Truef(t, errors.Is(ip.Validate(), DG1D.ErrConfiguration), "case %s", name)
	}
	assert.NoError(t, NewInputParameters1D().Validate())
}
