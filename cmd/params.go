package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/dgeuler1d/InputParameters"
)

// parameterFlags maps command line flag names to input parameter keys. The
// same keys are used in the config file and, upper cased, in DGEULER1D_*
// environment variables.
var parameterFlags = []struct{ flag, key string }{
	{"ncell", "NumCells"},
	{"degree", "PolynomialOrder"},
	{"CFL", "CFL"},
	{"finalTime", "FinalTime"},
	{"plotFreq", "PlotFreq"},
	{"logFreq", "LogFreq"},
	{"ic", "InitType"},
	{"flux", "FluxType"},
	{"bc", "BCType"},
	{"limit", "Limiter"},
	{"tvbM", "TVBM"},
	{"gamma", "Gamma"},
	{"xMin", "XMin"},
	{"xMax", "XMax"},
	{"parallel", "ParallelDegree"},
}

func parameterTargets(ip *InputParameters.InputParameters1D) map[string]any {
	return map[string]any{
		"Title":           &ip.Title,
		"NumCells":        &ip.NumCells,
		"PolynomialOrder": &ip.PolynomialOrder,
		"CFL":             &ip.CFL,
		"FinalTime":       &ip.FinalTime,
		"PlotFreq":        &ip.PlotFreq,
		"LogFreq":         &ip.LogFreq,
		"InitType":        &ip.InitType,
		"FluxType":        &ip.FluxType,
		"BCType":          &ip.BCType,
		"Limiter":         &ip.Limiter,
		"TVBM":            &ip.TVBM,
		"Gamma":           &ip.Gamma,
		"XMin":            &ip.XMin,
		"XMax":            &ip.XMax,
		"ParallelDegree":  &ip.ParallelDegree,
	}
}

func addParameterFlags(cmd *cobra.Command) {
	def := InputParameters.NewInputParameters1D()
	cmd.Flags().IntP("ncell", "k", def.NumCells, "Number of cells in the mesh")
	cmd.Flags().IntP("degree", "n", def.PolynomialOrder, "polynomial degree")
	cmd.Flags().Float64("CFL", def.CFL, "CFL - scaled by 1/(2N+1), decrease for stability")
	cmd.Flags().Float64("finalTime", def.FinalTime, "FinalTime - the target end time, zero uses the case default")
	cmd.Flags().Int("plotFreq", def.PlotFreq, "steps between plot frames")
	cmd.Flags().Int("logFreq", def.LogFreq, "steps between progress log entries")
	cmd.Flags().String("ic", def.InitType, "initial condition: sod, lax, shuosher, densitywave, constant")
	cmd.Flags().String("flux", def.FluxType, "numerical flux: lax, roe, hll, average")
	cmd.Flags().String("bc", def.BCType, "boundary condition: transmissive, reflective, periodic, empty uses the case default")
	cmd.Flags().String("limit", def.Limiter, "slope limiter: no, tvb. Shock cases with N > 0 need tvb")
	cmd.Flags().Float64("tvbM", def.TVBM, "TVB constant M, zero is the plain minmod limiter")
	cmd.Flags().Float64("gamma", def.Gamma, "ratio of specific heats")
	cmd.Flags().Float64("xMin", def.XMin, "left end of the domain, with xMax zero uses the case default")
	cmd.Flags().Float64("xMax", def.XMax, "right end of the domain")
	cmd.Flags().Int("parallel", def.ParallelDegree, "goroutines used for the volume integrals, zero uses all CPUs")
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of input parameters")
}

// loadParameters layers the defaults, the config file and environment, the
// input conditions file and finally any flags given on the command line
func loadParameters(cmd *cobra.Command) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.NewInputParameters1D()
	targets := parameterTargets(ip)
	for key, dst := range targets {
		setFromViper(key, dst)
	}
	var icFile string
	if icFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		return
	}
	if len(icFile) != 0 {
		if err = ip.ReadFile(icFile); err != nil {
			return
		}
	}
	for _, pf := range parameterFlags {
		if err = setFromFlag(cmd, pf.flag, targets[pf.key]); err != nil {
			return
		}
	}
	if err = ip.Validate(); err != nil {
		return
	}
	return
}

func setFromViper(key string, dst any) {
	if !viper.IsSet(key) {
		return
	}
	switch p := dst.(type) {
	case *int:
		*p = viper.GetInt(key)
	case *float64:
		*p = viper.GetFloat64(key)
	case *string:
		*p = viper.GetString(key)
	}
}

func setFromFlag(cmd *cobra.Command, name string, dst any) (err error) {
	if !cmd.Flags().Changed(name) {
		return
	}
	switch p := dst.(type) {
	case *int:
		*p, err = cmd.Flags().GetInt(name)
	case *float64:
		*p, err = cmd.Flags().GetFloat64(name)
	case *string:
		*p, err = cmd.Flags().GetString(name)
	default:
		err = fmt.Errorf("flag %s has no parameter target", name)
	}
	return
}
