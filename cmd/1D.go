/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/InputParameters"
	"github.com/notargets/dgeuler1d/model_problems/Euler1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional Euler equations",
	Long: `
Executes the modal Discontinuous Galerkin solver for the 1D Euler equations,

dgeuler1d 1D --ic sod -k 200 -n 2 --limit tvb --plotDir frames --csvFile sod.csv

The limiter is off by default. Cases with shocks (sod, lax, shu-osher) need
--limit tvb when N > 0, otherwise the solution loses positivity within a few steps.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters1D
			m1 = &Model1D{}
		)
		if ip, err = loadParameters(cmd); err != nil {
			return
		}
		m1.PlotDir, _ = cmd.Flags().GetString("plotDir")
		m1.CSVFile, _ = cmd.Flags().GetString("csvFile")
		m1.Profile, _ = cmd.Flags().GetString("profile")
		return Run1D(cmd.Context(), m1, ip)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	addParameterFlags(OneDCmd)
	OneDCmd.Flags().String("plotDir", "", "directory for PNG frames of the solution, empty disables plotting")
	OneDCmd.Flags().String("csvFile", "", "file for the final solution samples as CSV")
	OneDCmd.Flags().String("profile", "", "write a profile of the run to the current directory: cpu, mem")
}

type Model1D struct {
	PlotDir string
	CSVFile string
	Profile string
}

func Run1D(ctx context.Context, m1 *Model1D, ip *InputParameters.InputParameters1D) (err error) {
	var (
		c         *Euler1D.Euler
		observers []DG1D.Observer
	)
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	switch m1.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("%w: unknown profile type [%s]", DG1D.ErrConfiguration, m1.Profile)
	}
	if c, err = Euler1D.NewEuler(ip, logger); err != nil {
		return
	}
	if len(m1.PlotDir) != 0 {
		var po *Euler1D.PlotObserver
		if po, err = Euler1D.NewPlotObserver(c, m1.PlotDir); err != nil {
			return
		}
		observers = append(observers, po)
	}
	if err = c.Run(ctx, observers...); err != nil {
		logger.Error("Run failed", zap.Error(err))
		if errors.Is(err, DG1D.ErrNumericalInstability) && c.Limiter == nil && c.N > 0 {
			logger.Warn("Solution lost positivity with the limiter off, try --limit tvb",
				zap.String("case", c.Case.Init.Print()))
		}
		return
	}
	if len(m1.CSVFile) != 0 {
		var f *os.File
		if f, err = os.Create(m1.CSVFile); err != nil {
			return
		}
		defer f.Close()
		if err = c.WriteCSV(f); err != nil {
			return
		}
		logger.Info("Wrote solution", zap.String("file", m1.CSVFile))
	}
	return
}
