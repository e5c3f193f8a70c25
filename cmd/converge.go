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
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/notargets/dgeuler1d/InputParameters"
	"github.com/notargets/dgeuler1d/model_problems/Euler1D"
)

// ConvergeCmd runs a mesh refinement study against an exact solution
var ConvergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Mesh refinement study of the density error",
	Long: `
Runs the same case on a series of meshes and reports the density error and
observed order of accuracy. The case needs an exact solution, the density wave
is the smooth one.

dgeuler1d converge --ic densitywave -n 2 --cells 10,20,40,80
dgeuler1d converge --readCSV study.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip       *InputParameters.InputParameters1D
			cs       *Euler1D.ConvergenceStudy
			cells    []int
			csvFile  string
			readFile string
		)
		csvFile, _ = cmd.Flags().GetString("csvFile")
		if readFile, _ = cmd.Flags().GetString("readCSV"); len(readFile) != 0 {
			return printStudies(cmd, readFile)
		}
		if !cmd.Flags().Changed("ic") {
			_ = cmd.Flags().Set("ic", "densitywave")
		}
		if ip, err = loadParameters(cmd); err != nil {
			return
		}
		if cells, err = cmd.Flags().GetIntSlice("cells"); err != nil {
			return
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if cs, err = Euler1D.RunConvergence(ctx, ip, cells, logger); err != nil {
			return
		}
		cs.Print(cmd.OutOrStdout())
		if len(csvFile) != 0 {
			var f *os.File
			if f, err = os.Create(csvFile); err != nil {
				return
			}
			defer f.Close()
			err = cs.WriteCSV(f)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(ConvergeCmd)
	addParameterFlags(ConvergeCmd)
	ConvergeCmd.Flags().IntSlice("cells", []int{10, 20, 40, 80}, "mesh sizes of the study")
	ConvergeCmd.Flags().String("csvFile", "", "file for the study results as CSV")
	ConvergeCmd.Flags().String("readCSV", "", "print the studies in a CSV file written by --csvFile")
}

func printStudies(cmd *cobra.Command, fileName string) (err error) {
	var (
		f       *os.File
		studies map[string]*Euler1D.ConvergenceStudy
	)
	if f, err = os.Open(fileName); err != nil {
		return
	}
	defer f.Close()
	if studies, err = Euler1D.ReadConvergenceCSV(f); err != nil {
		return
	}
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		studies[k].Print(cmd.OutOrStdout())
	}
	return
}
