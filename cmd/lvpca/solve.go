// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvpca/linsolve"
	"github.com/katalvlaran/lvpca/matrix"
)

type solveOptions struct {
	a   string
	b   string
	eps float64
}

// solveReport is the YAML result of `lvpca solve`. Every solution is
// particular + Σ tᵢ·basis[i].
type solveReport struct {
	Rank         int         `json:"rank"`
	Unique       bool        `json:"unique"`
	PivotColumns []int       `json:"pivotColumns"`
	FreeColumns  []int       `json:"freeColumns"`
	Particular   []float64   `json:"particular"`
	Basis        [][]float64 `json:"basis,omitempty"`
}

func newSolveCommand(log *logrus.Logger, out io.Writer) *cobra.Command {
	o := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·x = b by Gaussian elimination, including the null-space basis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(o, log, out)
		},
	}
	cmd.Flags().StringVar(&o.a, "a", "", "CSV file holding the n×m coefficient matrix")
	cmd.Flags().StringVar(&o.b, "b", "", "CSV file holding the n×1 right-hand side")
	cmd.Flags().Float64Var(&o.eps, "epsilon", linsolve.DefaultEpsilon, "Pivot threshold; smaller magnitudes count as zero")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func readComplete(path string) (*matrix.Dense, error) {
	m, missing, err := readMatrixFile(path)
	if err != nil {
		return nil, err
	}
	if missing > 0 {
		return nil, fmt.Errorf("%s: %d missing values", path, missing)
	}

	return m, nil
}

func runSolve(o *solveOptions, log *logrus.Logger, out io.Writer) error {
	if !(o.eps >= 0) || math.IsInf(o.eps, 0) {
		return fmt.Errorf("--epsilon must be finite and >= 0, got %v", o.eps)
	}
	A, err := readComplete(o.a)
	if err != nil {
		return err
	}
	b, err := readComplete(o.b)
	if err != nil {
		return err
	}

	sol, err := linsolve.Solve(A, b, linsolve.WithEpsilon(o.eps))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"rank": sol.Rank, "free": len(sol.FreeColumns)}).Info("system solved")

	report := solveReport{
		Rank:         sol.Rank,
		Unique:       sol.Unique(),
		PivotColumns: sol.PivotColumns,
		FreeColumns:  sol.FreeColumns,
	}
	if report.Particular, err = sol.Particular.Col(0); err != nil {
		return err
	}
	for _, v := range sol.Basis {
		col, err := v.Col(0)
		if err != nil {
			return err
		}
		report.Basis = append(report.Basis, col)
	}

	raw, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)

	return err
}
