// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvpca/eigen"
	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
	"github.com/katalvlaran/lvpca/variance"
)

const (
	flagInput         = "input"
	flagOutput        = "output"
	flagConfig        = "config"
	flagK             = "k"
	flagThreshold     = "threshold"
	flagSeed          = "seed"
	flagTolerance     = "tolerance"
	flagMaxIterations = "max-iterations"
	flagFillMissing   = "fill-missing"
)

type pcaOptions struct {
	input         string
	output        string
	config        string
	k             int
	threshold     float64
	seed          uint64
	tolerance     float64
	maxIterations int
	fillMissing   bool
}

// pcaReport is the YAML summary printed by `lvpca pca`.
type pcaReport struct {
	Rows              int       `json:"rows"`
	Cols              int       `json:"cols"`
	Missing           int       `json:"missing"`
	K                 int       `json:"k"`
	Gamma             float64   `json:"gamma"`
	Eigenvalues       []float64 `json:"eigenvalues"`
	CumulativeRatios  []float64 `json:"cumulativeRatios"`
	Means             []float64 `json:"means"`
	ReconstructionMSE float64   `json:"reconstructionMSE"`
	Output            string    `json:"output,omitempty"`
}

func bindPCAFlags(fs *pflag.FlagSet, o *pcaOptions) {
	fs.StringVarP(&o.input, flagInput, "i", "", "Numeric CSV file, one sample per record")
	fs.StringVarP(&o.output, flagOutput, "o", "", "Write the n×k projection to this CSV file")
	fs.StringVar(&o.config, flagConfig, "", "YAML run configuration; explicit flags override it")
	fs.IntVar(&o.k, flagK, 0, "Number of components to keep (0 selects by --threshold)")
	fs.Float64Var(&o.threshold, flagThreshold, pca.DefaultThreshold, "Cumulative explained-variance target in (0,1]")
	fs.Uint64Var(&o.seed, flagSeed, eigen.DefaultSeed, "Seed for the eigensolver's random starts")
	fs.Float64Var(&o.tolerance, flagTolerance, eigen.DefaultTolerance, "Eigenvalue convergence tolerance")
	fs.IntVar(&o.maxIterations, flagMaxIterations, eigen.DefaultMaxIterations, "Power-iteration cap per eigenpair")
	fs.BoolVar(&o.fillMissing, flagFillMissing, false, "Replace empty/NaN cells with their column mean")
}

func newPCACommand(log *logrus.Logger, out io.Writer) *cobra.Command {
	o := &pcaOptions{}

	cmd := &cobra.Command{
		Use:   "pca",
		Short: "Project a CSV dataset onto its principal components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.config != "" {
				cfg, err := loadRunConfig(o.config)
				if err != nil {
					return err
				}
				cfg.applyTo(o, cmd.Flags())
			}

			return runPCA(o, log, out)
		},
	}
	bindPCAFlags(cmd.Flags(), o)
	_ = cmd.MarkFlagRequired(flagInput)

	return cmd
}

// fitOptions validates the numeric settings before they reach option
// constructors that panic on nonsense.
func (o *pcaOptions) fitOptions(log logrus.FieldLogger) ([]pca.Option, error) {
	if !(o.tolerance > 0) {
		return nil, fmt.Errorf("--%s must be > 0, got %v", flagTolerance, o.tolerance)
	}
	if o.maxIterations <= 0 {
		return nil, fmt.Errorf("--%s must be > 0, got %d", flagMaxIterations, o.maxIterations)
	}

	opts := []pca.Option{
		pca.WithThreshold(o.threshold),
		pca.WithSeed(o.seed),
		pca.WithTolerance(o.tolerance),
		pca.WithMaxIterations(o.maxIterations),
		pca.WithLogger(log),
	}
	if o.k != 0 {
		opts = append(opts, pca.WithK(o.k))
	}

	return opts, nil
}

func runPCA(o *pcaOptions, log *logrus.Logger, out io.Writer) error {
	entry := log.WithField("input", o.input)

	X, missing, err := readMatrixFile(o.input)
	if err != nil {
		return err
	}
	entry = entry.WithFields(logrus.Fields{"rows": X.Rows(), "cols": X.Cols()})
	entry.Info("loaded dataset")

	if missing > 0 {
		if !o.fillMissing {
			return fmt.Errorf("%s: %d missing values; rerun with --%s", o.input, missing, flagFillMissing)
		}
		if X, _, err = matrix.FillMissing(X); err != nil {
			return err
		}
		entry.WithField("missing", missing).Warn("filled missing values with column means")
	}

	opts, err := o.fitOptions(entry)
	if err != nil {
		return err
	}
	res, err := pca.Fit(X, opts...)
	if err != nil {
		return err
	}
	recon, err := pca.Reconstruct(res)
	if err != nil {
		return err
	}
	mse, err := pca.ReconstructionError(X, recon)
	if err != nil {
		return err
	}
	entry.WithFields(logrus.Fields{"k": res.K, "gamma": res.Gamma, "mse": mse}).Info("pca done")

	if o.output != "" {
		if err := writeMatrixFile(o.output, res.Projection); err != nil {
			return err
		}
	}

	report := pcaReport{
		Rows:              X.Rows(),
		Cols:              X.Cols(),
		Missing:           missing,
		K:                 res.K,
		Gamma:             res.Gamma,
		Eigenvalues:       res.Eigenvalues,
		CumulativeRatios:  variance.CumulativeRatios(res.Eigenvalues),
		Means:             res.Means,
		ReconstructionMSE: mse,
		Output:            o.output,
	}
	b, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = out.Write(b)

	return err
}
