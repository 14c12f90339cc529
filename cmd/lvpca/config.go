// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"
)

// runConfig is the YAML run configuration for `lvpca pca`. Unset fields keep
// the flag defaults; explicitly set flags win over the file.
type runConfig struct {
	K             *int     `json:"k,omitempty"`
	Threshold     *float64 `json:"threshold,omitempty"`
	Seed          *uint64  `json:"seed,omitempty"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
	MaxIterations *int     `json:"maxIterations,omitempty"`
	FillMissing   *bool    `json:"fillMissing,omitempty"`
}

func loadRunConfig(path string) (*runConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &runConfig{}
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// applyTo copies every configured field into o unless the matching flag was
// set on the command line.
func (c *runConfig) applyTo(o *pcaOptions, fs *pflag.FlagSet) {
	if c.K != nil && !fs.Changed(flagK) {
		o.k = *c.K
	}
	if c.Threshold != nil && !fs.Changed(flagThreshold) {
		o.threshold = *c.Threshold
	}
	if c.Seed != nil && !fs.Changed(flagSeed) {
		o.seed = *c.Seed
	}
	if c.Tolerance != nil && !fs.Changed(flagTolerance) {
		o.tolerance = *c.Tolerance
	}
	if c.MaxIterations != nil && !fs.Changed(flagMaxIterations) {
		o.maxIterations = *c.MaxIterations
	}
	if c.FillMissing != nil && !fs.Changed(flagFillMissing) {
		o.fillMissing = *c.FillMissing
	}
}
