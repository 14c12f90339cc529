// SPDX-License-Identifier: MIT

// Command lvpca runs PCA and Gaussian elimination over CSV input.
//
//	lvpca pca --input data.csv [--k N | --threshold T] [--output proj.csv]
//	lvpca solve --a A.csv --b b.csv
//
// Reports are written to stdout as YAML; diagnostics go to stderr.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := newRootCommand(log, os.Stdout).Execute(); err != nil {
		log.WithError(err).Error("lvpca failed")
		os.Exit(1)
	}
}
