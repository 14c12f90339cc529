// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand(log *logrus.Logger, out io.Writer) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:           "lvpca",
		Short:         "Principal component analysis and linear solving on CSV data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			log.SetLevel(lvl)

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&level, "log-level", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")

	cmd.AddCommand(
		newPCACommand(log, out),
		newSolveCommand(log, out),
	)

	return cmd
}
