// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command craigtool is a harness for the craig interpolation engine: it
// reads a small textual proof format (see proof.go), builds the
// corresponding proof.Graph and partition.Manager, runs the engine, and
// prints the resulting interpolant term. It is not an SMT-LIB front end;
// that remains an external collaborator.
package main

import (
	"fmt"
	"os"

	"github.com/go-air/craig"
	"github.com/go-air/craig/label"
	"github.com/go-air/craig/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		systemFlag      string
		alternativeFlag bool
		configPath      string
	)

	cmd := &cobra.Command{
		Use:   "craigtool <proof-file>",
		Short: "produce a Craig interpolant from a resolution refutation proof",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("system") {
				cfg.System = systemFlag
			}
			if cmd.Flags().Changed("alternative") {
				cfg.Alternative = alternativeFlag
			}

			sys, err := label.ParseSystem(cfg.System)
			if err != nil {
				return err
			}

			logger := logrus.New()
			if lvl, lerr := logrus.ParseLevel(cfg.LogLevel); lerr == nil {
				logger.SetLevel(lvl)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening proof file: %w", err)
			}
			defer f.Close()

			pp, err := readProof(f)
			if err != nil {
				return fmt.Errorf("parsing proof file: %w", err)
			}

			store := term.NewStore()
			ip := craig.New(craig.Config{System: sys, Alternative: cfg.Alternative, Logger: logger}, store, nil)
			result, err := ip.ProduceInterpolant(pp.graph, pp.pm, pp.alpha, nil)
			if err != nil {
				return fmt.Errorf("producing interpolant: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.String(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&systemFlag, "system", "", "labeling system: pudlak|mcmillan|mcmillanprime|ps|psw|pss (overrides config file)")
	cmd.Flags().BoolVar(&alternativeFlag, "alternative", false, "prefer the alternative AB-pivot interpolant form (overrides config file)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}
