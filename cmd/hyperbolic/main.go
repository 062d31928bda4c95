// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
	"github.com/katalvlaran/hyperbolic/internal/config"
	"github.com/katalvlaran/hyperbolic/internal/logging"
)

var version = "0.1.0-dev"

var errOutputFormat = errors.New("--json and --table are mutually exclusive")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what the root pre-run hook resolves once per invocation.
type app struct {
	logger *slog.Logger
	opts   []hyperbolic.Option
	json   bool
	table  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "hyperbolic",
		Short: "Poincaré ball and hyperboloid conversions and distances",
		Long: `hyperbolic converts embedding batches between the Poincaré ball and the
hyperboloid model and measures geodesic distances between them.

Points are passed as repeated --point flags, each a comma-separated list of
coordinates. Results go to stdout, diagnostics to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("table", false, "Output as an aligned table")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPullbackCmd(a),
		newLiftCmd(a),
		newMinkowskiCmd(a),
		newDistanceCmd(a),
		newPoincareDistanceCmd(a),
	)

	return rootCmd
}

// setup loads the config, applies flag overrides and builds the logger and
// library options shared by every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.json, _ = cmd.Flags().GetBool("json")
	a.table, _ = cmd.Flags().GetBool("table")
	if a.json && a.table {
		return errOutputFormat
	}
	if a.json {
		a.logger = logging.NewJSONLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	} else {
		a.logger = logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	}

	opts, err := cfg.HyperbolicOptions(a.logger)
	if err != nil {
		return err
	}
	a.opts = opts
	a.logger.Debug("configuration resolved",
		"boundary_epsilon", cfg.Hyperbolic.BoundaryEpsilon,
		"stabilizer", cfg.Hyperbolic.Stabilizer,
		"arccosh_policy", cfg.Hyperbolic.ArccoshPolicy,
	)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "hyperbolic version %s\n", version)
			return err
		},
	}
}
