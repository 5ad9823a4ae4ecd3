// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of cargoplan.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cargolp/internal/config"
	"github.com/katalvlaran/cargolp/internal/version"
)

// env is the state shared by the subcommands of one root command.
type env struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

// Execute runs the command tree on os.Args and returns the process exit code.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}

// NewRootCmd builds the command tree writing reports to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	e := &env{v: config.New()}

	root := &cobra.Command{
		Use:   version.AppName,
		Short: "Cargo loading planner (simplex method)",
		Long: `cargoplan distributes cargo types over capacity-limited compartments
to maximize transport profit, then reports which cargo is worth carrying.

Settings come from flags, CARGOPLAN_* environment variables and an optional
YAML file given with --config, in that order of precedence.`,
		Version:       version.Current,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(e.v, cmd.Flags()); err != nil {
				return err
			}
			if err := config.ReadFile(e.v, e.cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(e.v)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.Level()}))

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&e.cfgFile, "config", "", "YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newSolveCmd(e), newDemoCmd(e), newVersionCmd())

	return root
}
