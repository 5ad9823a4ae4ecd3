// SPDX-License-Identifier: MIT

package commands

import (
	"bytes"
	_ "embed"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cargolp/cargo"
)

// referenceProblem is five cargo types over three compartments, with
// availability adjustments for a second solve.
//
//go:embed reference.yaml
var referenceProblem []byte

func newDemoCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in reference problem",
		Long: `Solves the built-in reference problem (pipes, paper, containers, rolled
metal and lumber over three compartments), then re-solves it with lumber
raised to 400, paper lowered to 900 and containers lowered to 100.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := cargo.LoadProblem(bytes.NewReader(referenceProblem))
			if err != nil {
				return err
			}

			return e.run(cmd.OutOrStdout(), p)
		},
	}
}
