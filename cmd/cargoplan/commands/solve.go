// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cargolp/cargo"
	"github.com/katalvlaran/cargolp/internal/report"
	"github.com/katalvlaran/cargolp/simplex"
)

func newSolveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve a problem file",
		Long: `Solves the problem in the given YAML file and prints the initial tableau,
the distribution per compartment and the maximum profit.

When the file lists adjustments, the problem is solved a second time with
the adjusted availabilities and the profit change is reported. The
profitability read always refers to the last solve.`,
		Example: `  cargoplan solve problem.yaml
  cargoplan solve problem.yaml --pivot-rule bland --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cargo.LoadProblemFile(args[0])
			if err != nil {
				return err
			}

			return e.run(cmd.OutOrStdout(), p)
		},
	}
}

// run solves p (and its adjusted copy, if any) and prints the full report.
func (e *env) run(out io.Writer, p cargo.Problem) error {
	w := report.New(out, report.WithColor(e.cfg.Color))

	before, err := e.solve(w, "Initial data", p)
	if err != nil {
		return err
	}
	last := before

	if len(p.Adjustments) > 0 {
		adjusted, err := p.Adjusted()
		if err != nil {
			return err
		}
		after, err := e.solve(w, "After adjustments", adjusted)
		if err != nil {
			return err
		}
		w.Delta(cargo.Compare(before, after))
		last = after
	}
	w.Assessment(last.Assess())

	return w.Err()
}

func (e *env) solve(w *report.Writer, label string, p cargo.Problem) (cargo.Plan, error) {
	w.Title(label + ":")
	t, err := cargo.BuildTableau(p.Resources, p.Bins)
	if err != nil {
		return cargo.Plan{}, err
	}
	w.Title("Initial tableau:")
	w.Tableau(t)

	opts := e.cfg.SolveOptions(e.log)
	if e.cfg.Trace {
		opts = append(opts, simplex.WithOnPivot(w.Pivot))
	}
	sol, err := simplex.Solve(t, opts...)
	if err != nil {
		return cargo.Plan{}, fmt.Errorf("%s: %w", label, err)
	}
	e.log.Info("solved", "label", label, "iterations", sol.Iterations, "profit", sol.Objective)

	plan := cargo.NewPlan(sol, p.Resources, p.Bins)
	w.Plan(plan)

	return plan, nil
}
