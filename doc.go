// SPDX-License-Identifier: MIT

// Package cargolp is a small linear-programming toolkit for loading problems:
// which cargo goes into which compartment, for how much profit, and what it
// would take to make the cargo left behind worth carrying.
//
// What is inside?
//
//	matrix/   : dense row-major float64 storage and the row kernels pivoting is built from
//	simplex/  : tableau, primal simplex (Dantzig or Bland), reduced costs
//	cargo/    : resource × bin tableau builder, plans, profitability read, YAML problems
//	cmd/      : the cargoplan CLI (solve, demo, version)
//	examples/ : runnable scenarios
//
// Quick example:
//
//	resources := []cargo.Resource{{Name: "Steel", Consumption: []float64{1}, Profit: 3, Available: 150}}
//	bins := []cargo.Bin{{Name: "Hold", Limits: []float64{100}}}
//	plan, err := cargo.Solve(resources, bins)
//	// plan.Objective() == 300, plan.Quantity(0, 0) == 100
//
// Determinism: scan orders and tie-breaks are fixed, so the same input always
// produces the same pivot sequence and the same plan.
//
//	go install github.com/katalvlaran/cargolp/cmd/cargoplan@latest
package cargolp
