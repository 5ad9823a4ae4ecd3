// SPDX-License-Identifier: MIT

// Package cargo maps a cargo-loading problem onto the simplex engine and reads
// operational conclusions back out of the final tableau.
//
// Model:
//
//   - A Resource is a cargo type with a per-unit consumption of each tracked
//     dimension (weight, volume, ...), a per-unit profit and an availability.
//   - A Bin is a compartment with one capacity limit per dimension.
//   - The decision variable (i, j) is the number of units of resource i placed
//     in bin j; its tableau column is Column(i, j, len(bins)).
//
// Constraint rows, in order:
//
//   - one availability row per resource;
//   - for each dimension, one capacity row per bin.
//
// Reading the result:
//
//   - Plan exposes per-bin contents, loads and headroom.
//   - Assess reports which resources are carried and, for the others, the
//     smallest per-unit price increase (a reduced cost in the final objective
//     row) that would bring them into the plan.
//   - Compare gives the objective change between two plans.
//
// Problems can be read from YAML with LoadProblem/LoadProblemFile. Per-dimension
// values are keyed by dimension name; Problem.Adjusted applies the file's
// availability overrides to a deep copy, leaving the loaded problem intact.
package cargo
