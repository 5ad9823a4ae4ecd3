// SPDX-License-Identifier: MIT

package cargo

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the cargo package.
var (
	// ErrDimensionMismatch indicates that a resource or bin does not carry one
	// entry per tracked dimension.
	ErrDimensionMismatch = errors.New("cargo: dimension mismatch")

	// ErrUnknownResource indicates an adjustment naming a resource that is not
	// part of the problem.
	ErrUnknownResource = errors.New("cargo: unknown resource")

	// ErrInvalidProblem indicates a problem that violates a loader precondition
	// (negative availability or limit, duplicate names, non-finite numbers).
	ErrInvalidProblem = errors.New("cargo: invalid problem")
)

// UsedThreshold is the quantity above which a decision value counts as
// carried, and the reduced cost above which a price increase is reported.
const UsedThreshold = 1e-6

// Resource is a cargo type offered for transport.
//
// Consumption holds the per-unit use of each dimension (e.g. weight, volume),
// in the order of Problem.Dimensions.
type Resource struct {
	ID          int
	Name        string
	Consumption []float64
	Profit      float64 // per-unit price paid for carrying the cargo
	Available   float64 // units offered
}

// Bin is a capacity-limited compartment. Limits holds one capacity per
// dimension, in the order of Problem.Dimensions.
type Bin struct {
	ID     int
	Name   string
	Limits []float64
}

// Adjustment overrides the availability of one resource, matched by name.
type Adjustment struct {
	Resource  string
	Available float64
}

// Problem groups the inputs of one planning run.
type Problem struct {
	Dimensions  []string
	Resources   []Resource
	Bins        []Bin
	Adjustments []Adjustment
}

// Allocation is a quantity of one resource placed in one bin.
type Allocation struct {
	Resource Resource
	Quantity float64
}

// Assessment is the profitability verdict for one resource.
//
//   - Used: some bin carries more than UsedThreshold units.
//   - HasIncrease: the resource is unused and at least one of its bin columns
//     has a reduced cost above UsedThreshold; RequiredIncrease is the smallest
//     such reduced cost, i.e. the minimum per-unit price rise that makes it
//     worth carrying.
type Assessment struct {
	Resource         Resource
	Used             bool
	HasIncrease      bool
	RequiredIncrease float64
}

// Delta compares the objective of two plans.
type Delta struct {
	Before float64
	After  float64
	Change float64
}

// Clone returns a deep copy of the resource.
func (r Resource) Clone() Resource {
	r.Consumption = append([]float64(nil), r.Consumption...)

	return r
}

// Clone returns a deep copy of the bin.
func (b Bin) Clone() Bin {
	b.Limits = append([]float64(nil), b.Limits...)

	return b
}

// Clone returns a deep copy of the problem; no slice is shared with p.
func (p Problem) Clone() Problem {
	out := Problem{
		Dimensions:  append([]string(nil), p.Dimensions...),
		Resources:   make([]Resource, len(p.Resources)),
		Bins:        make([]Bin, len(p.Bins)),
		Adjustments: append([]Adjustment(nil), p.Adjustments...),
	}
	var i int
	for i = range p.Resources {
		out.Resources[i] = p.Resources[i].Clone()
	}
	for i = range p.Bins {
		out.Bins[i] = p.Bins[i].Clone()
	}

	return out
}

// Adjusted returns a copy of p with every adjustment applied to the matching
// resource and the adjustment list cleared. p itself is not modified.
//
// Errors:
//   - ErrUnknownResource when an adjustment names no resource of p.
//   - ErrInvalidProblem when an adjusted availability is negative.
func (p Problem) Adjusted() (Problem, error) {
	out := p.Clone()
	var (
		adj   Adjustment
		i     int
		found bool
	)
	for _, adj = range p.Adjustments {
		if adj.Available < 0 || math.IsNaN(adj.Available) {
			return Problem{}, fmt.Errorf("%w: %q adjusted to %g", ErrInvalidProblem, adj.Resource, adj.Available)
		}
		found = false
		for i = range out.Resources {
			if out.Resources[i].Name == adj.Resource {
				out.Resources[i].Available = adj.Available
				found = true
				break
			}
		}
		if !found {
			return Problem{}, fmt.Errorf("%w: %q", ErrUnknownResource, adj.Resource)
		}
	}
	out.Adjustments = nil

	return out, nil
}

// Validate checks the preconditions the tableau builder relies on:
// one consumption entry and one limit per dimension, non-negative finite
// availabilities and limits, and unique resource names.
func (p Problem) Validate() error {
	d := len(p.Dimensions)
	seen := make(map[string]struct{}, len(p.Resources))
	var (
		r Resource
		b Bin
		v float64
	)
	for _, r = range p.Resources {
		if len(r.Consumption) != d {
			return fmt.Errorf("%w: resource %q has %d consumption values, want %d", ErrDimensionMismatch, r.Name, len(r.Consumption), d)
		}
		if !finite(r.Available) || r.Available < 0 {
			return fmt.Errorf("%w: resource %q availability %g", ErrInvalidProblem, r.Name, r.Available)
		}
		if !finite(r.Profit) {
			return fmt.Errorf("%w: resource %q profit %g", ErrInvalidProblem, r.Name, r.Profit)
		}
		for _, v = range r.Consumption {
			if !finite(v) {
				return fmt.Errorf("%w: resource %q consumption %g", ErrInvalidProblem, r.Name, v)
			}
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("%w: duplicate resource %q", ErrInvalidProblem, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	for _, b = range p.Bins {
		if len(b.Limits) != d {
			return fmt.Errorf("%w: bin %q has %d limits, want %d", ErrDimensionMismatch, b.Name, len(b.Limits), d)
		}
		for _, v = range b.Limits {
			if !finite(v) || v < 0 {
				return fmt.Errorf("%w: bin %q limit %g", ErrInvalidProblem, b.Name, v)
			}
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
