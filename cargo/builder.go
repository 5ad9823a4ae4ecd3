// SPDX-License-Identifier: MIT

package cargo

import (
	"fmt"

	"github.com/katalvlaran/cargolp/simplex"
)

// Column returns the decision column of (resource, bin):
// resource*numBins + bin.
func Column(resource, bin, numBins int) int {
	return resource*numBins + bin
}

// AvailabilityRow returns the constraint row bounding the total units of resource.
func AvailabilityRow(resource int) int { return resource }

// CapacityRow returns the constraint row bounding dimension dim of bin, given
// numResources availability rows in front and numBins bins per dimension.
func CapacityRow(dim, bin, numResources, numBins int) int {
	return numResources + dim*numBins + bin
}

// dimensionsOf infers the dimension count from the first bin (or the first
// resource when there are no bins) and checks that every record agrees.
func dimensionsOf(resources []Resource, bins []Bin) (int, error) {
	var d int
	switch {
	case len(bins) > 0:
		d = len(bins[0].Limits)
	case len(resources) > 0:
		d = len(resources[0].Consumption)
	}
	var i int
	for i = range bins {
		if len(bins[i].Limits) != d {
			return 0, fmt.Errorf("%w: bin %d has %d limits, want %d", ErrDimensionMismatch, i, len(bins[i].Limits), d)
		}
	}
	for i = range resources {
		if len(resources[i].Consumption) != d {
			return 0, fmt.Errorf("%w: resource %d has %d consumption values, want %d", ErrDimensionMismatch, i, len(resources[i].Consumption), d)
		}
	}

	return d, nil
}

// BuildTableau turns resources and bins into a standard-form maximization
// tableau.
//
// Layout, with n resources, m bins and d dimensions:
//   - decision column Column(i, j, m) is the quantity of resource i in bin j;
//   - rows 0..n-1: availability of each resource (coefficient 1 on each of its
//     bin columns, RHS = Available);
//   - rows n + k*m + j: dimension k of bin j (coefficient = Consumption[k] of
//     each resource in that bin's columns, RHS = Limits[k]);
//   - slack identity after the decision block, RHS column last;
//   - objective row: -Profit in every decision column.
//
// Inputs are only read. Negative availabilities or limits are a caller
// precondition (see Problem.Validate) and surface as simplex.ErrNegativeRHS.
//
// Errors:
//   - ErrDimensionMismatch when records disagree on the dimension count.
//
// Complexity: O((n + d*m) * (n*m + n + d*m)).
func BuildTableau(resources []Resource, bins []Bin) (*simplex.Tableau, error) {
	d, err := dimensionsOf(resources, bins)
	if err != nil {
		return nil, err
	}
	var (
		n = len(resources)
		m = len(bins)
	)
	t, err := simplex.NewTableau(n+d*m, n*m)
	if err != nil {
		return nil, err
	}

	var i, j, k, row int
	for i = 0; i < n; i++ {
		row = AvailabilityRow(i)
		for j = 0; j < m; j++ {
			if err = t.SetCoefficient(row, Column(i, j, m), 1); err != nil {
				return nil, err
			}
		}
		if err = t.SetRHS(row, resources[i].Available); err != nil {
			return nil, err
		}
	}
	for k = 0; k < d; k++ {
		for j = 0; j < m; j++ {
			row = CapacityRow(k, j, n, m)
			for i = 0; i < n; i++ {
				if err = t.SetCoefficient(row, Column(i, j, m), resources[i].Consumption[k]); err != nil {
					return nil, err
				}
			}
			if err = t.SetRHS(row, bins[j].Limits[k]); err != nil {
				return nil, err
			}
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if err = t.SetProfit(Column(i, j, m), resources[i].Profit); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}
