// SPDX-License-Identifier: MIT

package cargo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cargolp/cargo"
	"github.com/katalvlaran/cargolp/simplex"
)

const tol = 1e-6

// referenceProblem loads the five-cargo, three-compartment fixture.
func referenceProblem(t *testing.T) cargo.Problem {
	t.Helper()
	p, err := cargo.LoadProblemFile("testdata/reference.yaml")
	require.NoError(t, err)

	return p
}

// ------------------------------------------------------------------------
// 1. Small scenarios with hand-checked optima.
// ------------------------------------------------------------------------

func TestSolveSingleResourceSingleBin(t *testing.T) {
	resources := []cargo.Resource{{Name: "A", Consumption: []float64{1}, Profit: 5, Available: 10}}
	bins := []cargo.Bin{{Name: "X", Limits: []float64{100}}}

	plan, err := cargo.Solve(resources, bins)
	require.NoError(t, err)
	require.InDelta(t, 50, plan.Objective(), tol)
	require.InDelta(t, 10, plan.Quantity(0, 0), tol)
	require.InDelta(t, 10, plan.Carried(0), tol)
	require.InDeltaSlice(t, []float64{10}, plan.Load(0), tol)
	require.InDeltaSlice(t, []float64{90}, plan.Headroom(0), tol)

	contents := plan.BinContents(0)
	require.Len(t, contents, 1)
	require.Equal(t, "A", contents[0].Resource.Name)

	a := plan.Assess()
	require.Len(t, a, 1)
	require.True(t, a[0].Used)
	require.False(t, a[0].HasIncrease)
}

func TestSolveCompetingResources(t *testing.T) {
	// Capacity 100: A earns 3 per unit of capacity, B earns 2. A alone fills the bin.
	resources := []cargo.Resource{
		{Name: "A", Consumption: []float64{1}, Profit: 3, Available: 150},
		{Name: "B", Consumption: []float64{2}, Profit: 4, Available: 80},
	}
	bins := []cargo.Bin{{Name: "X", Limits: []float64{100}}}

	plan, err := cargo.Solve(resources, bins)
	require.NoError(t, err)
	require.InDelta(t, 300, plan.Objective(), tol)
	require.InDelta(t, 100, plan.Quantity(0, 0), tol)
	require.InDelta(t, 0, plan.Quantity(1, 0), tol)
	require.InDeltaSlice(t, []float64{0}, plan.Headroom(0), tol)

	rc := plan.Solution.ReducedCost(cargo.Column(1, 0, 1))
	require.Greater(t, rc, tol, "unused resource must carry a positive reduced cost")

	a := plan.Assess()
	require.True(t, a[0].Used)
	require.False(t, a[1].Used)
	require.True(t, a[1].HasIncrease)
	require.InDelta(t, 2, a[1].RequiredIncrease, tol)
}

func TestSolveUnboundedResource(t *testing.T) {
	// No bins means the resource column only meets its availability row,
	// so build the unbounded case on the engine directly.
	tab, err := simplex.NewTableau(0, 1)
	require.NoError(t, err)
	require.NoError(t, tab.SetProfit(0, 5))

	_, err = simplex.Solve(tab)
	require.ErrorIs(t, err, simplex.ErrUnbounded)
}

func TestSolveDimensionMismatch(t *testing.T) {
	_, err := cargo.Solve(
		[]cargo.Resource{{Consumption: []float64{1, 2}}},
		[]cargo.Bin{{Limits: []float64{1}}},
	)
	require.ErrorIs(t, err, cargo.ErrDimensionMismatch)
}

func TestAssessNotTransported(t *testing.T) {
	// Zero profit: the column never enters and its reduced cost stays 0.
	resources := []cargo.Resource{{Name: "Free", Consumption: []float64{1}, Profit: 0, Available: 10}}
	bins := []cargo.Bin{{Name: "X", Limits: []float64{100}}}

	plan, err := cargo.Solve(resources, bins)
	require.NoError(t, err)

	a := plan.Assess()
	require.False(t, a[0].Used)
	require.False(t, a[0].HasIncrease)
	require.Zero(t, a[0].RequiredIncrease)
	require.Empty(t, plan.BinContents(0))
}

func TestPlanOutOfRange(t *testing.T) {
	plan, err := cargo.Solve(
		[]cargo.Resource{{Name: "A", Consumption: []float64{1}, Profit: 1, Available: 1}},
		[]cargo.Bin{{Name: "X", Limits: []float64{1}}},
	)
	require.NoError(t, err)
	require.Zero(t, plan.Quantity(-1, 0))
	require.Zero(t, plan.Quantity(0, 5))
	require.Zero(t, plan.Carried(3))
	require.Nil(t, plan.Load(2))
	require.Nil(t, plan.Headroom(-1))
}

// ------------------------------------------------------------------------
// 2. Reference problem: optimum, bounds, sensitivity, before/after.
// ------------------------------------------------------------------------

func TestReferenceOptimum(t *testing.T) {
	p := referenceProblem(t)

	plan, err := cargo.Solve(p.Resources, p.Bins)
	require.NoError(t, err)
	require.InDelta(t, 57421.325051759835, plan.Objective(), 1e-4)

	bland, err := cargo.Solve(p.Resources, p.Bins, simplex.WithPivotRule(simplex.PivotBland))
	require.NoError(t, err)
	require.InDelta(t, plan.Objective(), bland.Objective(), 1e-4)

	a := plan.Assess()
	require.Len(t, a, 5)
	require.True(t, a[0].Used, "pipes")
	require.True(t, a[1].Used, "paper")
	require.True(t, a[4].Used, "lumber")
	require.False(t, a[2].Used, "containers")
	require.True(t, a[2].HasIncrease)
	require.InDelta(t, 16.694099, a[2].RequiredIncrease, 1e-5)
	require.False(t, a[3].Used, "rolled metal")
	require.True(t, a[3].HasIncrease)
	require.InDelta(t, 192.929607, a[3].RequiredIncrease, 1e-5)
}

func TestReferenceBounds(t *testing.T) {
	p := referenceProblem(t)
	plan, err := cargo.Solve(p.Resources, p.Bins)
	require.NoError(t, err)

	var i, j, k int
	for _, v := range plan.Solution.Values {
		require.GreaterOrEqual(t, v, -tol)
	}
	for i = range p.Resources {
		require.LessOrEqual(t, plan.Carried(i), p.Resources[i].Available+tol)
		for j = range p.Bins {
			// A single resource can never exceed what the bin alone could hold of it.
			for k = range p.Dimensions {
				require.LessOrEqual(t,
					plan.Quantity(i, j)*p.Resources[i].Consumption[k],
					p.Bins[j].Limits[k]+tol)
			}
		}
	}
	for j = range p.Bins {
		load := plan.Load(j)
		require.Len(t, load, len(p.Dimensions))
		for k = range load {
			require.LessOrEqual(t, load[k], p.Bins[j].Limits[k]+tol)
		}
	}

	obj, err := plan.Solution.Tableau.Row(plan.Solution.Tableau.ObjectiveRow())
	require.NoError(t, err)
	require.GreaterOrEqual(t, floats.Min(obj[:len(obj)-1]), -tol)
}

func TestReferenceAdjustmentsDoNotAlias(t *testing.T) {
	p := referenceProblem(t)

	before, err := cargo.Solve(p.Resources, p.Bins)
	require.NoError(t, err)
	snapshot := append([]float64(nil), before.Solution.Values...)
	objective := before.Objective()

	adjusted, err := p.Adjusted()
	require.NoError(t, err)
	require.Equal(t, 350.0, p.Resources[4].Available, "Adjusted must not touch the source problem")
	require.Equal(t, 400.0, adjusted.Resources[4].Available)
	require.Equal(t, 900.0, adjusted.Resources[1].Available)
	require.Equal(t, 100.0, adjusted.Resources[2].Available)

	after, err := cargo.Solve(adjusted.Resources, adjusted.Bins)
	require.NoError(t, err)
	require.InDelta(t, 60207.55693581781, after.Objective(), 1e-4)

	// Mutate the caller's records in place and solve once more.
	p.Resources[4].Available = 0
	_, err = cargo.Solve(p.Resources, p.Bins)
	require.NoError(t, err)

	require.Equal(t, snapshot, before.Solution.Values)
	require.Equal(t, objective, before.Objective())
	require.Equal(t, 350.0, before.Resources()[4].Available)

	d := cargo.Compare(before, after)
	require.InDelta(t, 2786.231883, d.Change, 1e-4)
	require.Equal(t, before.Objective(), d.Before)
	require.Equal(t, after.Objective(), d.After)
}
