// SPDX-License-Identifier: MIT

package cargo

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cargolp/simplex"
)

// Plan is the allocation view of a solved cargo problem. It keeps private
// copies of the resources and bins it was solved for, so later edits to the
// caller's records do not change what the plan reports.
type Plan struct {
	Solution  simplex.Solution
	resources []Resource
	bins      []Bin
}

// Solve builds the tableau for resources and bins, runs the simplex engine on
// it and wraps the result in a Plan. Options are passed through to
// simplex.Solve.
//
// Errors:
//   - ErrDimensionMismatch from BuildTableau.
//   - simplex.ErrUnbounded, simplex.ErrDidNotConverge from the engine.
func Solve(resources []Resource, bins []Bin, opts ...simplex.Option) (Plan, error) {
	t, err := BuildTableau(resources, bins)
	if err != nil {
		return Plan{}, err
	}
	sol, err := simplex.Solve(t, opts...)
	if err != nil {
		return Plan{}, err
	}

	return NewPlan(sol, resources, bins), nil
}

// NewPlan wraps an existing solution. resources and bins are deep-copied.
func NewPlan(sol simplex.Solution, resources []Resource, bins []Bin) Plan {
	p := Plan{
		Solution:  sol,
		resources: make([]Resource, len(resources)),
		bins:      make([]Bin, len(bins)),
	}
	var i int
	for i = range resources {
		p.resources[i] = resources[i].Clone()
	}
	for i = range bins {
		p.bins[i] = bins[i].Clone()
	}

	return p
}

// Resources returns the resources the plan was solved for.
func (p Plan) Resources() []Resource { return p.resources }

// Bins returns the bins the plan was solved for.
func (p Plan) Bins() []Bin { return p.bins }

// Objective returns the optimal profit.
func (p Plan) Objective() float64 { return p.Solution.Objective }

// Quantity returns the units of resource placed in bin (0 when out of range).
func (p Plan) Quantity(resource, bin int) float64 {
	if resource < 0 || resource >= len(p.resources) || bin < 0 || bin >= len(p.bins) {
		return 0
	}

	return p.Solution.Value(Column(resource, bin, len(p.bins)))
}

// Carried returns the total units of resource placed across all bins.
func (p Plan) Carried(resource int) float64 {
	if resource < 0 || resource >= len(p.resources) {
		return 0
	}
	m := len(p.bins)
	start := Column(resource, 0, m)

	return floats.Sum(p.Solution.Values[start : start+m])
}

// BinContents lists the resources carried in bin above UsedThreshold, in
// resource order. An empty result means the bin carries nothing.
func (p Plan) BinContents(bin int) []Allocation {
	var (
		out []Allocation
		q   float64
		i   int
	)
	for i = range p.resources {
		q = p.Quantity(i, bin)
		if q > UsedThreshold {
			out = append(out, Allocation{Resource: p.resources[i], Quantity: q})
		}
	}

	return out
}

// Load returns the consumption of every dimension in bin under the plan.
func (p Plan) Load(bin int) []float64 {
	if bin < 0 || bin >= len(p.bins) {
		return nil
	}
	load := make([]float64, len(p.bins[bin].Limits))
	var i int
	for i = range p.resources {
		floats.AddScaled(load, p.Quantity(i, bin), p.resources[i].Consumption)
	}

	return load
}

// Headroom returns Limits - Load for bin, clamped at zero.
func (p Plan) Headroom(bin int) []float64 {
	load := p.Load(bin)
	if load == nil {
		return nil
	}
	out := make([]float64, len(load))
	floats.SubTo(out, p.bins[bin].Limits, load)
	var k int
	for k = range out {
		out[k] = math.Max(out[k], 0)
	}

	return out
}

// Assess returns the profitability verdict of every resource of the plan.
func (p Plan) Assess() []Assessment {
	return Assess(p.Solution, p.resources, p.bins)
}

// Assess derives, for every resource, whether the solution carries it and, if
// not, the minimum per-unit price increase read from the reduced costs of its
// bin columns.
//
// Complexity: O(n*m).
func Assess(sol simplex.Solution, resources []Resource, bins []Bin) []Assessment {
	var (
		m   = len(bins)
		out = make([]Assessment, len(resources))
		i   int
		j   int
		rc  float64
		a   Assessment
	)
	for i = range resources {
		a = Assessment{Resource: resources[i].Clone(), RequiredIncrease: math.Inf(1)}
		for j = 0; j < m; j++ {
			if sol.Value(Column(i, j, m)) > UsedThreshold {
				a.Used = true
				break
			}
		}
		if !a.Used {
			for j = 0; j < m; j++ {
				rc = sol.ReducedCost(Column(i, j, m))
				if rc > UsedThreshold && rc < a.RequiredIncrease {
					a.RequiredIncrease = rc
					a.HasIncrease = true
				}
			}
		}
		if !a.HasIncrease {
			a.RequiredIncrease = 0
		}
		out[i] = a
	}

	return out
}

// Compare returns the objective change from before to after.
func Compare(before, after Plan) Delta {
	return Delta{
		Before: before.Objective(),
		After:  after.Objective(),
		Change: after.Objective() - before.Objective(),
	}
}
