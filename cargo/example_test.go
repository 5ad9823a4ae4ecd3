// SPDX-License-Identifier: MIT

package cargo_test

import (
	"fmt"

	"github.com/katalvlaran/cargolp/cargo"
)

// ExampleSolve loads two cargo types into one compartment limited by weight.
func ExampleSolve() {
	resources := []cargo.Resource{
		{ID: 1, Name: "Steel", Consumption: []float64{1}, Profit: 3, Available: 150},
		{ID: 2, Name: "Glass", Consumption: []float64{2}, Profit: 4, Available: 80},
	}
	bins := []cargo.Bin{{ID: 1, Name: "Hold", Limits: []float64{100}}}

	plan, err := cargo.Solve(resources, bins)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range plan.BinContents(0) {
		fmt.Printf("%s: %.2f\n", a.Resource.Name, a.Quantity)
	}
	fmt.Printf("profit: %.2f\n", plan.Objective())
	for _, a := range plan.Assess() {
		if !a.Used && a.HasIncrease {
			fmt.Printf("%s needs +%.2f per unit\n", a.Resource.Name, a.RequiredIncrease)
		}
	}
	// Output:
	// Steel: 100.00
	// profit: 300.00
	// Glass needs +2.00 per unit
}
