// SPDX-License-Identifier: MIT

// Command cargoplan solves cargo-to-compartment loading problems with the
// simplex method and prints the plan, its profit and a profitability read.
package main

import (
	"os"

	"github.com/katalvlaran/cargolp/cmd/cargoplan/commands"
)

func main() {
	os.Exit(commands.Execute())
}
