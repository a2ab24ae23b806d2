// Command chrono converts timestamps between TAI, GPS, TT and UTC, rounds
// them with leap-second-correct semantics, and computes Julian day numbers
// and GPS weeks.
package main

import (
	"fmt"
	"os"

	"github.com/temporalis/chrono/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
