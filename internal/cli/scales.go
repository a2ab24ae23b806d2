package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/temporalis/chrono"
)

// NewScalesCommand creates the scales command, which lists the scales the
// CLI can resolve by name.
func NewScalesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "scales",
		Short:         "List the known time scales",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScales(cmd)
		},
	}
}

func runScales(cmd *cobra.Command) error {
	reg := scales()
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tUNIT\tLEAP SECONDS")
	for _, n := range names {
		s := reg[n]
		leap := "no"
		if chrono.HasLeapSeconds(s) {
			leap = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name(), s.Unit(), leap)
	}
	return w.Flush()
}
