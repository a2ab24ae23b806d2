// Package cli implements the chrono command-line tool: timestamp
// conversion between time scales, leap-second-correct rounding, Julian
// day numbers, and GPS week arithmetic.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temporalis/chrono"
	"github.com/temporalis/chrono/scalar"
	"github.com/temporalis/chrono/utc"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	// Prec bounds the fractional digits of rendered day numbers.
	Prec int
}

// NewRootCommand creates the root command for the chrono CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "chrono",
		Short: "chrono - time-scale-aware instant arithmetic",
		Long: `Convert timestamps between TAI, GPS, TT and UTC, round them with
leap-second-correct semantics, and move between instants and
Julian / Modified Julian day numbers.

Timestamps are given as whole days since 2000-01-01 plus decimal
seconds into the day, both read in the scale named by --scale or
--from. Positions inside an inserted leap second use seconds at or
above 86400 on the closing day.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Prec < 0 || opts.Prec > scalar.Precision {
				return fmt.Errorf("invalid precision %d: must be in [0, %d]", opts.Prec, scalar.Precision)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().IntVar(&opts.Prec, "prec", 9, "fractional digits for rendered day numbers")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewRoundCommand(opts))
	cmd.AddCommand(NewMJDCommand(opts))
	cmd.AddCommand(NewJDCommand(opts))
	cmd.AddCommand(NewGPSCommand(opts))
	cmd.AddCommand(NewScalesCommand(opts))

	return cmd
}

// scales is the fixed registry the CLI resolves names against.
func scales() map[string]chrono.Timescale {
	return map[string]chrono.Timescale{
		"TAI": chrono.TAI,
		"GPS": chrono.GPS,
		"TT":  chrono.TT,
		"UTC": utc.Default(),
	}
}

// scaleByName resolves a scale name, case-insensitively.
func scaleByName(name string) (chrono.Timescale, error) {
	reg := scales()
	if s, ok := reg[strings.ToUpper(name)]; ok {
		return s, nil
	}
	known := make([]string, 0, len(reg))
	for n := range reg {
		known = append(known, n)
	}
	sort.Strings(known)
	return nil, NewExitError(ExitCommandError,
		fmt.Sprintf("unknown scale %q (known: %s)", name, strings.Join(known, ", ")))
}

// parseTimestamp builds the scale-native input timestamp from the shared
// --days/--secs flags.
func parseTimestamp(days int64, secs string) (chrono.Timestamp, error) {
	v, err := scalar.FromString(secs)
	if err != nil {
		return chrono.Timestamp{}, WrapExitError(ExitCommandError, "invalid --secs", err)
	}
	return chrono.RawTimestamp(days, v), nil
}

// renderTimestamp prints a timestamp as "days/seconds".
func renderTimestamp(t chrono.Timestamp) string {
	return fmt.Sprintf("%d/%s", t.Days(), t.Seconds())
}
