package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalis/chrono"
)

// RoundOptions holds flags for the round command.
type RoundOptions struct {
	*RootOptions
	Scale  string
	Days   int64
	Secs   string
	Digits int
}

// NewRoundCommand creates the round command.
func NewRoundCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RoundOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round a timestamp to a fractional-second precision",
		Long: `Round a timestamp's fractional seconds. Scales with leap seconds are
rounded on the uniform TAI timeline, so a value inside an inserted
second lands on the 60th-second boundary instead of the next day.

Examples:
  chrono round --scale UTC --days 6209 --secs 86400.5 --digits 0
  chrono round --scale TT --days 0 --secs 32.1849 --digits 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRound(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Scale, "scale", "", "scale of the timestamp (required)")
	_ = cmd.MarkFlagRequired("scale")
	cmd.Flags().Int64Var(&opts.Days, "days", 0, "days since 2000-01-01")
	cmd.Flags().StringVar(&opts.Secs, "secs", "0", "seconds into the day")
	cmd.Flags().IntVar(&opts.Digits, "digits", 0, "fractional digits to keep (negative leaves the value unchanged)")

	return cmd
}

func runRound(opts *RoundOptions, cmd *cobra.Command) error {
	scale, err := scaleByName(opts.Scale)
	if err != nil {
		return err
	}
	ts, err := parseTimestamp(opts.Days, opts.Secs)
	if err != nil {
		return err
	}

	out := chrono.NewInstant(scale, ts).RoundTo(opts.Digits)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", renderTimestamp(out.Timestamp()))
	return nil
}
