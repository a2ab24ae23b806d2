package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalis/chrono"
	"github.com/temporalis/chrono/scalar"
)

// GPSOptions holds flags for the gps command.
type GPSOptions struct {
	*RootOptions
	Scale string
	Days  int64
	Secs  string
	Weeks int64
	Into  string
}

// NewGPSCommand creates the gps command. It works in both directions:
// with --weeks it composes an instant from a GPS week/seconds pair, and
// without it decomposes a timestamp into weeks and seconds.
func NewGPSCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GPSOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gps",
		Short: "Convert between timestamps and GPS week numbers",
		Long: `Convert between timestamps and GPS week/seconds pairs. Weeks count
from the GPS epoch, 1980-01-06, and a week is always exactly 604800
seconds.

Examples:
  chrono gps --scale TAI --days 0 --secs 0
  chrono gps --weeks 1042 --secs 518381 --to TAI`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("weeks") {
				return runGPSCompose(opts, cmd)
			}
			return runGPSDecompose(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Scale, "scale", "TAI", "scale of the input timestamp")
	cmd.Flags().Int64Var(&opts.Days, "days", 0, "days since 2000-01-01")
	cmd.Flags().StringVar(&opts.Secs, "secs", "0", "seconds into the day, or into the week with --weeks")
	cmd.Flags().Int64Var(&opts.Weeks, "weeks", 0, "GPS weeks since 1980-01-06 (switches to compose mode)")
	cmd.Flags().StringVar(&opts.Into, "to", "GPS", "scale of the composed output timestamp")

	return cmd
}

func runGPSDecompose(opts *GPSOptions, cmd *cobra.Command) error {
	scale, err := scaleByName(opts.Scale)
	if err != nil {
		return err
	}
	ts, err := parseTimestamp(opts.Days, opts.Secs)
	if err != nil {
		return err
	}

	weeks, secs := chrono.GPSWeeks(chrono.NewInstant(scale, ts))
	fmt.Fprintf(cmd.OutOrStdout(), "week=%d secs=%s\n", weeks, secs)
	return nil
}

func runGPSCompose(opts *GPSOptions, cmd *cobra.Command) error {
	into, err := scaleByName(opts.Into)
	if err != nil {
		return err
	}
	secs, err := scalar.FromString(opts.Secs)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --secs", err)
	}

	out := chrono.GPSInstantAt(opts.Weeks, secs).In(into)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", renderTimestamp(out.Timestamp()))
	return nil
}
