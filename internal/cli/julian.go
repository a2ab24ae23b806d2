package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalis/chrono"
	"github.com/temporalis/chrono/scalar"
)

// JulianOptions holds flags shared by the mjd and jd commands.
type JulianOptions struct {
	*RootOptions
	Scale   string
	Days    int64
	Secs    string
	TZDelta string
}

// NewMJDCommand creates the mjd command.
func NewMJDCommand(rootOpts *RootOptions) *cobra.Command {
	return newJulianCommand(rootOpts, "mjd", "Modified Julian Day number of a timestamp", false)
}

// NewJDCommand creates the jd command.
func NewJDCommand(rootOpts *RootOptions) *cobra.Command {
	return newJulianCommand(rootOpts, "jd", "Julian Day number of a timestamp", true)
}

func newJulianCommand(rootOpts *RootOptions, use, short string, julian bool) *cobra.Command {
	opts := &JulianOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: fmt.Sprintf(`Compute the %s of a timestamp, honoring the scale's own
fractional-day semantics: on a UTC leap day the fraction is measured
against the true 86401-second length.

Examples:
  chrono %s --scale UTC --days 6209 --secs 86399
  chrono %s --scale TAI --days 0 --secs 43200 --tz-delta 21600`, short, use, use),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJulian(opts, cmd, julian)
		},
	}

	cmd.Flags().StringVar(&opts.Scale, "scale", "", "scale of the timestamp (required)")
	_ = cmd.MarkFlagRequired("scale")
	cmd.Flags().Int64Var(&opts.Days, "days", 0, "days since 2000-01-01")
	cmd.Flags().StringVar(&opts.Secs, "secs", "0", "seconds into the day")
	cmd.Flags().StringVar(&opts.TZDelta, "tz-delta", "0", "scale-native shift in seconds before day numbering")

	return cmd
}

func runJulian(opts *JulianOptions, cmd *cobra.Command, julian bool) error {
	scale, err := scaleByName(opts.Scale)
	if err != nil {
		return err
	}
	ts, err := parseTimestamp(opts.Days, opts.Secs)
	if err != nil {
		return err
	}
	tz, err := scalar.FromString(opts.TZDelta)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --tz-delta", err)
	}

	i := chrono.NewInstant(scale, ts)
	v := chrono.MJDShifted(i, scale, tz)
	if julian {
		v = v.Add(chrono.JDEpochDelta)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", v.Round(opts.Prec))
	return nil
}
