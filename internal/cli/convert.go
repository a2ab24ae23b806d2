package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temporalis/chrono"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	From string
	To   string
	Days int64
	Secs string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a timestamp between time scales",
		Long: `Convert a timestamp expressed in one scale into another scale.

Examples:
  chrono convert --from UTC --to TAI --days 6209 --secs 86400.5
  chrono convert --from TAI --to GPS --days 0 --secs 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "source scale (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&opts.To, "to", "", "target scale (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().Int64Var(&opts.Days, "days", 0, "days since 2000-01-01 in the source scale")
	cmd.Flags().StringVar(&opts.Secs, "secs", "0", "seconds into the day in the source scale")

	return cmd
}

func runConvert(opts *ConvertOptions, cmd *cobra.Command) error {
	from, err := scaleByName(opts.From)
	if err != nil {
		return err
	}
	to, err := scaleByName(opts.To)
	if err != nil {
		return err
	}
	ts, err := parseTimestamp(opts.Days, opts.Secs)
	if err != nil {
		return err
	}

	out := chrono.NewInstant(from, ts).In(to)
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", renderTimestamp(out.Timestamp()), out)
	return nil
}
