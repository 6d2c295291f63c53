package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/tsprops/internal/core/siltime"
	"go.trai.ch/zerr"
)

// timeLayout prints millisecond precision, which is all a SilTime carries.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func newTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Convert between SilTime values and timestamps",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "from <siltime>",
		Short: "Print the UTC timestamp of a SilTime value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "invalid SilTime value"), "value", args[0])
			}
			t, err := siltime.FromSilTime(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Format(timeLayout))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "to <RFC3339 timestamp>",
		Short: "Print the SilTime value of a timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339Nano, args[0])
			if err != nil {
				return zerr.With(zerr.Wrap(err, "invalid timestamp"), "value", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), siltime.ToSilTime(t))
			return err
		},
	})

	return cmd
}
