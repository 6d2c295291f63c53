package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/tsprops/internal/adapters/config"
	"go.trai.ch/tsprops/internal/app"
)

func (c *CLI) newInternCmd() *cobra.Command {
	var (
		workers  int
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "intern [file]",
		Short: "Intern the runs of a run file and report shared property sets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFilename
			if len(args) == 1 {
				path = args[0]
			}
			if progress {
				c.telemetry.SetOutput(cmd.ErrOrStderr())
			}

			report, err := c.app.Intern(cmd.Context(), path, app.InternOptions{Workers: workers})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "RUN\tGROUP\tFINGERPRINT\tPROPERTIES")
			for _, r := range report.Runs {
				_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Name, r.Group, r.Fingerprint, r.Props)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d runs, %d distinct property sets (cache: %d entries, %d hits, %d misses)\n",
				len(report.Runs), report.Distinct, report.Stats.Entries, report.Stats.Hits, report.Stats.Misses)
			return err
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of runs interned concurrently (0 = number of CPUs)")
	cmd.Flags().BoolVarP(&progress, "progress", "p", false, "Print per-run progress to stderr")
	return cmd
}
