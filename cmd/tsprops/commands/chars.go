package commands

import (
	"fmt"
	"unicode/utf16"

	"github.com/spf13/cobra"
	"go.trai.ch/tsprops/internal/core/surrogates"
)

func newCharsCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "chars <text>",
		Short: "List the characters of a text with their UTF-16 offsets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units := utf16.Encode([]rune(args[0]))
			out := cmd.OutOrStdout()

			emit := func(start, end int) {
				r := rune(units[start])
				if end-start == 2 {
					r = surrogates.Combine(units[start], units[start+1])
				}
				_, _ = fmt.Fprintf(out, "%d\t%d\tU+%04X\t%q\n", start, end-start, r, r)
			}

			if reverse {
				for end := len(units); end > 0; {
					start := surrogates.PrevChar(units, end)
					emit(start, end)
					end = start
				}
				return nil
			}

			for start := 0; start < len(units); {
				end := surrogates.NextChar(units, start)
				emit(start, end)
				start = end
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Walk the text from the end")
	return cmd
}
