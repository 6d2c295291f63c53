// Package commands implements the CLI commands for tsprops.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tsprops/internal/adapters/store"
	"go.trai.ch/tsprops/internal/app"
	"go.trai.ch/tsprops/internal/build"
	"go.trai.ch/tsprops/internal/core/ports"
)

// CLI represents the command line interface for tsprops.
type CLI struct {
	app       Application
	telemetry ports.Telemetry
	rootCmd   *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Intern(ctx context.Context, path string, opts app.InternOptions) (*app.Report, error)
}

// New creates a new CLI instance with the given app. Progress of the intern
// command is reported through telemetry.
func New(a Application, telemetry ports.Telemetry) *CLI {
	rootCmd := &cobra.Command{
		Use:   "tsprops",
		Short: "Inspect canonical text-run properties",
		Long: "Inspect canonical text-run properties.\n\n" +
			"Set " + store.PathEnv + " to persist interned runs to a JSON file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	c := &CLI{
		app:       a,
		telemetry: telemetry,
		rootCmd:   rootCmd,
	}

	rootCmd.AddCommand(c.newInternCmd())
	rootCmd.AddCommand(newTimeCmd())
	rootCmd.AddCommand(newCharsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
