// Package commands implements the CLI commands for reform.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/reform/internal/app"
	"go.trai.ch/reform/internal/build"
	"go.trai.ch/reform/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (*domain.Report, error)
	Check(ctx context.Context, opts app.RunOptions) (*domain.Report, error)
	Status(ctx context.Context, configPath string) ([]app.FileStatus, error)
	Clean(ctx context.Context, configPath string) error
	Watch(ctx context.Context, opts app.RunOptions) error
}

// LogSettings is the part of the logger the global flags control.
type LogSettings interface {
	SetLevel(level slog.Level)
	SetJSON(enable bool)
}

// CLI represents the command line interface for reform.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application, logs LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reform",
		Short:         "Incrementally reformat source files in place",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose, so --version has no shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")

	switch format {
	case "text":
		c.logs.SetJSON(false)
	case "json":
		c.logs.SetJSON(true)
	default:
		return fmt.Errorf("unknown log format %q: want text or json", format)
	}

	if verbose {
		c.logs.SetLevel(slog.LevelDebug)
	}
	return nil
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
