package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reform/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Format every changed file under the configured directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Run(cmd.Context(), runOptions(cmd))
			return err
		},
	}
	addRunFlags(cmd)
	cmd.Flags().BoolP("no-cache", "n", false, "Reprocess files even when their fingerprint is cached")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report files that would be reformatted, without writing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Check(cmd.Context(), runOptions(cmd))
			return err
		},
	}
	addRunFlags(cmd)
	cmd.Flags().BoolP("no-cache", "n", false, "Check files even when their fingerprint is cached")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Format once, then again whenever files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), runOptions(cmd))
		},
	}
	addRunFlags(cmd)
	cmd.Flags().BoolP("no-cache", "n", false, "Reprocess files even when their fingerprint is cached")
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("workers", "w", 0, "Number of files processed concurrently (0 = config or CPU count)")
	cmd.Flags().Duration("timeout", 0, "Per-file transform timeout (0 = config)")
	cmd.Flags().Bool("skip", false, "Skip formatting entirely")
	cmd.Flags().Bool("fail-on-error", false, "Exit non-zero when any file fails")
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui, linear, or json")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output=linear)")
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	workers, _ := cmd.Flags().GetInt("workers")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	skip, _ := cmd.Flags().GetBool("skip")
	failOnError, _ := cmd.Flags().GetBool("fail-on-error")
	output, _ := cmd.Flags().GetString("output")
	ci, _ := cmd.Flags().GetBool("ci")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// Debug lines would tear through the interactive view.
	if ci || (verbose && output == "auto") {
		output = "linear"
	}

	return app.RunOptions{
		ConfigPath:  configPath,
		Workers:     workers,
		Timeout:     timeout,
		NoCache:     noCache,
		Skip:        skip,
		FailOnError: failOnError,
		OutputMode:  output,
	}
}
