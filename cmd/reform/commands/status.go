package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/reform/internal/app"
	"go.trai.ch/reform/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List candidate files and whether the next run would process them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			asJSON, _ := cmd.Flags().GetBool("json")

			statuses, err := c.app.Status(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(statuses)
			}

			stale := 0
			for _, s := range statuses {
				var icon string
				switch s.State {
				case app.StateCached:
					icon = style.Fresh.Render(style.Check)
				case app.StateStale:
					icon = style.Stale.Render(style.Tilde)
					stale++
				default:
					icon = style.Failed.Render(style.Warning)
				}
				_, _ = fmt.Fprintf(out, "%s %s %s\n", icon, s.Candidate.Key, style.Muted.Render(string(s.State)))
			}
			_, _ = fmt.Fprintf(out, "%s\n", style.Bold.Render(fmt.Sprintf("%d file(s), %d to format", len(statuses), stale)))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the listing as JSON")
	return cmd
}
