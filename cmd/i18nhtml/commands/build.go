package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/i18nhtml/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [nodes...]",
		Short: "Build the targets of the given nodes, or of every node",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			json, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")
			metricsTextfile, _ := cmd.Flags().GetString("metrics-textfile")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				Force:           force,
				JSON:            json,
				Verbose:         verbose,
				MetricsTextfile: metricsTextfile,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild every target regardless of recorded fingerprints")
	cmd.Flags().Bool("json", false, "Write logs as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "Log up-to-date targets and waits on other nodes")
	cmd.Flags().String("metrics-textfile", "", "Write build metrics in the Prometheus text format to this file")
	return cmd
}
