package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets [nodes...]",
		Short: "List the targets configured on the given nodes, or on every node",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			withSources, _ := cmd.Flags().GetBool("sources")

			infos, err := c.app.Targets(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, info := range infos {
				for i, target := range info.Targets {
					state := "up to date"
					if i < len(info.Stale) && info.Stale[i] {
						state = "stale"
					}
					_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", info.Name, target.Path, state)
				}
				if withSources {
					for _, src := range info.Sources {
						_, _ = fmt.Fprintf(out, "  %s\t%s\n", src.Role, src.Path)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("sources", "s", false, "Also list the sources of every unit")
	return cmd
}
