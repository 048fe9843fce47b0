package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.eeva.app/hub/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the hub version and build metadata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(out, build.Version)
				return
			}
			_, _ = fmt.Fprintln(out, "eeva version "+build.Summary())
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version")
	return cmd
}
