package commands

import (
	"github.com/spf13/cobra"
	"go.eeva.app/hub/internal/app"
)

func (c *CLI) newTilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Print the tile tree of the configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			output, _ := cmd.Flags().GetString("output")
			locale, _ := cmd.Flags().GetString("locale")

			return c.app.ListTiles(cmd.Context(), app.TilesOptions{
				ConfigPath: c.configPath,
				Filter:     filter,
				Output:     output,
				Locale:     locale,
			})
		},
	}
	cmd.Flags().StringP("filter", "f", "", `Only list tiles matching an expression, e.g. 'type == "appliance"'`)
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui or linear")
	cmd.Flags().String("locale", "", "Language of the labels (en, es)")
	return cmd
}
