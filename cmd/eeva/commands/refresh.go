package commands

import (
	"github.com/spf13/cobra"
	"go.eeva.app/hub/internal/app"
)

func (c *CLI) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [keys...]",
		Short: "Revalidate cache keys against the upstream API",
		Long:  "Revalidate the given cache keys (tiles, contacts, providers, notes, tasks, events), or all of them.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Refresh(cmd.Context(), app.RefreshOptions{
				ConfigPath: c.configPath,
				Keys:       args,
			})
		},
	}
}
