package commands

import (
	"github.com/spf13/cobra"
	"go.eeva.app/hub/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the proxy and cache endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				ConfigPath: c.configPath,
				Addr:       addr,
			})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "Listen address (overrides server.addr)")
	return cmd
}
