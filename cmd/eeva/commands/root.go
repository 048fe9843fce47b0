// Package commands implements the CLI commands of the eeva hub.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.eeva.app/hub/internal/app"
	"go.eeva.app/hub/internal/build"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
)

// CLI represents the command line interface for eeva.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Serve(ctx context.Context, opts app.ServeOptions) error
	ListTiles(ctx context.Context, opts app.TilesOptions) error
	Refresh(ctx context.Context, opts app.RefreshOptions) error
}

// New creates a new CLI instance with the given app. When logger supports
// SetJSON, --json-logs switches it to JSON output.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "eeva",
		Short:         "Stale-while-revalidate cache hub for the Eeva home API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Summary(),
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if !c.jsonLogs {
			return
		}
		if j, ok := c.logger.(interface{ SetJSON(bool) }); ok {
			j.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newTilesCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
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
