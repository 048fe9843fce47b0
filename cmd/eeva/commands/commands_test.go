package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.eeva.app/hub/cmd/eeva/commands"
	"go.eeva.app/hub/internal/app"
	"go.eeva.app/hub/internal/build"
	"go.eeva.app/hub/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	serve   func(ctx context.Context, opts app.ServeOptions) error
	tiles   func(ctx context.Context, opts app.TilesOptions) error
	refresh func(ctx context.Context, opts app.RefreshOptions) error
}

func (m *mockApp) Serve(ctx context.Context, opts app.ServeOptions) error {
	if m.serve != nil {
		return m.serve(ctx, opts)
	}
	return nil
}

func (m *mockApp) ListTiles(ctx context.Context, opts app.TilesOptions) error {
	if m.tiles != nil {
		return m.tiles(ctx, opts)
	}
	return nil
}

func (m *mockApp) Refresh(ctx context.Context, opts app.RefreshOptions) error {
	if m.refresh != nil {
		return m.refresh(ctx, opts)
	}
	return nil
}

type jsonLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *jsonLogger) SetJSON(enable bool) { l.json = enable }

func newCLI(t *testing.T, a commands.Application) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	cli := commands.New(a, mocks.NewMockLogger(gomock.NewController(t)))
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	return cli, buf
}

func TestCommands_Serve(t *testing.T) {
	var got app.ServeOptions
	cli, _ := newCLI(t, &mockApp{serve: func(_ context.Context, opts app.ServeOptions) error {
		got = opts
		return nil
	}})
	cli.SetArgs([]string{"serve", "--config", "hub.yaml", "--addr", ":9090"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.ServeOptions{ConfigPath: "hub.yaml", Addr: ":9090"}, got)
}

func TestCommands_Tiles(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var got app.TilesOptions
		cli, _ := newCLI(t, &mockApp{tiles: func(_ context.Context, opts app.TilesOptions) error {
			got = opts
			return nil
		}})
		cli.SetArgs([]string{"tiles", "--filter", `type == "space"`, "--output", "tui", "--locale", "es"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.TilesOptions{
			ConfigPath: "eeva.yaml",
			Filter:     `type == "space"`,
			Output:     "tui",
			Locale:     "es",
		}, got)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		cli, _ := newCLI(t, &mockApp{tiles: func(context.Context, app.TilesOptions) error {
			return errors.New("simulated error")
		}})
		cli.SetArgs([]string{"tiles"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli, _ := newCLI(t, &mockApp{tiles: func(context.Context, app.TilesOptions) error {
			panic("should not be called")
		}})
		cli.SetArgs([]string{"tiles", "kitchen"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Refresh(t *testing.T) {
	var got app.RefreshOptions
	cli, _ := newCLI(t, &mockApp{refresh: func(_ context.Context, opts app.RefreshOptions) error {
		got = opts
		return nil
	}})
	cli.SetArgs([]string{"refresh", "tiles", "notes", "-c", "other.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.RefreshOptions{ConfigPath: "other.yaml", Keys: []string{"tiles", "notes"}}, got)
}

func TestCommands_JSONLogs(t *testing.T) {
	log := &jsonLogger{MockLogger: mocks.NewMockLogger(gomock.NewController(t))}
	cli := commands.New(&mockApp{}, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	cli.SetArgs([]string{"refresh"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.False(t, log.json)

	cli.SetArgs([]string{"refresh", "--json-logs"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
}

func TestCommands_Version(t *testing.T) {
	cli, buf := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"eeva version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String(),
	)
}

func TestCommands_VersionShort(t *testing.T) {
	cli, buf := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"version", "--short"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, build.Version+"\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli, buf := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "eeva version "+build.Version)
}
