package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.eeva.app/hub/internal/adapters/digest"
	"go.eeva.app/hub/internal/adapters/memstore"
	"go.eeva.app/hub/internal/adapters/metrics"
	"go.eeva.app/hub/internal/app"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	upstream *mocks.MockUpstream
	stores   *memstore.Registry
	out      *bytes.Buffer
	cfg      *domain.Config
}

func signedToken(t *testing.T, account string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"accountId": account}).
		SignedString([]byte("test"))
	require.NoError(t, err)
	return token
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	up := mocks.NewMockUpstream(ctrl)

	hasher := digest.NewHasher()
	stores := memstore.NewRegistry(hasher)
	out := &bytes.Buffer{}

	cfg := domain.DefaultConfig()
	cfg.Upstream.URL = "https://api.example.test"
	cfg.Token = signedToken(t, "acc-1")
	cfg.Auth.JWTSecret = "test"

	a := app.New(loader, log, hasher, stores, metrics.New()).
		WithUpstream(up).
		WithStdout(out)

	return &harness{app: a, loader: loader, upstream: up, stores: stores, out: out, cfg: &cfg}
}

func (h *harness) expectConfig() {
	h.loader.EXPECT().Load("eeva.yaml").Return(h.cfg, nil)
}

func (h *harness) expectTiles(tiles ...domain.Tile) {
	h.upstream.EXPECT().
		Get(gomock.Any(), "/tiles/account/acc-1", h.cfg.Token, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, out any) error {
			*out.(*[]domain.Tile) = tiles
			return nil
		})
}

func ptr(s string) *string { return &s }

func TestApp_ListTiles(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()
	h.expectTiles(
		domain.Tile{ID: "k", Type: domain.TileSpace, Name: "Kitchen", Active: true},
		domain.Tile{ID: "f", ParentID: ptr("k"), Type: domain.TileAppliance, Name: "Fridge", Active: true},
		domain.Tile{ID: "x", Type: domain.TileSpace, Name: "Removed", Active: true, Deleted: true},
	)

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml"})
	require.NoError(t, err)

	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, "Tiles 2 items "), out)
	assert.Contains(t, out, "Kitchen (Space)\n└── Fridge (Appliance)\n")
	assert.NotContains(t, out, "Removed")
}

func TestApp_ListTiles_FilterAndLocale(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()
	h.expectTiles(
		domain.Tile{ID: "k", Type: domain.TileSpace, Name: "Kitchen", Active: true},
		domain.Tile{ID: "f", ParentID: ptr("k"), Type: domain.TileAppliance, Name: "Fridge", Active: true},
	)

	err := h.app.ListTiles(context.Background(), app.TilesOptions{
		ConfigPath: "eeva.yaml",
		Filter:     `type == "appliance"`,
		Locale:     "es",
	})
	require.NoError(t, err)

	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, "Elementos 1 elemento "), out)
	assert.Contains(t, out, "Fridge (Electrodoméstico)")
	assert.NotContains(t, out, "Kitchen")
}

func TestApp_ListTiles_PaintsSnapshotFirst(t *testing.T) {
	h := newHarness(t)
	store := h.stores.For(domain.Caller{Account: "acc-1", Verified: true}.Scope())
	store.Set(domain.KeyTiles, []domain.Tile{{ID: "k", Name: "Kitchen", Active: true}})
	store.SetLastFetched(domain.KeyTiles)

	h.expectConfig()
	h.expectTiles(domain.Tile{ID: "b", Name: "Bedroom", Active: true})

	require.NoError(t, h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml"}))

	out := h.out.String()
	assert.Equal(t, 2, strings.Count(out, "Tiles 1 item "))
	assert.Less(t, strings.Index(out, "Kitchen"), strings.Index(out, "Bedroom"))
}

func TestApp_ListTiles_FetchFailed(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()
	h.upstream.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrUpstreamRequestFailed)

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFetchFailed.Error())
	assert.Empty(t, h.out.String())
}

func TestApp_ListTiles_MissingToken(t *testing.T) {
	h := newHarness(t)
	h.cfg.Token = ""
	h.expectConfig()

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMissingToken.Error())
}

func TestApp_ListTiles_InvalidFilter(t *testing.T) {
	h := newHarness(t)

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml", Filter: "name =="})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidFilter.Error())
}

func TestApp_ListTiles_ConfigError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigReadFailed)

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_ListTiles_Live(t *testing.T) {
	h := newHarness(t)
	h.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
	h.expectConfig()
	h.upstream.EXPECT().
		Get(gomock.Any(), "/tiles/account/acc-1", h.cfg.Token, gomock.Any()).
		Return(nil).
		MaxTimes(1)

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml", Output: "tui"})
	require.NoError(t, err)
}

func TestApp_ListTiles_AutoOutputOffTerminal(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()
	h.expectTiles(domain.Tile{ID: "k", Type: domain.TileSpace, Name: "Kitchen", Active: true})

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml", Output: "auto"})
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Kitchen (Space)\n")
}

func TestApp_ListTiles_InvalidOutput(t *testing.T) {
	h := newHarness(t)

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml", Output: "fancy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidOutputMode.Error())
}

func TestApp_ListTiles_WrongSignature(t *testing.T) {
	h := newHarness(t)
	h.cfg.Auth.JWTSecret = "other"
	h.expectConfig()

	err := h.app.ListTiles(context.Background(), app.TilesOptions{ConfigPath: "eeva.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidToken.Error())
}

func TestApp_Refresh(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()
	h.expectTiles(domain.Tile{ID: "k", Name: "Kitchen", Active: true})
	h.upstream.EXPECT().
		Get(gomock.Any(), "/notes/account/acc-1", h.cfg.Token, gomock.Any()).
		Return(nil)

	err := h.app.Refresh(context.Background(), app.RefreshOptions{ConfigPath: "eeva.yaml", Keys: []string{"tiles", "notes"}})
	require.NoError(t, err)

	assert.Equal(t, "✓ tiles     committed\n● notes     unchanged\n", h.out.String())
}

func TestApp_Refresh_AllKeys(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()
	h.upstream.EXPECT().
		Get(gomock.Any(), gomock.Any(), h.cfg.Token, gomock.Any()).
		Return(nil).
		Times(len(domain.CacheKeys()))

	require.NoError(t, h.app.Refresh(context.Background(), app.RefreshOptions{ConfigPath: "eeva.yaml"}))
	assert.Equal(t, len(domain.CacheKeys()), strings.Count(h.out.String(), "unchanged"))
}

func TestApp_Refresh_Failure(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()
	h.upstream.EXPECT().
		Get(gomock.Any(), "/events/account/acc-1", gomock.Any(), gomock.Any()).
		Return(errors.New("boom"))

	err := h.app.Refresh(context.Background(), app.RefreshOptions{ConfigPath: "eeva.yaml", Keys: []string{"events"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFetchFailed.Error())
	assert.Contains(t, h.out.String(), "✗ events    failed")
}

func TestApp_Refresh_UnknownKey(t *testing.T) {
	h := newHarness(t)

	err := h.app.Refresh(context.Background(), app.RefreshOptions{ConfigPath: "eeva.yaml", Keys: []string{"garages"}})
	require.ErrorIs(t, err, domain.ErrUnknownCacheKey)
}

func TestApp_Serve(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- h.app.Serve(ctx, app.ServeOptions{ConfigPath: "eeva.yaml", Listener: ln})
	}()

	base := "http://" + ln.Addr().String()
	resp, err := http.Get(base + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), `eeva_http_requests_total{route="GET /healthz",status="200"} 1`)

	cancel()
	require.NoError(t, <-done)
}

func TestApp_Serve_ListenError(t *testing.T) {
	h := newHarness(t)
	h.expectConfig()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	err = h.app.Serve(context.Background(), app.ServeOptions{ConfigPath: "eeva.yaml", Addr: ln.Addr().String()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrServerFailed.Error())
}
