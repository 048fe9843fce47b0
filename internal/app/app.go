// Package app implements the application layer of the hub.
package app

import (
	"context"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.eeva.app/hub/internal/adapters/auth"
	"go.eeva.app/hub/internal/adapters/telemetry"
	"go.eeva.app/hub/internal/adapters/upstream"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.eeva.app/hub/internal/engine/cache"
	"go.eeva.app/hub/internal/engine/revalidate"
	"go.trai.ch/zerr"
)

// Metrics records measurements and exposes them over HTTP.
type Metrics interface {
	ports.Metrics
	Handler() http.Handler
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	digester     ports.Digester
	stores       ports.StoreRegistry
	metrics      Metrics
	upstream     ports.Upstream
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	digester ports.Digester,
	stores ports.StoreRegistry,
	metrics Metrics,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		digester:     digester,
		stores:       stores,
		metrics:      metrics,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options used by the live view.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithUpstream replaces the REST client built from the configuration.
func (a *App) WithUpstream(u ports.Upstream) *App {
	a.upstream = u
	return a
}

// WithStdout redirects rendered output.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// session is everything a command needs once the configuration is loaded.
type session struct {
	cfg      *domain.Config
	upstream ports.Upstream
	cache    *cache.Service
	shutdown func(context.Context) error
}

func (a *App) open(ctx context.Context, configPath string) (*session, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if cfg.Log.JSON {
		if j, ok := a.logger.(interface{ SetJSON(bool) }); ok {
			j.SetJSON(true)
		}
	}

	tracer, shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	up := a.upstream
	if up == nil {
		client, err := upstream.NewClient(cfg.Upstream, tracer)
		if err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
		up = client
	}

	svc := cache.NewService(a.stores, up, a.digester, cfg.Cache.StaleAfter,
		revalidate.WithLogger(a.logger),
		revalidate.WithTracer(tracer),
		revalidate.WithMetrics(a.metrics),
	)

	return &session{cfg: cfg, upstream: up, cache: svc, shutdown: shutdown}, nil
}

func (s *session) close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), domain.ShutdownTimeout)
	defer cancel()

	cerr := s.cache.Shutdown(ctx)
	if err := s.shutdown(ctx); err != nil {
		return err
	}
	return cerr
}

func (s *session) verifier() *auth.Verifier {
	return auth.NewVerifier(s.cfg.Auth.JWTSecret)
}

// caller resolves the account of the configured CLI token.
func (s *session) caller() (domain.Caller, error) {
	c, err := s.verifier().Caller(s.cfg.Token)
	if err != nil {
		return domain.Caller{}, zerr.Wrap(err, "set EEVA_TOKEN or token in the configuration file")
	}
	return c, nil
}
