package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.eeva.app/hub/internal/adapters/httpapi"
	"go.eeva.app/hub/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

// ServeOptions configures the Serve method.
type ServeOptions struct {
	ConfigPath string
	// Addr overrides the configured listen address.
	Addr string
	// Listener is used instead of listening on the address when set.
	Listener net.Listener
}

// Serve runs the hub HTTP server until ctx is cancelled, then shuts it down
// gracefully together with every background revalidation.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	s, err := a.open(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	handler := httpapi.New(s.cache, s.upstream, s.cfg.Server.TokenCookie,
		httpapi.WithLogger(a.logger),
		httpapi.WithVerifier(s.verifier()),
		httpapi.WithMetrics(a.metrics, a.metrics.Handler()),
	)
	if s.cfg.Auth.JWTSecret == "" {
		a.logger.Warn("auth.jwt_secret is not set: token signatures are not checked and cached data is scoped to each token")
	}

	ln := opts.Listener
	if ln == nil {
		addr := s.cfg.Server.Addr
		if opts.Addr != "" {
			addr = opts.Addr
		}
		var lc net.ListenConfig
		if ln, err = lc.Listen(ctx, "tcp", addr); err != nil {
			_ = s.close(ctx)
			return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", addr)
		}
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("serving on " + ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), domain.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if cerr := s.close(ctx); err == nil {
			err = cerr
		}
		return err
	})

	return g.Wait()
}
