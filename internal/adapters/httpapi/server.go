// Package httpapi serves the hub's HTTP surface: proxied upstream routes,
// the cache endpoints and operational endpoints.
package httpapi

import (
	"context"
	"net/http"

	"go.eeva.app/hub/internal/adapters/auth"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
)

// Cache is the per-account cache the handlers read and revalidate.
type Cache interface {
	Store(c domain.Caller) ports.Store
	Snapshot(c domain.Caller, key domain.CacheKey) domain.CacheEntry
	Revalidate(ctx context.Context, c domain.Caller, key domain.CacheKey) (bool, error)
	Refresh(ctx context.Context, c domain.Caller, key domain.CacheKey) (domain.Outcome, error)
}

// Server routes hub requests. It implements http.Handler.
type Server struct {
	cache          Cache
	upstream       ports.Upstream
	tokenCookie    string
	verifier       *auth.Verifier
	logger         ports.Logger
	metrics        ports.Metrics
	metricsHandler http.Handler
	mux            *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger logs upstream failures to l.
func WithLogger(l ports.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithVerifier resolves bearer tokens with v. Without it, signatures are not
// checked and every caller gets a store scoped to its token.
func WithVerifier(v *auth.Verifier) Option {
	return func(s *Server) {
		s.verifier = v
	}
}

// WithMetrics records every request in m and serves h on /metrics.
func WithMetrics(m ports.Metrics, h http.Handler) Option {
	return func(s *Server) {
		s.metrics = m
		s.metricsHandler = h
	}
}

// New creates a Server. tokenCookie names the cookie read when no
// Authorization header is present.
func New(cache Cache, upstream ports.Upstream, tokenCookie string, opts ...Option) *Server {
	s := &Server{
		cache:       cache,
		upstream:    upstream,
		tokenCookie: tokenCookie,
		verifier:    auth.NewVerifier(""),
		logger:      discardLogger{},
		mux:         http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metricsHandler != nil {
		s.mux.Handle("GET /metrics", s.metricsHandler)
	}

	s.mux.Handle("GET /api/cache/{key}", s.authed(s.handleCacheGet))
	s.mux.Handle("POST /api/cache/{key}/refresh", s.authed(s.handleCacheRefresh))

	for _, c := range collections {
		base := "/api/" + c.key.String()
		s.mux.Handle("GET "+base, s.authed(s.handleList(c)))
		if c.writable() {
			s.mux.Handle("POST "+base, s.authed(s.handleCreate(c)))
			s.mux.Handle("PUT "+base+"/{id}", s.authed(s.handleUpdate(c)))
			s.mux.Handle("DELETE "+base+"/{id}", s.authed(s.handleDelete(c)))
		}
	}

	s.mux.Handle("GET /api/users/{id}", s.authed(s.handleUser))
	s.mux.Handle("PUT /api/users/{id}", s.authed(s.handleUser))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.metrics == nil {
		s.mux.ServeHTTP(w, r)
		return
	}
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	route := r.Pattern
	if route == "" {
		route = "unmatched"
	}
	s.metrics.ObserveRequest(route, rec.status)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type discardLogger struct{}

func (discardLogger) Info(string)  {}
func (discardLogger) Warn(string)  {}
func (discardLogger) Error(error) {}
