// Package config loads the hub configuration from eeva.yaml and the environment.
package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	// environ replaces the process environment when non-nil.
	environ map[string]string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path, applies environment overrides and validates
// the result. An empty path means the default file, which may be absent.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.DefaultConfigFile
	}
	optional := path == domain.DefaultConfigFile

	hub := fromDomain(domain.DefaultConfig())

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &hub); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	opts := env.Options{}
	if l.environ != nil {
		opts.Environment = l.environ
	}
	if err := env.ParseWithOptions(&hub, opts); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	cfg := hub.toDomain()
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *domain.Config) error {
	if cfg.Upstream.URL == "" {
		return zerr.With(domain.ErrConfigInvalid, "field", "upstream.url")
	}
	u, err := url.Parse(cfg.Upstream.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return zerr.With(zerr.With(domain.ErrConfigInvalid, "field", "upstream.url"), "value", cfg.Upstream.URL)
	}
	if cfg.Upstream.Timeout <= 0 {
		return zerr.With(zerr.With(domain.ErrConfigInvalid, "field", "upstream.timeout"), "value", cfg.Upstream.Timeout)
	}
	if cfg.Cache.StaleAfter < 0 {
		return zerr.With(zerr.With(domain.ErrConfigInvalid, "field", "cache.stale_after"), "value", cfg.Cache.StaleAfter)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return zerr.With(zerr.With(domain.ErrConfigInvalid, "field", "locale"), "value", cfg.Locale)
	}
	return nil
}

func fromDomain(cfg domain.Config) Hubfile {
	return Hubfile{
		Upstream: UpstreamDTO{
			URL:          cfg.Upstream.URL,
			BypassHeader: cfg.Upstream.BypassHeader,
			BypassSecret: cfg.Upstream.BypassSecret,
			Timeout:      cfg.Upstream.Timeout,
		},
		Server: ServerDTO{
			Addr:        cfg.Server.Addr,
			TokenCookie: cfg.Server.TokenCookie,
		},
		Cache:     CacheDTO{StaleAfter: cfg.Cache.StaleAfter},
		Log:       LogDTO{JSON: cfg.Log.JSON},
		Telemetry: TelemetryDTO{OTLPEndpoint: cfg.Telemetry.OTLPEndpoint},
		Auth:      AuthDTO{JWTSecret: cfg.Auth.JWTSecret},
		Token:     cfg.Token,
		Locale:    cfg.Locale,
	}
}

func (h *Hubfile) toDomain() domain.Config {
	return domain.Config{
		Upstream: domain.UpstreamConfig{
			URL:          h.Upstream.URL,
			BypassHeader: h.Upstream.BypassHeader,
			BypassSecret: h.Upstream.BypassSecret,
			Timeout:      h.Upstream.Timeout,
		},
		Server: domain.ServerConfig{
			Addr:        h.Server.Addr,
			TokenCookie: h.Server.TokenCookie,
		},
		Cache:     domain.CacheConfig{StaleAfter: h.Cache.StaleAfter},
		Log:       domain.LogConfig{JSON: h.Log.JSON},
		Telemetry: domain.TelemetryConfig{OTLPEndpoint: h.Telemetry.OTLPEndpoint},
		Auth:      domain.AuthConfig{JWTSecret: h.Auth.JWTSecret},
		Token:     h.Token,
		Locale:    h.Locale,
	}
}
