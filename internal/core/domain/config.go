package domain

import "time"

// Config is the resolved hub configuration.
type Config struct {
	Upstream  UpstreamConfig
	Server    ServerConfig
	Cache     CacheConfig
	Log       LogConfig
	Telemetry TelemetryConfig
	Auth      AuthConfig
	// Token is the bearer token used by CLI commands.
	Token string
	// Locale selects the language of user facing labels.
	Locale string
}

// UpstreamConfig describes the Eeva REST API the hub talks to.
type UpstreamConfig struct {
	URL          string
	BypassHeader string
	BypassSecret string
	Timeout      time.Duration
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr        string
	TokenCookie string
}

// CacheConfig configures revalidation.
type CacheConfig struct {
	// StaleAfter is the age below which a fetched entry is not revalidated on read.
	StaleAfter time.Duration
}

// LogConfig configures logging.
type LogConfig struct {
	JSON bool
}

// AuthConfig configures bearer token checks on the hub server.
type AuthConfig struct {
	// JWTSecret verifies HMAC signed tokens. When empty, signatures are not
	// checked and cached data is scoped to each token.
	JWTSecret string
}

// TelemetryConfig configures tracing export.
type TelemetryConfig struct {
	// OTLPEndpoint enables OTLP/HTTP span export when set.
	OTLPEndpoint string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Upstream: UpstreamConfig{
			BypassHeader: DefaultBypassHeader,
			Timeout:      DefaultUpstreamTimeout,
		},
		Server: ServerConfig{
			Addr:        DefaultAddr,
			TokenCookie: DefaultTokenCookie,
		},
		Cache:  CacheConfig{StaleAfter: DefaultStaleAfter},
		Locale: DefaultLocale,
	}
}
