package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownCacheKey is returned when a name does not match any cache key.
	ErrUnknownCacheKey = zerr.New("unknown cache key")

	// ErrUnknownTileType is returned when a tile type code is not recognised.
	ErrUnknownTileType = zerr.New("unknown tile type")

	// ErrFetchFailed is returned when a revalidation fetch fails.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrDigestFailed is returned when a collection cannot be encoded for comparison.
	ErrDigestFailed = zerr.New("failed to compute collection digest")

	// ErrUpstreamRequestFailed is returned when the upstream API cannot be reached.
	ErrUpstreamRequestFailed = zerr.New("upstream request failed")

	// ErrUpstreamStatus is returned when the upstream API answers with a non-2xx status.
	ErrUpstreamStatus = zerr.New("upstream returned an error status")

	// ErrUpstreamDecodeFailed is returned when an upstream response body is not valid JSON.
	ErrUpstreamDecodeFailed = zerr.New("failed to decode upstream response")

	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = zerr.New("missing bearer token")

	// ErrInvalidToken is returned when a bearer token cannot be parsed.
	ErrInvalidToken = zerr.New("invalid bearer token")

	// ErrMissingAccount is returned when a token names no account.
	ErrMissingAccount = zerr.New("token does not name an account")

	// ErrInvalidAccount is returned when a token names an account id that is not a single path segment.
	ErrInvalidAccount = zerr.New("token names an invalid account")

	// ErrInvalidPathID is returned when a path id would escape its route.
	ErrInvalidPathID = zerr.New("invalid id in path")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be parsed.
	ErrConfigEnvFailed = zerr.New("failed to parse environment overrides")

	// ErrConfigInvalid is returned when the loaded configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrInvalidFilter is returned when a tile filter expression does not compile.
	ErrInvalidFilter = zerr.New("invalid filter expression")

	// ErrInvalidOutputMode is returned when --output names no known mode.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrTelemetrySetupFailed is returned when the trace exporter cannot be created.
	ErrTelemetrySetupFailed = zerr.New("failed to set up telemetry")

	// ErrServerFailed is returned when the HTTP server stops unexpectedly.
	ErrServerFailed = zerr.New("http server failed")
)
