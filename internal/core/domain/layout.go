package domain

import "time"

const (
	// DefaultConfigFile is the configuration file read when --config is not given.
	DefaultConfigFile = "eeva.yaml"

	// DefaultAddr is the listen address of the hub server.
	DefaultAddr = ":8080"

	// DefaultTokenCookie is the cookie carrying the caller's bearer token.
	DefaultTokenCookie = "eeva_token"

	// DefaultBypassHeader is the header carrying the upstream protection bypass secret.
	DefaultBypassHeader = "x-vercel-protection-bypass"

	// DefaultUpstreamTimeout bounds a single upstream request.
	DefaultUpstreamTimeout = 30 * time.Second

	// DefaultStaleAfter is how long a fetched entry is served without revalidation.
	DefaultStaleAfter = 30 * time.Second

	// DefaultLocale is the locale used for labels when none is configured.
	DefaultLocale = "en"

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout = 10 * time.Second
)
