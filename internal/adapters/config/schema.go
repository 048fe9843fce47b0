package config

import "time"

// Hubfile is the on-disk shape of eeva.yaml. Every field can be overridden
// by the environment variable named in its env tag.
type Hubfile struct {
	Upstream  UpstreamDTO  `yaml:"upstream"`
	Server    ServerDTO    `yaml:"server"`
	Cache     CacheDTO     `yaml:"cache"`
	Log       LogDTO       `yaml:"log"`
	Telemetry TelemetryDTO `yaml:"telemetry"`
	Auth      AuthDTO      `yaml:"auth"`
	Token     string       `yaml:"token"  env:"EEVA_TOKEN"`
	Locale    string       `yaml:"locale" env:"EEVA_LOCALE"`
}

// UpstreamDTO is the upstream section.
type UpstreamDTO struct {
	URL          string        `yaml:"url"           env:"EEVA_UPSTREAM_URL"`
	BypassHeader string        `yaml:"bypass_header" env:"EEVA_UPSTREAM_BYPASS_HEADER"`
	BypassSecret string        `yaml:"bypass_secret" env:"EEVA_UPSTREAM_BYPASS_SECRET"`
	Timeout      time.Duration `yaml:"timeout"       env:"EEVA_UPSTREAM_TIMEOUT"`
}

// ServerDTO is the server section.
type ServerDTO struct {
	Addr        string `yaml:"addr"         env:"EEVA_ADDR"`
	TokenCookie string `yaml:"token_cookie" env:"EEVA_TOKEN_COOKIE"`
}

// CacheDTO is the cache section.
type CacheDTO struct {
	StaleAfter time.Duration `yaml:"stale_after" env:"EEVA_STALE_AFTER"`
}

// LogDTO is the log section.
type LogDTO struct {
	JSON bool `yaml:"json" env:"EEVA_LOG_JSON"`
}

// AuthDTO is the auth section.
type AuthDTO struct {
	JWTSecret string `yaml:"jwt_secret" env:"EEVA_JWT_SECRET"`
}

// TelemetryDTO is the telemetry section.
type TelemetryDTO struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"EEVA_OTLP_ENDPOINT"`
}
