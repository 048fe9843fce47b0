package config

// NewLoaderWithEnv creates a Loader that reads environ instead of the process environment.
func NewLoaderWithEnv(environ map[string]string) *Loader {
	return &Loader{environ: environ}
}
