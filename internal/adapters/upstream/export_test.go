package upstream

import (
	"net/http"

	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
)

// NewClientWithHTTP exports newClientWithHTTP for testing purposes.
func NewClientWithHTTP(cfg domain.UpstreamConfig, tracer ports.Tracer, client *http.Client) (*Client, error) {
	return newClientWithHTTP(cfg, tracer, client)
}
