package ports

import (
	"context"

	"go.eeva.app/hub/internal/core/domain"
)

// Upstream is a client of the Eeva REST API.
//
//go:generate mockgen -source=upstream.go -destination=mocks/mock_upstream.go -package=mocks
type Upstream interface {
	// Get fetches path with the caller's token and decodes the JSON response into out.
	Get(ctx context.Context, path, token string, out any) error
	// Forward relays a request verbatim and returns the upstream response, whatever its status.
	Forward(ctx context.Context, req domain.ForwardRequest) (*domain.ForwardResponse, error)
}
