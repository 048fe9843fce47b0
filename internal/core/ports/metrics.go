package ports

import (
	"time"

	"go.eeva.app/hub/internal/core/domain"
)

// Metrics records operational measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveRevalidation records the outcome and duration of one revalidation run.
	ObserveRevalidation(key domain.CacheKey, outcome domain.Outcome, elapsed time.Duration)
	// ObserveRequest records a served HTTP request.
	ObserveRequest(route string, status int)
}
