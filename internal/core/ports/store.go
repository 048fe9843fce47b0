package ports

import "go.eeva.app/hub/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// FetchState records fetch metadata for cache keys.
type FetchState interface {
	// SetRefreshing marks the start (true) or end (false) of a fetch for key.
	SetRefreshing(key domain.CacheKey, refreshing bool)
	// SetLastFetched records a successful fetch for key at the current time.
	SetLastFetched(key domain.CacheKey)
}

// Store holds the last known value of every cache key.
// All operations are synchronous and never fail.
type Store interface {
	FetchState

	// Get returns the current value of key, or nil when nothing was set.
	Get(key domain.CacheKey) any
	// Set replaces the value of key wholesale and notifies subscribers.
	Set(key domain.CacheKey, value any)
	// Entry returns a snapshot of the value and fetch metadata of key.
	Entry(key domain.CacheKey) domain.CacheEntry
	// Subscribe returns a channel receiving the keys changed by Set.
	// Notifications are coalesced; the returned func stops the subscription.
	Subscribe(keys ...domain.CacheKey) (<-chan domain.CacheKey, func())
}

// StoreRegistry hands out one Store per account.
type StoreRegistry interface {
	// For returns the store of accountID, creating it on first use.
	For(accountID string) Store
}
