// Package domain contains the core domain types of the eeva hub.
package domain

import (
	"net/url"
	"strings"
	"time"
)

// CacheKey names one cached collection.
type CacheKey string

const (
	// KeyTiles caches the account's appliances, spaces and utilities.
	KeyTiles CacheKey = "tiles"
	// KeyContacts caches the account's contacts.
	KeyContacts CacheKey = "contacts"
	// KeyProviders caches the account's service providers.
	KeyProviders CacheKey = "providers"
	// KeyNotes caches the account's notes.
	KeyNotes CacheKey = "notes"
	// KeyTasks caches the account's tasks.
	KeyTasks CacheKey = "tasks"
	// KeyEvents caches the account's calendar events.
	KeyEvents CacheKey = "events"
)

// CacheKeys returns every known cache key in a stable order.
func CacheKeys() []CacheKey {
	return []CacheKey{KeyTiles, KeyContacts, KeyProviders, KeyNotes, KeyTasks, KeyEvents}
}

// ParseCacheKey resolves a user supplied name to a known cache key.
func ParseCacheKey(name string) (CacheKey, error) {
	key := CacheKey(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range CacheKeys() {
		if key == known {
			return key, nil
		}
	}
	return "", ErrUnknownCacheKey
}

// String returns the key name.
func (k CacheKey) String() string {
	return string(k)
}

// OrderInsensitive reports whether element order carries no meaning for the key.
// Collections of such keys are sorted before being compared.
func (k CacheKey) OrderInsensitive() bool {
	switch k {
	case KeyTiles, KeyContacts, KeyProviders:
		return true
	default:
		return false
	}
}

// ListPath returns the upstream path listing the key's collection for an account.
func (k CacheKey) ListPath(accountID string) string {
	return "/" + string(k) + "/account/" + url.PathEscape(accountID)
}

// CacheEntry is a snapshot of one cached collection and its fetch metadata.
type CacheEntry struct {
	Key CacheKey `json:"key"`
	// Value is the last known collection, typically a slice of records.
	Value any `json:"value"`
	// LastFetchedAt is zero until the first successful fetch.
	LastFetchedAt time.Time `json:"lastFetchedAt,omitzero"`
	// IsRefreshing is true while at least one fetch for the key is in flight.
	IsRefreshing bool `json:"isRefreshing"`
	// Digest is the content digest of the normalized value.
	Digest string `json:"digest,omitzero"`
}

// Fetched reports whether the entry was ever successfully fetched.
func (e CacheEntry) Fetched() bool {
	return !e.LastFetchedAt.IsZero()
}

// FreshFor reports whether the entry was fetched within maxAge of now.
func (e CacheEntry) FreshFor(now time.Time, maxAge time.Duration) bool {
	if !e.Fetched() || maxAge <= 0 {
		return false
	}
	return now.Sub(e.LastFetchedAt) < maxAge
}

// Outcome is the result of one revalidation run.
type Outcome string

const (
	// OutcomeCommitted means the fetched value differed and was written.
	OutcomeCommitted Outcome = "committed"
	// OutcomeUnchanged means the fetched value matched the latest value and nothing was written.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeFailed means the fetch failed and the store was left untouched.
	OutcomeFailed Outcome = "failed"
	// OutcomeDiscarded means the result arrived after the consumer unmounted.
	OutcomeDiscarded Outcome = "discarded"
)
