package revalidate

import (
	"context"
	"slices"

	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
)

// Get returns the collection stored under key, or nil when the store holds
// nothing or a value of another type.
func Get[T any](s ports.Store, key domain.CacheKey) []T {
	v, _ := s.Get(key).([]T)
	return v
}

// Set stores a collection under key.
func Set[T any](s ports.Store, key domain.CacheKey, value []T) {
	s.Set(key, value)
}

// Upsert replaces the record with rec's id in the collection under key, or
// appends rec when absent. The collection is replaced wholesale.
func Upsert[T domain.Record](s ports.Store, key domain.CacheKey, rec T) {
	current := Get[T](s, key)
	next := make([]T, 0, len(current)+1)
	replaced := false
	for _, r := range current {
		if r.RecordID() == rec.RecordID() {
			next = append(next, rec)
			replaced = true
			continue
		}
		next = append(next, r)
	}
	if !replaced {
		next = append(next, rec)
	}
	s.Set(key, next)
}

// Remove drops the record with id from the collection under key.
// The store is left untouched when no record matches.
func Remove[T domain.Record](s ports.Store, key domain.CacheKey, id string) {
	current := Get[T](s, key)
	idx := slices.IndexFunc(current, func(r T) bool { return r.RecordID() == id })
	if idx < 0 {
		return
	}
	next := slices.Delete(slices.Clone(current), idx, idx+1)
	s.Set(key, next)
}

// StoreParams returns Params reading from and writing to s.
func StoreParams[T domain.Record](s ports.Store, key domain.CacheKey, fetcher Fetcher[T]) Params[T] {
	return Params[T]{
		Key:       key,
		Current:   Get[T](s, key),
		GetLatest: func() []T { return Get[T](s, key) },
		Set:       func(v []T) { Set(s, key, v) },
		Fetcher:   fetcher,
	}
}

// Loader decodes the upstream collection of a key into out.
type Loader func(ctx context.Context, key domain.CacheKey, out any) error

// ForKey builds a Coordinator for key backed by s, loading collections with load.
func ForKey(
	key domain.CacheKey,
	s ports.Store,
	digester ports.Digester,
	load Loader,
	opts ...Option,
) (Runner, error) {
	switch key {
	case domain.KeyTiles:
		return forStore[domain.Tile](key, s, digester, load, opts), nil
	case domain.KeyContacts:
		return forStore[domain.Contact](key, s, digester, load, opts), nil
	case domain.KeyProviders:
		return forStore[domain.Provider](key, s, digester, load, opts), nil
	case domain.KeyNotes:
		return forStore[domain.Note](key, s, digester, load, opts), nil
	case domain.KeyTasks:
		return forStore[domain.Task](key, s, digester, load, opts), nil
	case domain.KeyEvents:
		return forStore[domain.Event](key, s, digester, load, opts), nil
	default:
		return nil, domain.ErrUnknownCacheKey
	}
}

func forStore[T domain.Record](
	key domain.CacheKey,
	s ports.Store,
	digester ports.Digester,
	load Loader,
	opts []Option,
) *Coordinator[T] {
	var fetch Fetcher[T] = func(ctx context.Context) ([]T, error) {
		var out []T
		if err := load(ctx, key, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	return New[T](s, digester, StoreParams[T](s, key, fetch), opts...)
}
