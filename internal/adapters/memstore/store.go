// Package memstore implements the in-memory client store.
package memstore

import (
	"sync"
	"time"

	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
)

var _ ports.Store = (*Store)(nil)

// entry is the mutable state behind one cache key.
type entry struct {
	value       any
	digest      string
	lastFetched time.Time
	inFlight    int
}

type subscriber struct {
	keys map[domain.CacheKey]struct{}
	ch   chan domain.CacheKey
}

// Store implements ports.Store with a map guarded by a RWMutex.
// It lives for the lifetime of the process and is never persisted.
type Store struct {
	mu       sync.RWMutex
	entries  map[domain.CacheKey]*entry
	subs     map[int]*subscriber
	nextSub  int
	digester ports.Digester
	now      func() time.Time
}

// NewStore creates an empty Store. Digests of set values are computed with digester.
func NewStore(digester ports.Digester) *Store {
	return &Store{
		entries:  make(map[domain.CacheKey]*entry),
		subs:     make(map[int]*subscriber),
		digester: digester,
		now:      time.Now,
	}
}

// entryLocked returns the entry of key, creating it on first access.
// The caller must hold the write lock.
func (s *Store) entryLocked(key domain.CacheKey) *entry {
	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	return e
}

// Get returns the current value of key.
func (s *Store) Get(key domain.CacheKey) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entries[key]; ok {
		return e.value
	}
	return nil
}

// Set replaces the value of key and notifies its subscribers.
// The digest is taken over the normalized value, so reordering an
// order-insensitive collection keeps it.
func (s *Store) Set(key domain.CacheKey, value any) {
	digest := ""
	if s.digester != nil {
		// A value that cannot be encoded is still stored, only without a digest.
		if d, err := s.digester.Digest(domain.NormalizeValue(key, value)); err == nil {
			digest = d
		}
	}

	s.mu.Lock()
	e := s.entryLocked(key)
	e.value = value
	e.digest = digest
	subs := s.subscribersLocked(key)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- key:
		default:
			// Receiver has not drained yet; it re-reads the current state anyway.
		}
	}
}

// SetRefreshing counts fetches in flight for key.
// The key reports IsRefreshing until every started fetch has ended.
func (s *Store) SetRefreshing(key domain.CacheKey, refreshing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(key)
	switch {
	case refreshing:
		e.inFlight++
	case e.inFlight > 0:
		e.inFlight--
	}
}

// SetLastFetched records a successful fetch of key.
func (s *Store) SetLastFetched(key domain.CacheKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entryLocked(key).lastFetched = s.now()
}

// Entry returns a snapshot of key.
func (s *Store) Entry(key domain.CacheKey) domain.CacheEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := domain.CacheEntry{Key: key}
	if e, ok := s.entries[key]; ok {
		out.Value = e.value
		out.Digest = e.digest
		out.LastFetchedAt = e.lastFetched
		out.IsRefreshing = e.inFlight > 0
	}
	return out
}

// Subscribe returns a channel that receives a key each time it is Set.
// With no keys, every key is watched.
func (s *Store) Subscribe(keys ...domain.CacheKey) (<-chan domain.CacheKey, func()) {
	if len(keys) == 0 {
		keys = domain.CacheKeys()
	}
	sub := &subscriber{
		keys: make(map[domain.CacheKey]struct{}, len(keys)),
		ch:   make(chan domain.CacheKey, len(keys)),
	}
	for _, k := range keys {
		sub.keys[k] = struct{}{}
	}

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = sub
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
	return sub.ch, cancel
}

// subscribersLocked returns the channels watching key.
func (s *Store) subscribersLocked(key domain.CacheKey) []chan domain.CacheKey {
	var out []chan domain.CacheKey
	for _, sub := range s.subs {
		if _, ok := sub.keys[key]; ok {
			out = append(out, sub.ch)
		}
	}
	return out
}
