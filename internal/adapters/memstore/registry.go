package memstore

import (
	"sync"

	"go.eeva.app/hub/internal/core/ports"
)

var _ ports.StoreRegistry = (*Registry)(nil)

// Registry keeps one Store per account.
type Registry struct {
	mu       sync.RWMutex
	stores   map[string]*Store
	digester ports.Digester
}

// NewRegistry creates an empty Registry.
func NewRegistry(digester ports.Digester) *Registry {
	return &Registry{
		stores:   make(map[string]*Store),
		digester: digester,
	}
}

// For returns the store of accountID, creating it on first use.
func (r *Registry) For(accountID string) ports.Store {
	r.mu.RLock()
	s, ok := r.stores[accountID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[accountID]; ok {
		return s
	}
	s = NewStore(r.digester)
	r.stores[accountID] = s
	return s
}

// Len returns the number of accounts holding a store.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}
