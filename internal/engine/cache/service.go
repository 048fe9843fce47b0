// Package cache serves per-account cache snapshots and schedules their
// revalidation against the upstream API.
package cache

import (
	"context"
	"sync"
	"time"

	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.eeva.app/hub/internal/engine/revalidate"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of revalidating one key.
type Result struct {
	Key     domain.CacheKey
	Outcome domain.Outcome
}

// Service ties the per-account stores to coordinators fetching from the upstream API.
type Service struct {
	stores     ports.StoreRegistry
	upstream   ports.Upstream
	digester   ports.Digester
	staleAfter time.Duration
	opts       []revalidate.Option

	mu     sync.Mutex
	active map[revalidate.Runner]struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewService creates a Service. Entries fetched less than staleAfter ago are
// not revalidated in the background.
func NewService(
	stores ports.StoreRegistry,
	upstream ports.Upstream,
	digester ports.Digester,
	staleAfter time.Duration,
	opts ...revalidate.Option,
) *Service {
	return &Service{
		stores:     stores,
		upstream:   upstream,
		digester:   digester,
		staleAfter: staleAfter,
		opts:       opts,
		active:     make(map[revalidate.Runner]struct{}),
	}
}

// Store returns the store of c.
func (s *Service) Store(c domain.Caller) ports.Store {
	return s.stores.For(c.Scope())
}

// Snapshot returns the entry of key without touching the upstream API.
func (s *Service) Snapshot(c domain.Caller, key domain.CacheKey) domain.CacheEntry {
	return s.Store(c).Entry(key)
}

// Revalidate mounts a background coordinator for key and reports whether it
// did. Entries that are fresh or already being refreshed are left alone. The
// run outlives ctx but is cancelled by Shutdown.
func (s *Service) Revalidate(ctx context.Context, c domain.Caller, key domain.CacheKey) (bool, error) {
	entry := s.Store(c).Entry(key)
	if entry.IsRefreshing || entry.FreshFor(time.Now(), s.staleAfter) {
		return false, nil
	}

	runner, err := s.runner(c, key)
	if err != nil {
		return false, err
	}
	if !s.track(runner) {
		return false, nil
	}

	runner.Mount(context.WithoutCancel(ctx))
	go func() {
		defer s.wg.Done()
		runner.Wait()
		s.untrack(runner)
		runner.Close()
	}()
	return true, nil
}

// Load mounts a coordinator for key and waits for its run to finish.
func (s *Service) Load(ctx context.Context, c domain.Caller, key domain.CacheKey) (domain.Outcome, error) {
	runner, err := s.runner(c, key)
	if err != nil {
		return "", err
	}
	defer runner.Close()

	runner.Mount(ctx)
	return runner.Wait(), nil
}

// Refresh revalidates key synchronously, regardless of its age.
func (s *Service) Refresh(ctx context.Context, c domain.Caller, key domain.CacheKey) (domain.Outcome, error) {
	runner, err := s.runner(c, key)
	if err != nil {
		return "", err
	}
	defer runner.Close()

	return runner.Refresh(ctx), nil
}

// RefreshAll refreshes keys concurrently. Results follow the order of keys.
func (s *Service) RefreshAll(ctx context.Context, c domain.Caller, keys []domain.CacheKey) ([]Result, error) {
	results := make([]Result, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			outcome, err := s.Refresh(gctx, c, key)
			if err != nil {
				return err
			}
			results[i] = Result{Key: key, Outcome: outcome}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Shutdown closes every background coordinator and waits for their runs to
// end, or for ctx to expire. Later Revalidate calls do nothing.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	runners := make([]revalidate.Runner, 0, len(s.active))
	for r := range s.active {
		runners = append(runners, r)
	}
	s.mu.Unlock()

	for _, r := range runners {
		r.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Active returns the number of background runs in flight.
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

func (s *Service) runner(c domain.Caller, key domain.CacheKey) (revalidate.Runner, error) {
	if err := domain.ValidateAccountID(c.Account); err != nil {
		return nil, err
	}
	load := func(ctx context.Context, key domain.CacheKey, out any) error {
		return s.upstream.Get(ctx, key.ListPath(c.Account), c.Token, out)
	}
	return revalidate.ForKey(key, s.Store(c), s.digester, load, s.opts...)
}

// track registers r and adds it to the wait group unless the service is shut down.
func (s *Service) track(r revalidate.Runner) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.active[r] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Service) untrack(r revalidate.Runner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, r)
}
