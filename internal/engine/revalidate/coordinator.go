// Package revalidate reconciles cached collections with the upstream API.
//
// A Coordinator paints nothing itself: consumers read the store for an
// instant snapshot, mount the coordinator once, and let it fetch, compare
// and conditionally commit in the background.
package revalidate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher returns the full replacement collection for a key.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Params describes what a Coordinator reconciles.
type Params[T domain.Record] struct {
	Key domain.CacheKey
	// Current is the snapshot the caller rendered. It is informational only.
	Current []T
	// GetLatest returns the freshest store value; it is called at commit time.
	GetLatest func() []T
	// Set writes a fetched collection to the store.
	Set func([]T)
	// Fetcher loads the authoritative collection.
	Fetcher Fetcher[T]
	// Normalize overrides the comparison order for this coordinator.
	// When nil, order-insensitive keys are sorted by id then display name.
	Normalize func([]T) []T
}

// Runner is the type independent surface of a Coordinator.
type Runner interface {
	Mount(ctx context.Context)
	Wait() domain.Outcome
	Refresh(ctx context.Context) domain.Outcome
	Close()
}

var _ Runner = (*Coordinator[domain.Tile])(nil)

// Coordinator runs fetch-compare-commit for one cache key.
type Coordinator[T domain.Record] struct {
	params   Params[T]
	state    ports.FetchState
	digester ports.Digester
	opts     options

	mountOnce    sync.Once
	mounted      atomic.Bool
	done         chan struct{}
	mountOutcome domain.Outcome

	life   context.Context
	cancel context.CancelFunc

	// commitMu serializes commits so the last completed fetch wins.
	commitMu sync.Mutex
	closed   bool
}

// New creates a Coordinator. It does nothing until Mount or Refresh is called.
func New[T domain.Record](
	state ports.FetchState,
	digester ports.Digester,
	p Params[T],
	opts ...Option,
) *Coordinator[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if p.Normalize == nil {
		p.Normalize = NormalizerFor[T](p.Key)
	}

	life, cancel := context.WithCancel(context.Background())
	return &Coordinator[T]{
		params:   p,
		state:    state,
		digester: digester,
		opts:     o,
		done:     make(chan struct{}),
		life:     life,
		cancel:   cancel,
	}
}

// Mount starts the background revalidation. Only the first call has an effect.
func (c *Coordinator[T]) Mount(ctx context.Context) {
	c.mountOnce.Do(func() {
		c.mounted.Store(true)
		go func() {
			defer close(c.done)
			c.mountOutcome = c.run(ctx, "mount")
		}()
	})
}

// Wait blocks until the mount run finished and returns its outcome.
// It returns immediately with an empty outcome when Mount was never called.
func (c *Coordinator[T]) Wait() domain.Outcome {
	if !c.mounted.Load() {
		return ""
	}
	<-c.done
	return c.mountOutcome
}

// Refresh runs fetch-compare-commit synchronously.
// Overlapping calls are not deduplicated.
func (c *Coordinator[T]) Refresh(ctx context.Context) domain.Outcome {
	return c.run(ctx, "refresh")
}

// Close unmounts the coordinator. In-flight fetches are cancelled and
// results arriving afterwards are discarded.
func (c *Coordinator[T]) Close() {
	c.commitMu.Lock()
	c.closed = true
	c.commitMu.Unlock()
	c.cancel()
}

func (c *Coordinator[T]) isClosed() bool {
	c.commitMu.Lock()
	defer c.commitMu.Unlock()
	return c.closed
}

func (c *Coordinator[T]) run(ctx context.Context, trigger string) domain.Outcome {
	key := c.params.Key
	start := time.Now()

	ctx, span := c.opts.tracer.Start(ctx, "revalidate "+key.String(),
		ports.WithAttribute("cache.key", key.String()),
		ports.WithAttribute("trigger", trigger),
	)
	defer span.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.life, cancel)
	defer stop()

	c.state.SetRefreshing(key, true)
	defer c.state.SetRefreshing(key, false)

	outcome := c.fetchAndCommit(ctx, span)

	span.SetAttribute("outcome", string(outcome))
	c.opts.metrics.ObserveRevalidation(key, outcome, time.Since(start))
	return outcome
}

func (c *Coordinator[T]) fetchAndCommit(ctx context.Context, span ports.Span) domain.Outcome {
	key := c.params.Key

	fetched, err := c.params.Fetcher(ctx)
	if err != nil {
		if c.isClosed() {
			return domain.OutcomeDiscarded
		}
		err = zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "key", key.String())
		span.RecordError(err)
		c.opts.logger.Error(err)
		return domain.OutcomeFailed
	}

	c.commitMu.Lock()
	defer c.commitMu.Unlock()

	if c.closed {
		return domain.OutcomeDiscarded
	}

	outcome := domain.OutcomeUnchanged
	if !c.equal(c.params.GetLatest(), fetched) {
		c.params.Set(fetched)
		outcome = domain.OutcomeCommitted
	}
	c.state.SetLastFetched(key)
	return outcome
}

// equal compares two collections after normalization.
// A collection that cannot be digested is treated as changed.
func (c *Coordinator[T]) equal(latest, fetched []T) bool {
	a, err := c.digester.Digest(c.params.Normalize(latest))
	if err != nil {
		c.opts.logger.Warn("cannot digest cached " + c.params.Key.String() + ": " + err.Error())
		return false
	}
	b, err := c.digester.Digest(c.params.Normalize(fetched))
	if err != nil {
		c.opts.logger.Warn("cannot digest fetched " + c.params.Key.String() + ": " + err.Error())
		return false
	}
	return a == b
}

// NormalizerFor returns the comparison normalization of key.
// It matches the normalization the store digests values with.
func NormalizerFor[T domain.Record](key domain.CacheKey) func([]T) []T {
	return func(in []T) []T { return domain.Normalize(key, in) }
}
