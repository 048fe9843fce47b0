package revalidate_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.eeva.app/hub/internal/adapters/digest"
	"go.eeva.app/hub/internal/adapters/memstore"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.eeva.app/hub/internal/core/ports/mocks"
	"go.eeva.app/hub/internal/engine/revalidate"
	"go.uber.org/mock/gomock"
)

func newStore() *memstore.Store {
	return memstore.NewStore(digest.NewHasher())
}

func returning[T any](v []T) revalidate.Fetcher[T] {
	return func(context.Context) ([]T, error) { return v, nil }
}

func newTiles(store ports.Store, fetcher revalidate.Fetcher[domain.Tile], opts ...revalidate.Option) *revalidate.Coordinator[domain.Tile] {
	p := revalidate.StoreParams(store, domain.KeyTiles, fetcher)
	return revalidate.New(store, digest.NewHasher(), p, opts...)
}

func TestCoordinator_MountCommitsFirstFetch(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		store := newStore()
		store.Set(domain.KeyTiles, []domain.Tile{})
		bedroom := []domain.Tile{{ID: "1", Name: "Bedroom", Type: domain.TileSpace, Active: true}}

		c := newTiles(store, returning(bedroom))
		c.Mount(context.Background())

		assert.Equal(t, domain.OutcomeCommitted, c.Wait())
		assert.Equal(t, bedroom, revalidate.Get[domain.Tile](store, domain.KeyTiles))

		entry := store.Entry(domain.KeyTiles)
		assert.True(t, entry.LastFetchedAt.Equal(time.Now()))
		assert.False(t, entry.IsRefreshing)
	})
}

func TestCoordinator_ReversedOrderIsUnchanged(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		store := newStore()
		original := []domain.Tile{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
		store.Set(domain.KeyTiles, original)
		store.SetLastFetched(domain.KeyTiles)
		before := store.Entry(domain.KeyTiles)

		notified, cancel := store.Subscribe(domain.KeyTiles)
		defer cancel()

		time.Sleep(time.Minute)
		c := newTiles(store, returning([]domain.Tile{{ID: "2", Name: "B"}, {ID: "1", Name: "A"}}))

		assert.Equal(t, domain.OutcomeUnchanged, c.Refresh(context.Background()))
		assert.Equal(t, original, revalidate.Get[domain.Tile](store, domain.KeyTiles), "original order is kept")
		assert.Empty(t, notified, "no store write")

		after := store.Entry(domain.KeyTiles)
		assert.Equal(t, before.Digest, after.Digest)
		assert.True(t, after.LastFetchedAt.Equal(before.LastFetchedAt.Add(time.Minute)))
	})
}

func TestCoordinator_OrderSensitiveKeyCommitsReorder(t *testing.T) {
	t.Parallel()

	store := newStore()
	store.Set(domain.KeyNotes, []domain.Note{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}})
	reversed := []domain.Note{{ID: "2", Title: "B"}, {ID: "1", Title: "A"}}

	p := revalidate.StoreParams(store, domain.KeyNotes, returning(reversed))
	c := revalidate.New(store, digest.NewHasher(), p)

	assert.Equal(t, domain.OutcomeCommitted, c.Refresh(context.Background()))
	assert.Equal(t, reversed, revalidate.Get[domain.Note](store, domain.KeyNotes))
}

func TestCoordinator_NormalizeOverride(t *testing.T) {
	t.Parallel()

	store := newStore()
	store.Set(domain.KeyTiles, []domain.Tile{{ID: "1"}, {ID: "2"}})
	reversed := []domain.Tile{{ID: "2"}, {ID: "1"}}

	p := revalidate.StoreParams(store, domain.KeyTiles, returning(reversed))
	p.Normalize = func(in []domain.Tile) []domain.Tile { return in }
	c := revalidate.New(store, digest.NewHasher(), p)

	assert.Equal(t, domain.OutcomeCommitted, c.Refresh(context.Background()))
	assert.Equal(t, reversed, revalidate.Get[domain.Tile](store, domain.KeyTiles))
}

func TestCoordinator_ReplacesWholesale(t *testing.T) {
	t.Parallel()

	store := newStore()
	store.Set(domain.KeyContacts, []domain.Contact{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	fetched := []domain.Contact{{ID: "4", Name: "Plumber"}}

	p := revalidate.StoreParams(store, domain.KeyContacts, returning(fetched))
	c := revalidate.New(store, digest.NewHasher(), p)

	assert.Equal(t, domain.OutcomeCommitted, c.Refresh(context.Background()))
	assert.Equal(t, fetched, revalidate.Get[domain.Contact](store, domain.KeyContacts))
}

func TestCoordinator_EmptyMatchesUnset(t *testing.T) {
	t.Parallel()

	store := newStore()
	c := newTiles(store, returning([]domain.Tile{}))

	assert.Equal(t, domain.OutcomeUnchanged, c.Refresh(context.Background()))
	assert.Nil(t, store.Get(domain.KeyTiles))
	assert.True(t, store.Entry(domain.KeyTiles).Fetched())
}

func TestCoordinator_FailureLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), domain.ErrFetchFailed.Error())
		assert.Contains(t, err.Error(), "connection refused")
	})

	store := newStore()
	original := []domain.Tile{{ID: "1", Name: "Kitchen"}}
	store.Set(domain.KeyTiles, original)
	before := store.Entry(domain.KeyTiles)

	c := newTiles(store, func(context.Context) ([]domain.Tile, error) {
		return nil, errors.New("connection refused")
	}, revalidate.WithLogger(logger))

	assert.Equal(t, domain.OutcomeFailed, c.Refresh(context.Background()))
	assert.Equal(t, before, store.Entry(domain.KeyTiles))
	assert.False(t, store.Entry(domain.KeyTiles).IsRefreshing)
	assert.False(t, store.Entry(domain.KeyTiles).Fetched())
}

func TestCoordinator_RefreshingWhileInFlight(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		store := newStore()
		release := make(chan struct{})
		c := newTiles(store, func(context.Context) ([]domain.Tile, error) {
			<-release
			return []domain.Tile{{ID: "1"}}, nil
		})

		c.Mount(context.Background())
		synctest.Wait()
		assert.True(t, store.Entry(domain.KeyTiles).IsRefreshing)

		close(release)
		assert.Equal(t, domain.OutcomeCommitted, c.Wait())
		assert.False(t, store.Entry(domain.KeyTiles).IsRefreshing)
	})
}

func TestCoordinator_MountRunsOnce(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		store := newStore()
		c := newTiles(store, func(context.Context) ([]domain.Tile, error) {
			calls.Add(1)
			return nil, nil
		})

		assert.Equal(t, domain.Outcome(""), c.Wait(), "Wait before Mount does not block")

		c.Mount(context.Background())
		c.Mount(context.Background())
		c.Wait()
		synctest.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCoordinator_OverlappingRefreshLastWriteWins(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		store := newStore()
		first := []domain.Tile{{ID: "1", Name: "From first call"}}
		second := []domain.Tile{{ID: "1", Name: "From second call"}}

		var calls atomic.Int32
		releaseFirst := make(chan struct{})
		c := newTiles(store, func(context.Context) ([]domain.Tile, error) {
			if calls.Add(1) == 1 {
				<-releaseFirst
				return first, nil
			}
			return second, nil
		})

		firstDone := make(chan domain.Outcome, 1)
		go func() { firstDone <- c.Refresh(context.Background()) }()
		synctest.Wait()

		assert.Equal(t, domain.OutcomeCommitted, c.Refresh(context.Background()))
		assert.Equal(t, second, revalidate.Get[domain.Tile](store, domain.KeyTiles))
		assert.True(t, store.Entry(domain.KeyTiles).IsRefreshing, "first call still in flight")

		close(releaseFirst)
		assert.Equal(t, domain.OutcomeCommitted, <-firstDone)
		assert.Equal(t, first, revalidate.Get[domain.Tile](store, domain.KeyTiles))
		assert.False(t, store.Entry(domain.KeyTiles).IsRefreshing)
	})
}

func TestCoordinator_CloseDiscardsLateResult(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)

		store := newStore()
		release := make(chan struct{})
		c := newTiles(store, func(context.Context) ([]domain.Tile, error) {
			<-release
			return []domain.Tile{{ID: "late"}}, nil
		}, revalidate.WithLogger(logger))

		c.Mount(context.Background())
		synctest.Wait()
		c.Close()
		close(release)

		assert.Equal(t, domain.OutcomeDiscarded, c.Wait())
		assert.Nil(t, store.Get(domain.KeyTiles))
		assert.False(t, store.Entry(domain.KeyTiles).Fetched())
		assert.False(t, store.Entry(domain.KeyTiles).IsRefreshing)
	})
}

func TestCoordinator_CloseCancelsFetch(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)

		store := newStore()
		c := newTiles(store, func(ctx context.Context) ([]domain.Tile, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}, revalidate.WithLogger(logger))

		c.Mount(context.Background())
		synctest.Wait()
		c.Close()

		assert.Equal(t, domain.OutcomeDiscarded, c.Wait())
		assert.Equal(t, domain.OutcomeDiscarded, c.Refresh(context.Background()))
		assert.Nil(t, store.Get(domain.KeyTiles))
	})
}

func TestCoordinator_TracesAndMeasures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	tracer.EXPECT().Start(gomock.Any(), "revalidate tiles", gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	)
	span.EXPECT().SetAttribute("outcome", "committed")
	span.EXPECT().End()
	metrics.EXPECT().ObserveRevalidation(domain.KeyTiles, domain.OutcomeCommitted, gomock.Any())

	store := newStore()
	c := newTiles(store, returning([]domain.Tile{{ID: "1"}}),
		revalidate.WithTracer(tracer), revalidate.WithMetrics(metrics))

	require.Equal(t, domain.OutcomeCommitted, c.Refresh(context.Background()))
}

func TestNormalizerFor(t *testing.T) {
	t.Parallel()

	notes := revalidate.NormalizerFor[domain.Note](domain.KeyNotes)
	assert.Equal(t, []domain.Note{}, notes(nil))
	in := []domain.Note{{ID: "2"}, {ID: "1"}}
	assert.Equal(t, in, notes(in))

	tiles := revalidate.NormalizerFor[domain.Tile](domain.KeyTiles)
	assert.Equal(t, []domain.Tile{}, tiles(nil))
	assert.Equal(t, []domain.Tile{{ID: "1"}, {ID: "2"}}, tiles([]domain.Tile{{ID: "2"}, {ID: "1"}}))
}
