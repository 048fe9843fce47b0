package app

import (
	"context"
	"os"

	"go.eeva.app/hub/internal/adapters/detector"
	"go.eeva.app/hub/internal/adapters/filter"
	"go.eeva.app/hub/internal/adapters/labels"
	"go.eeva.app/hub/internal/adapters/linear"
	"go.eeva.app/hub/internal/adapters/tui"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.eeva.app/hub/internal/engine/cache"
	"go.trai.ch/zerr"
)

// TilesOptions configures the ListTiles method.
type TilesOptions struct {
	ConfigPath string
	// Filter is an expression every listed tile must satisfy.
	Filter string
	// Output is auto, tui or linear. Auto opens the live view only when
	// stdout is a terminal outside CI.
	Output string
	// Locale overrides the configured label language.
	Locale string
}

// ListTiles prints the tile tree of the configured account.
//
// The current snapshot is painted first when one exists, then a revalidation
// runs and the result is rendered.
func (a *App) ListTiles(ctx context.Context, opts TilesOptions) (err error) {
	requested, err := detector.ParseMode(opts.Output)
	if err != nil {
		return err
	}
	f, err := filter.Compile(opts.Filter)
	if err != nil {
		return err
	}

	s, err := a.open(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(ctx); err == nil {
			err = cerr
		}
	}()

	who, err := s.caller()
	if err != nil {
		return err
	}

	locale := s.cfg.Locale
	if opts.Locale != "" {
		locale = opts.Locale
	}
	l := labels.New(locale)

	if detector.Resolve(detector.Detect(a.stdout, os.Getenv), requested) == detector.ModeTUI {
		return a.liveTiles(ctx, s.cache, who, f, l)
	}

	r := linear.NewRenderer(a.stdout, l)
	store := s.cache.Store(who)

	if entry := store.Entry(domain.KeyTiles); entry.Fetched() {
		if err := renderTiles(r, entry, f); err != nil {
			return err
		}
	}

	outcome, err := s.cache.Load(ctx, who, domain.KeyTiles)
	if err != nil {
		return err
	}
	if outcome == domain.OutcomeFailed {
		return zerr.With(domain.ErrFetchFailed, "key", domain.KeyTiles.String())
	}

	return renderTiles(r, store.Entry(domain.KeyTiles), f)
}

func renderTiles(r *linear.Renderer, entry domain.CacheEntry, f *filter.Filter) error {
	tiles, _ := entry.Value.([]domain.Tile)
	tiles, err := f.Apply(domain.VisibleTiles(tiles))
	if err != nil {
		return err
	}
	r.Header(entry, len(tiles))
	r.Tiles(tiles)
	return nil
}

func (a *App) liveTiles(
	ctx context.Context,
	svc *cache.Service,
	who domain.Caller,
	f *filter.Filter,
	l *labels.Labels,
) error {
	if _, err := svc.Revalidate(ctx, who, domain.KeyTiles); err != nil {
		return err
	}

	src := &tileSource{ctx: ctx, cache: svc, store: svc.Store(who), caller: who}
	return tui.Run(ctx, tui.NewModel(src, f, l), nil, a.stdout, a.teaOptions...)
}

// tileSource adapts one account's tiles entry to the live view.
type tileSource struct {
	ctx    context.Context //nolint:containedctx // bound for the lifetime of the view
	cache  *cache.Service
	store  ports.Store
	caller domain.Caller
}

func (t *tileSource) Snapshot() domain.CacheEntry {
	return t.store.Entry(domain.KeyTiles)
}

func (t *tileSource) Changes() (<-chan domain.CacheKey, func()) {
	return t.store.Subscribe(domain.KeyTiles)
}

func (t *tileSource) Refresh() (domain.Outcome, error) {
	return t.cache.Refresh(t.ctx, t.caller, domain.KeyTiles)
}
