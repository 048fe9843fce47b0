package app

import (
	"context"

	"go.eeva.app/hub/internal/adapters/labels"
	"go.eeva.app/hub/internal/adapters/linear"
	"go.eeva.app/hub/internal/core/domain"
	"go.trai.ch/zerr"
)

// RefreshOptions configures the Refresh method.
type RefreshOptions struct {
	ConfigPath string
	// Keys lists the cache keys to refresh. Empty means every key.
	Keys []string
}

// Refresh revalidates the given keys concurrently and prints one line per key.
func (a *App) Refresh(ctx context.Context, opts RefreshOptions) (err error) {
	keys := domain.CacheKeys()
	if len(opts.Keys) > 0 {
		keys = make([]domain.CacheKey, 0, len(opts.Keys))
		for _, name := range opts.Keys {
			key, err := domain.ParseCacheKey(name)
			if err != nil {
				return err
			}
			keys = append(keys, key)
		}
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

	results, err := s.cache.RefreshAll(ctx, who, keys)
	if err != nil {
		return err
	}

	r := linear.NewRenderer(a.stdout, labels.New(s.cfg.Locale))
	var failed []string
	for _, res := range results {
		r.Outcome(res.Key, res.Outcome, nil)
		if res.Outcome == domain.OutcomeFailed {
			failed = append(failed, res.Key.String())
		}
	}
	if len(failed) > 0 {
		return zerr.With(domain.ErrFetchFailed, "keys", failed)
	}
	return nil
}
