package httpapi

import (
	"net/http"
	"strings"
	"time"

	"go.eeva.app/hub/internal/core/domain"
)

type cacheView struct {
	Key           domain.CacheKey `json:"key"`
	Value         any             `json:"value"`
	LastFetchedAt *time.Time      `json:"lastFetchedAt"`
	IsRefreshing  bool            `json:"isRefreshing"`
	Digest        string          `json:"digest,omitempty"`
	Revalidating  bool            `json:"revalidating"`
}

type refreshView struct {
	Key     domain.CacheKey `json:"key"`
	Outcome domain.Outcome  `json:"outcome"`
	Digest  string          `json:"digest,omitempty"`
}

// handleCacheGet paints the stored entry immediately and schedules a
// background revalidation when the entry is stale.
func (s *Server) handleCacheGet(w http.ResponseWriter, r *http.Request) {
	key, err := domain.ParseCacheKey(r.PathValue("key"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	who := callerFrom(r.Context())

	entry := s.cache.Snapshot(who, key)
	started, err := s.cache.Revalidate(r.Context(), who, key)
	if err != nil {
		s.logger.Error(err)
	}

	if entry.Digest != "" {
		etag := `"` + entry.Digest + `"`
		w.Header().Set("ETag", etag)
		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	view := cacheView{
		Key:          key,
		Value:        entry.Value,
		IsRefreshing: entry.IsRefreshing,
		Digest:       entry.Digest,
		Revalidating: started,
	}
	if view.Value == nil {
		view.Value = []any{}
	}
	if entry.Fetched() {
		at := entry.LastFetchedAt.UTC()
		view.LastFetchedAt = &at
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCacheRefresh(w http.ResponseWriter, r *http.Request) {
	key, err := domain.ParseCacheKey(r.PathValue("key"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	who := callerFrom(r.Context())

	outcome, err := s.cache.Refresh(r.Context(), who, key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, refreshView{
		Key:     key,
		Outcome: outcome,
		Digest:  s.cache.Snapshot(who, key).Digest,
	})
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(header, etag string) bool {
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
