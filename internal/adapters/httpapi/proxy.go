package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.eeva.app/hub/internal/engine/revalidate"
)

const maxRequestBytes = 1 << 20

// collection is a proxied upstream collection. Writable collections apply
// successful writes to the caller's store optimistically.
type collection struct {
	key    domain.CacheKey
	upsert func(store ports.Store, body []byte) bool
	remove func(store ports.Store, id string)
}

func (c collection) writable() bool { return c.upsert != nil }

func readOnly(key domain.CacheKey) collection {
	return collection{key: key}
}

func writable[T domain.Record](key domain.CacheKey) collection {
	return collection{
		key: key,
		upsert: func(store ports.Store, body []byte) bool {
			var rec T
			if err := json.Unmarshal(body, &rec); err != nil || rec.RecordID() == "" {
				return false
			}
			revalidate.Upsert(store, key, rec)
			return true
		},
		remove: func(store ports.Store, id string) {
			revalidate.Remove[T](store, key, id)
		},
	}
}

var collections = []collection{
	writable[domain.Tile](domain.KeyTiles),
	writable[domain.Contact](domain.KeyContacts),
	writable[domain.Provider](domain.KeyProviders),
	readOnly(domain.KeyNotes),
	readOnly(domain.KeyTasks),
	readOnly(domain.KeyEvents),
}

func (s *Server) handleList(c collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		who := callerFrom(r.Context())
		s.forward(w, r, c.key.ListPath(who.Account))
	}
}

func (s *Server) handleCreate(c collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, ok := s.forward(w, r, "/"+c.key.String())
		if ok && resp.OK() {
			c.upsert(s.cache.Store(callerFrom(r.Context())), resp.Body)
		}
	}
}

func (s *Server) handleUpdate(c collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, valid := pathID(w, r)
		if !valid {
			return
		}
		resp, ok := s.forward(w, r, "/"+c.key.String()+"/"+id)
		if ok && resp.OK() {
			c.upsert(s.cache.Store(callerFrom(r.Context())), resp.Body)
		}
	}
}

func (s *Server) handleDelete(c collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, valid := pathID(w, r)
		if !valid {
			return
		}
		resp, ok := s.forward(w, r, "/"+c.key.String()+"/"+id)
		if ok && resp.OK() {
			c.remove(s.cache.Store(callerFrom(r.Context())), id)
		}
	}
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	if id, valid := pathID(w, r); valid {
		s.forward(w, r, "/users/"+id)
	}
}

// pathID returns the {id} wildcard, rejecting values that would change the
// upstream path once joined.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, "/?#") {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidPathID)
		return "", false
	}
	return id, true
}

// forward relays r to path upstream and copies the answer to w verbatim.
// It reports false when no upstream answer was obtained.
func (s *Server) forward(w http.ResponseWriter, r *http.Request, path string) (*domain.ForwardResponse, bool) {
	var body []byte
	if r.Body != nil && r.Method != http.MethodGet && r.Method != http.MethodDelete {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		if err != nil {
			status := http.StatusBadRequest
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			writeError(w, status, err)
			return nil, false
		}
		body = data
	}

	resp, err := s.upstream.Forward(r.Context(), domain.ForwardRequest{
		Method:      r.Method,
		Path:        path,
		RawQuery:    r.URL.RawQuery,
		Token:       callerFrom(r.Context()).Token,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	if err != nil {
		s.logger.Error(err)
		writeError(w, http.StatusBadGateway, err)
		return nil, false
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
	return resp, true
}
