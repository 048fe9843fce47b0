// Package digest implements content digests of cached collections.
package digest

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Hasher)(nil)

// Hasher computes XXHash digests over the JSON encoding of a value.
// encoding/json writes map keys in sorted order, so equal content yields equal digests.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest returns the hex encoded XXHash of value's JSON encoding.
func (h *Hasher) Digest(value any) (string, error) {
	hasher := xxhash.New()
	if err := json.NewEncoder(hasher).Encode(value); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDigestFailed.Error()), "type", fmt.Sprintf("%T", value))
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
