package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// Caller is who a cache operation is performed for.
type Caller struct {
	Account string
	Token   string
	// Verified is true when the hub checked the token signature itself.
	Verified bool
}

// Scope names the store holding the caller's collections. Verified callers
// share the store of their account. Unverified callers are scoped to the
// exact token they present, so an account claim the hub could not check
// never selects data cached for somebody else.
func (c Caller) Scope() string {
	if c.Verified {
		return "account:" + c.Account
	}
	sum := sha256.Sum256([]byte(c.Token))
	return "token:" + hex.EncodeToString(sum[:])
}

// ValidateAccountID rejects ids that could leave the account segment of an
// upstream path.
func ValidateAccountID(id string) error {
	switch {
	case id == "":
		return ErrMissingAccount
	case id == "." || strings.Contains(id, ".."),
		strings.ContainsAny(id, `/\?#%`),
		strings.ContainsFunc(id, func(r rune) bool { return unicode.IsControl(r) || unicode.IsSpace(r) }):
		return zerr.With(ErrInvalidAccount, "account", id)
	}
	return nil
}
