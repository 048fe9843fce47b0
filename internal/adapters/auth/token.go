// Package auth extracts the caller's bearer token and resolves who it names.
//
// Without a configured secret the account claim is read unverified and the
// caller's store is scoped to the token itself, see domain.Caller.Scope. The
// upstream API verifies every token it receives either way.
package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.eeva.app/hub/internal/core/domain"
	"go.trai.ch/zerr"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"accountId"`
}

// TokenFromRequest returns the bearer token from the Authorization header,
// falling back to the named cookie. It returns "" when neither is set.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

// Verifier resolves bearer tokens into callers.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier. When secret is empty, signatures are not
// checked and callers are scoped to their token.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Caller resolves token. The account comes from the accountId claim, or
// from sub when accountId is absent.
func (v *Verifier) Caller(token string) (domain.Caller, error) {
	if token == "" {
		return domain.Caller{}, domain.ErrMissingToken
	}

	var claims sessionClaims
	verified := len(v.secret) > 0
	if verified {
		_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
			return v.secret, nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil {
			return domain.Caller{}, zerr.Wrap(err, domain.ErrInvalidToken.Error())
		}
	} else if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return domain.Caller{}, zerr.Wrap(err, domain.ErrInvalidToken.Error())
	}

	account := claims.AccountID
	if account == "" {
		account = claims.Subject
	}
	if err := domain.ValidateAccountID(account); err != nil {
		return domain.Caller{}, err
	}
	return domain.Caller{Account: account, Token: token, Verified: verified}, nil
}
