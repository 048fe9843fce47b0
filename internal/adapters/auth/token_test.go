package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.eeva.app/hub/internal/adapters/auth"
	"go.eeva.app/hub/internal/core/domain"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return token
}

func TestTokenFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "cookie fallback", cookie: "from-cookie", want: "from-cookie"},
		{name: "header wins", header: "Bearer abc", cookie: "from-cookie", want: "abc"},
		{name: "basic auth ignored", header: "Basic dXNlcjpwYXNz", cookie: "from-cookie", want: "from-cookie"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/tiles", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: domain.DefaultTokenCookie, Value: tt.cookie})
			}
			assert.Equal(t, tt.want, auth.TokenFromRequest(r, domain.DefaultTokenCookie))
		})
	}
}

func TestTokenFromRequest_NoCookieName(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: domain.DefaultTokenCookie, Value: "x"})
	assert.Empty(t, auth.TokenFromRequest(r, ""))
}

func none(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func TestVerifier_Unverified(t *testing.T) {
	t.Parallel()

	v := auth.NewVerifier("")

	token := sign(t, jwt.MapClaims{"accountId": "acc-1", "sub": "user-1"})
	c, err := v.Caller(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Caller{Account: "acc-1", Token: token}, c)

	c, err = v.Caller(sign(t, jwt.MapClaims{"sub": "user-1"}))
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Account, "sub is the fallback")
	assert.False(t, c.Verified)
}

func TestVerifier_Verified(t *testing.T) {
	t.Parallel()

	v := auth.NewVerifier("any-key")

	c, err := v.Caller(sign(t, jwt.MapClaims{"accountId": "acc-1"}))
	require.NoError(t, err)
	assert.Equal(t, "acc-1", c.Account)
	assert.True(t, c.Verified)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"accountId": "acc-1"}).
		SignedString([]byte("other-key"))
	require.NoError(t, err)
	_, err = v.Caller(forged)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidToken.Error())

	_, err = v.Caller(none(t, jwt.MapClaims{"accountId": "acc-1"}))
	require.Error(t, err, "unsigned tokens are rejected when a secret is configured")
	assert.Contains(t, err.Error(), domain.ErrInvalidToken.Error())
}

func TestVerifier_Errors(t *testing.T) {
	t.Parallel()

	v := auth.NewVerifier("")

	_, err := v.Caller("")
	require.ErrorIs(t, err, domain.ErrMissingToken)

	_, err = v.Caller("not-a-jwt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidToken.Error())

	_, err = v.Caller(sign(t, jwt.MapClaims{"name": "Ada"}))
	require.ErrorIs(t, err, domain.ErrMissingAccount)

	for _, account := range []string{"../../users/x", "a/b", "..", "a%2Fb", "a b"} {
		_, err = v.Caller(none(t, jwt.MapClaims{"accountId": account}))
		require.Error(t, err, account)
		assert.Contains(t, err.Error(), domain.ErrInvalidAccount.Error(), account)
	}
}
