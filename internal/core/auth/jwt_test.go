package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gin-task-forms/internal/domain"
)

func newJWTer() *JWTer {
	return &JWTer{Secret: []byte("secret"), Issuer: "gin-task-forms", TTL: 2 * time.Hour}
}

func TestJWT_Roundtrip(t *testing.T) {
	j := newJWTer()
	id := domain.Identity{ID: 7, Email: "a@b.co", Role: domain.RoleUser}

	tok, err := j.Issue(id)
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, id, c.Identity())
}

func TestJWT_Expired(t *testing.T) {
	j := newJWTer()
	j.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	tok, err := j.Issue(domain.Identity{ID: 1})
	require.NoError(t, err)

	_, err = newJWTer().Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_WrongSecretOrIssuer(t *testing.T) {
	tok, err := newJWTer().Issue(domain.Identity{ID: 1})
	require.NoError(t, err)

	other := newJWTer()
	other.Secret = []byte("other")
	_, err = other.Parse(tok)
	assert.Error(t, err)

	other = newJWTer()
	other.Issuer = "someone-else"
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWT_RejectsOtherAlg(t *testing.T) {
	claims := Claims{UID: 1, RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "gin-task-forms",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = newJWTer().Parse(tok)
	assert.Error(t, err)
}

func TestJWT_EmptySecret(t *testing.T) {
	_, err := (&JWTer{}).Issue(domain.Identity{ID: 1})
	assert.Error(t, err)
}
