package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/restomate/poscli/internal/common"
)

// signToken builds a signed JWT for tests. The signing key is irrelevant:
// Inspect never verifies signatures.
func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspect(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := signToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	claims, err := Inspect(token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, exp.Unix(), claims.ExpiresAt)
}

func TestInspect_NoExpiry(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{Subject: "7"})

	claims, err := Inspect(token)
	require.NoError(t, err)
	require.Equal(t, "7", claims.Subject)
	require.Zero(t, claims.ExpiresAt)
}

func TestInspect_Malformed(t *testing.T) {
	for _, token := range []string{
		"",
		"garbage",
		"a.b",
		"not.base64.either",
	} {
		_, err := Inspect(token)
		require.ErrorIs(t, err, common.ErrMalformedToken, "token %q", token)
	}
}

func TestExpired(t *testing.T) {
	now := time.Now().Unix()

	require.True(t, Expired(now-1, now))
	require.True(t, Expired(0, now))
	require.False(t, Expired(now+1, now))

	// Boundary: a token expiring exactly now is still honored.
	require.False(t, Expired(now, now))
}
