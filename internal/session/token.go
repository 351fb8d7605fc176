package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/restomate/poscli/internal/common"
)

// Claims is the slice of the token payload the client cares about.
type Claims struct {
	Subject   string
	ExpiresAt int64 // unix seconds; 0 when the token carries no expiry
}

// Inspect decodes the token payload without verifying the signature. The
// backend is the authority on token validity; the client only extracts
// claims to drive the session lifecycle. Fails with common.ErrMalformedToken
// when the payload cannot be decoded.
func Inspect(token string) (Claims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
	}

	out := Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return out, nil
}

// Expired reports whether a token with the given expiry is past now. The
// comparison is strict: a token expiring exactly now is still honored for
// that instant.
func Expired(expiresAt, now int64) bool {
	return expiresAt < now
}
