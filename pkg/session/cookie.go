package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// cookieClaims wraps the opaque session ID in a signed token. The cookie
// carries no identity data; everything else lives server-side.
type cookieClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

var errBadCookie = errors.New("session: invalid cookie token")

// signCookie wraps sid in an HS256 JWT signed with secret.
func signCookie(sid, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := cookieClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseCookie verifies the token signature and expiry and returns the
// embedded session ID.
func parseCookie(token, secret string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &cookieClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*cookieClaims)
	if !ok || !parsed.Valid || claims.SID == "" {
		return "", errBadCookie
	}
	return claims.SID, nil
}
