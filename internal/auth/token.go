package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the token lifetime fixed at issuance.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Decode for any token that cannot be trusted:
// bad signature, malformed payload, or past expiry.
var ErrInvalidToken = errors.New("invalid token")

// TokenCodec signs and verifies session tokens carrying a user id and expiry.
// The signing secret is process-wide configuration injected once at startup;
// rotating it invalidates all outstanding tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the fixed token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a signed token for userID expiring at now + TTL.
func (c *TokenCodec) Issue(userID int64, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token's signature and expiry and returns the embedded
// user id and expiry time. It fails closed: every validation failure maps to
// ErrInvalidToken.
func (c *TokenCodec) Decode(token string) (int64, time.Time, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return 0, time.Time{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, time.Time{}, ErrInvalidToken
	}
	return userID, claims.ExpiresAt.Time, nil
}
