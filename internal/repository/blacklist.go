package repository

import (
	"context"
	"time"
)

// TokenBlacklistRepository records revoked session tokens. Tokens are
// self-contained, so this append-only set is the only server-side revocation
// mechanism; it is consulted on every authenticated request.
type TokenBlacklistRepository interface {
	Init(ctx context.Context) error
	// Revoke records the token as blacklisted. Revoking an already revoked
	// token is not an error.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// DeleteExpired drops entries whose token expiry has passed. Purely an
	// optimization; an expired token is rejected regardless.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
