package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"passvault/internal/repository"
)

const createBlacklistTable = `
CREATE TABLE IF NOT EXISTS token_blacklist (
	token TEXT PRIMARY KEY,
	revoked_at DATETIME NOT NULL,
	expires_at DATETIME NOT NULL
);
`

type TokenBlacklistRepository struct {
	db *sql.DB
}

func NewTokenBlacklistRepository(db *sql.DB) repository.TokenBlacklistRepository {
	return &TokenBlacklistRepository{db: db}
}

func (r *TokenBlacklistRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBlacklistTable); err != nil {
		return fmt.Errorf("create token blacklist table: %w", err)
	}
	return nil
}

// Revoke inserts the token into the blacklist. Idempotence comes from the
// primary key plus INSERT OR IGNORE, not from application-level locking.
func (r *TokenBlacklistRepository) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO token_blacklist (token, revoked_at, expires_at)
VALUES (?, ?, ?)`,
		token,
		time.Now().UTC(),
		expiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert blacklist entry: %w", err)
	}
	return nil
}

func (r *TokenBlacklistRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM token_blacklist WHERE token = ?`,
		token,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query blacklist: %w", err)
	}
	return count > 0, nil
}

func (r *TokenBlacklistRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM token_blacklist WHERE expires_at <= ?`,
		now.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired blacklist entries: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired blacklist rows affected: %w", err)
	}
	return affected, nil
}
