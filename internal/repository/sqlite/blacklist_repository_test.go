package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBlacklistRevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenBlacklistRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	revoked, err := repo.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "tok-1", time.Now().Add(time.Hour)))

	revoked, err = repo.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestBlacklistRevokeIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenBlacklistRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	expires := time.Now().Add(time.Hour)
	require.NoError(t, repo.Revoke(ctx, "tok-1", expires))
	require.NoError(t, repo.Revoke(ctx, "tok-1", expires))

	revoked, err := repo.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestBlacklistDeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenBlacklistRepository(openTestDB(t))
	require.NoError(t, repo.Init(ctx))

	now := time.Now()
	require.NoError(t, repo.Revoke(ctx, "expired", now.Add(-time.Minute)))
	require.NoError(t, repo.Revoke(ctx, "live", now.Add(time.Hour)))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	revoked, err := repo.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	require.False(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "live")
	require.NoError(t, err)
	require.True(t, revoked)
}
