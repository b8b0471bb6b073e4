package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"passvault/internal/domain"
	"passvault/internal/repository"
)

func newTestUserRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	repo := NewUserRepository(openTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func testUser(username string) *domain.User {
	return &domain.User{
		Username:     username,
		PasswordHash: "$2a$04$fakehashfakehashfakehash",
		Salt:         "c2FsdHNhbHRzYWx0c2FsdA==",
		FirstName:    "Alice",
		LastName:     "Tester",
		Email:        username + "@example.com",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	user := testUser("alice")
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.Positive(t, id)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, user.PasswordHash, byName.PasswordHash)
	require.Equal(t, user.Salt, byName.Salt)
	require.Equal(t, "alice@example.com", byName.Email)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
}

func TestUserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	_, err := repo.Create(ctx, testUser("alice"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testUser("alice"))
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserUpdateToTakenUsername(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	_, err := repo.Create(ctx, testUser("alice"))
	require.NoError(t, err)
	bob := testUser("bob")
	_, err = repo.Create(ctx, bob)
	require.NoError(t, err)

	bob.Username = "alice"
	require.ErrorIs(t, repo.Update(ctx, bob), repository.ErrDuplicate)
}

func TestUserNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	_, err := repo.GetByUsername(ctx, "ghost")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	user := testUser("alice")
	_, err := repo.Create(ctx, user)
	require.NoError(t, err)

	user.FirstName = "Alicia"
	user.Email = "alicia@example.com"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Alicia", got.FirstName)
	require.Equal(t, "alicia@example.com", got.Email)

	missing := testUser("ghost")
	missing.ID = 999
	require.ErrorIs(t, repo.Update(ctx, missing), repository.ErrNotFound)
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	user := testUser("alice")
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetByID(ctx, id)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
