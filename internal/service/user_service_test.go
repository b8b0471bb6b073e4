package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"passvault/internal/auth"
	"passvault/internal/repository"
)

func newTestUserService(t *testing.T) (UserService, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()
	return NewUserService(users, auth.NewPasswordHasher(bcrypt.MinCost)), users
}

func TestRegisterHashesAndSanitizes(t *testing.T) {
	svc, users := newTestUserService(t)

	user, err := svc.Register(context.Background(), RegisterUser{
		Username:  "alice",
		Password:  "Secr3t!!",
		FirstName: "Alice",
		Email:     "alice@example.com",
	})
	require.NoError(t, err)
	require.Empty(t, user.PasswordHash)
	require.Empty(t, user.Salt)

	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEmpty(t, stored.Salt)
	require.NotEqual(t, "Secr3t!!", stored.PasswordHash)

	ok, err := auth.NewPasswordHasher(bcrypt.MinCost).Verify("Secr3t!!", stored.Salt, stored.PasswordHash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register(context.Background(), RegisterUser{Username: "alice", Password: "Secr3t!!"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterUser{Username: "alice", Password: "An0ther!!"})
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register(context.Background(), RegisterUser{Username: "", Password: "Secr3t!!"})
	require.Error(t, err)

	_, err = svc.Register(context.Background(), RegisterUser{Username: "alice", Password: "short"})
	require.Error(t, err)
}

func TestRegisterThenLogin(t *testing.T) {
	users := newFakeUserRepo()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	userSvc := NewUserService(users, hasher)

	codec, err := auth.NewTokenCodec("test-secret", 0)
	require.NoError(t, err)
	authSvc, err := NewAuthService(users, newFakeBlacklist(), hasher, codec)
	require.NoError(t, err)

	_, err = userSvc.Register(context.Background(), RegisterUser{Username: "alice", Password: "Secr3t!!"})
	require.NoError(t, err)

	_, token, err := authSvc.Login(context.Background(), "alice", "Secr3t!!")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newTestUserService(t)

	created, err := svc.Register(context.Background(), RegisterUser{
		Username:  "alice",
		Password:  "Secr3t!!",
		FirstName: "Alice",
		LastName:  "Tester",
	})
	require.NoError(t, err)

	first := "Alicia"
	updated, err := svc.Update(context.Background(), created.ID, UpdateUser{FirstName: &first})
	require.NoError(t, err)
	require.Equal(t, "Alicia", updated.FirstName)
	require.Equal(t, "Tester", updated.LastName)
	require.Equal(t, "alice", updated.Username)
}

func TestUpdateMissingUser(t *testing.T) {
	svc, _ := newTestUserService(t)

	name := "ghost"
	_, err := svc.Update(context.Background(), 999, UpdateUser{Username: &name})
	require.ErrorIs(t, err, repository.ErrNotFound)
}
