package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"passvault/internal/auth"
	"passvault/internal/domain"
	"passvault/internal/repository"
)

type fakeUserRepo struct {
	byID       map[int64]*domain.User
	byUsername map[string]*domain.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[int64]*domain.User),
		byUsername: make(map[string]*domain.User),
		nextID:     1,
	}
}

func (r *fakeUserRepo) Init(context.Context) error { return nil }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	if _, ok := r.byUsername[user.Username]; ok {
		return 0, repository.ErrDuplicate
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.byID[user.ID] = &stored
	r.byUsername[user.Username] = &stored
	return user.ID, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored := *user
	return &stored, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored := *user
	return &stored, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *user
	r.byID[user.ID] = &stored
	r.byUsername[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if user, ok := r.byID[id]; ok {
		delete(r.byUsername, user.Username)
		delete(r.byID, id)
	}
	return nil
}

type fakeBlacklist struct {
	revoked map[string]time.Time
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]time.Time)}
}

func (b *fakeBlacklist) Init(context.Context) error { return nil }

func (b *fakeBlacklist) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	if _, ok := b.revoked[token]; !ok {
		b.revoked[token] = expiresAt
	}
	return nil
}

func (b *fakeBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := b.revoked[token]
	return ok, nil
}

func (b *fakeBlacklist) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var removed int64
	for token, expiresAt := range b.revoked {
		if !expiresAt.After(now) {
			delete(b.revoked, token)
			removed++
		}
	}
	return removed, nil
}

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *fakeBlacklist, *auth.TokenCodec) {
	t.Helper()

	users := newFakeUserRepo()
	blacklist := newFakeBlacklist()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	codec, err := auth.NewTokenCodec("test-secret", time.Hour)
	require.NoError(t, err)

	svc, err := NewAuthService(users, blacklist, hasher, codec)
	require.NoError(t, err)
	return svc, users, blacklist, codec
}

func registerTestUser(t *testing.T, users repository.UserRepository, username, password string) *domain.User {
	t.Helper()

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash, err := hasher.Hash(password, salt)
	require.NoError(t, err)

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		FirstName:    "Alice",
		LastName:     "Tester",
		Email:        "alice@example.com",
		CreatedAt:    time.Now().UTC(),
	}
	_, err = users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	registerTestUser(t, users, "alice", "Secr3t!!")

	user, token, err := svc.Login(context.Background(), "alice", "Secr3t!!")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice", user.Username)
	require.Empty(t, user.PasswordHash)
	require.Empty(t, user.Salt)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	registerTestUser(t, users, "alice", "Secr3t!!")

	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	registerTestUser(t, users, "alice", "Secr3t!!")

	_, _, wrongPass := svc.Login(context.Background(), "alice", "wrong")
	_, _, unknown := svc.Login(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	require.ErrorIs(t, unknown, ErrInvalidCredentials)
	require.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestValidateIssuedToken(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	created := registerTestUser(t, users, "alice", "Secr3t!!")

	_, token, err := svc.Login(context.Background(), "alice", "Secr3t!!")
	require.NoError(t, err)

	user, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.Empty(t, user.PasswordHash)
}

func TestValidateRevokedToken(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	registerTestUser(t, users, "alice", "Secr3t!!")

	_, token, err := svc.Login(context.Background(), "alice", "Secr3t!!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	// signature and expiry are still fine, only the blacklist rejects it
	_, err = svc.Validate(context.Background(), token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutIdempotent(t *testing.T) {
	svc, users, blacklist, _ := newTestAuthService(t)
	registerTestUser(t, users, "alice", "Secr3t!!")

	_, token, err := svc.Login(context.Background(), "alice", "Secr3t!!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	require.NoError(t, svc.Logout(context.Background(), token))

	revoked, err := blacklist.IsRevoked(context.Background(), token)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestLogoutUndecodableToken(t *testing.T) {
	svc, _, blacklist, _ := newTestAuthService(t)

	require.NoError(t, svc.Logout(context.Background(), "not-a-token"))

	revoked, err := blacklist.IsRevoked(context.Background(), "not-a-token")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestValidateExpiredToken(t *testing.T) {
	svc, users, _, codec := newTestAuthService(t)
	created := registerTestUser(t, users, "alice", "Secr3t!!")

	token, err := codec.Issue(created.ID, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateDeletedUser(t *testing.T) {
	svc, users, _, _ := newTestAuthService(t)
	created := registerTestUser(t, users, "alice", "Secr3t!!")

	_, token, err := svc.Login(context.Background(), "alice", "Secr3t!!")
	require.NoError(t, err)

	require.NoError(t, users.Delete(context.Background(), created.ID))

	_, err = svc.Validate(context.Background(), token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateEmptyToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.Validate(context.Background(), "")
	require.ErrorIs(t, err, ErrUnauthorized)
}
