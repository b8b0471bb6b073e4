package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"passvault/internal/auth"
	"passvault/internal/domain"
	"passvault/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown usernames and wrong passwords both map here so the response cannot
	// be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized covers every token validation failure: missing, malformed,
	// expired, revoked, or pointing at a deleted user.
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthService orchestrates login, logout and per-request token validation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	Validate(ctx context.Context, token string) (*domain.User, error)
}

type authService struct {
	users     repository.UserRepository
	blacklist repository.TokenBlacklistRepository
	hasher    *auth.PasswordHasher
	codec     *auth.TokenCodec

	// decoy credentials verified when the username does not exist, so a miss
	// costs the same bcrypt work as a hit
	decoySalt string
	decoyHash string
}

func NewAuthService(
	users repository.UserRepository,
	blacklist repository.TokenBlacklistRepository,
	hasher *auth.PasswordHasher,
	codec *auth.TokenCodec,
) (AuthService, error) {
	decoySalt, err := hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate decoy salt: %w", err)
	}
	decoyHash, err := hasher.Hash("decoy-password", decoySalt)
	if err != nil {
		return nil, fmt.Errorf("hash decoy password: %w", err)
	}

	return &authService{
		users:     users,
		blacklist: blacklist,
		hasher:    hasher,
		codec:     codec,
		decoySalt: decoySalt,
		decoyHash: decoyHash,
	}, nil
}

// Login verifies credentials with a single user lookup and a single hashing
// pass, then issues a signed session token. The returned user is sanitized.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// burn the same hashing cost as a real verification
			_, _ = s.hasher.Verify(password, s.decoySalt, s.decoyHash)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	ok, err := s.hasher.Verify(password, user.Salt, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return sanitizeUser(user), token, nil
}

// Logout records the token in the blacklist. It succeeds for tokens that are
// already revoked, expired or undecodable; revocation is idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	expiresAt := time.Now().Add(s.codec.TTL())
	if _, exp, err := s.codec.Decode(token); err == nil {
		expiresAt = exp
	}

	if err := s.blacklist.Revoke(ctx, token, expiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// Validate checks signature and expiry, consults the blacklist and resolves the
// embedded user id. Every failure mode collapses into ErrUnauthorized.
func (s *authService) Validate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	userID, _, err := s.codec.Decode(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	revoked, err := s.blacklist.IsRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("check blacklist: %w", err)
	}
	if revoked {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}
