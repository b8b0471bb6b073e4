package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SaltLength is the width of the random per-user salt in bytes.
const SaltLength = 16

// PasswordHasher produces and verifies salted bcrypt hashes. The per-user salt
// is appended to the password before hashing and stored base64-encoded next to
// the hash; verifying a password requires exactly that salt.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// GenerateSalt returns a fresh cryptographically random salt, base64-encoded.
func (h *PasswordHasher) GenerateSalt() (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// Hash computes the bcrypt hash of password salted with the given salt.
func (h *PasswordHasher) Hash(password, salt string) (string, error) {
	salted, err := saltedBytes(password, salt)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword(salted, h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password+salt matches expectedHash. A malformed salt
// or hash is an internal error, never a silent mismatch. The underlying bcrypt
// comparison is constant-time.
func (h *PasswordHasher) Verify(password, salt, expectedHash string) (bool, error) {
	salted, err := saltedBytes(password, salt)
	if err != nil {
		return false, err
	}
	switch err := bcrypt.CompareHashAndPassword([]byte(expectedHash), salted); {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password hash: %w", err)
	}
}

func saltedBytes(password, salt string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	if len(raw) != SaltLength {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltLength, len(raw))
	}
	return append([]byte(password), raw...), nil
}
