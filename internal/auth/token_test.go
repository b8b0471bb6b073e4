package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueDecodeRoundTrip(t *testing.T) {
	codec, err := NewTokenCodec("test-secret", DefaultTokenTTL)
	require.NoError(t, err)

	now := time.Now()
	token, err := codec.Issue(42, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, expiresAt, err := codec.Decode(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
	require.WithinDuration(t, now.Add(DefaultTokenTTL), expiresAt, time.Second)
}

func TestDecodeExpiredToken(t *testing.T) {
	codec, err := NewTokenCodec("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := codec.Issue(42, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, _, err = codec.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeWrongSecret(t *testing.T) {
	issuer, err := NewTokenCodec("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenCodec("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(42, time.Now())
	require.NoError(t, err)

	_, _, err = verifier.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeGarbage(t *testing.T) {
	codec, err := NewTokenCodec("test-secret", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, _, err := codec.Decode(token)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestNewTokenCodecRequiresSecret(t *testing.T) {
	_, err := NewTokenCodec("", time.Hour)
	require.Error(t, err)
}

func TestDefaultTTL(t *testing.T) {
	codec, err := NewTokenCodec("test-secret", 0)
	require.NoError(t, err)
	require.Equal(t, DefaultTokenTTL, codec.TTL())
}
