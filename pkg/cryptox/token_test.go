package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 64 {
		token, err := GenerateToken(SessionTokenSize)
		require.NoError(t, err)
		require.Len(t, token, 43)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, SessionTokenSize)

		_, dup := seen[token]
		require.False(t, dup, "tokens should be unique")
		seen[token] = struct{}{}
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		_, err := GenerateToken(size)
		require.Error(t, err)
	}
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	a := FingerprintToken("token-a")
	require.Len(t, a, 43)
	require.Equal(t, a, FingerprintToken("token-a"))
	require.NotEqual(t, a, FingerprintToken("token-b"))
	require.NotEqual(t, "token-a", a)
}
