package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour, Issuer: "test"}

	token, err := m.NewAccessToken("user-123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "test", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := &Manager{Secret: []byte("secret-a"), AccessTTL: time.Hour}
	verifier := &Manager{Secret: []byte("secret-b"), AccessTTL: time.Hour}

	token, err := issuer.NewAccessToken("user-123", "admin")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), AccessTTL: -time.Minute}

	token, err := m.NewAccessToken("user-123", "admin")
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour}

	_, err := m.Parse("not-a-token")
	require.Error(t, err)
}
