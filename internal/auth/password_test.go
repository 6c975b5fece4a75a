package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("supersecret1")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret1", hash)

	require.NoError(t, ComparePassword(hash, "supersecret1"))
	require.Error(t, ComparePassword(hash, "wrongpassword"))
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}
