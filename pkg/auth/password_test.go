package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	passwords := NewPasswords(DefaultBcryptCost)

	hash, err := passwords.Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)

	assert.True(t, passwords.Verify("secret", hash))
	assert.False(t, passwords.Verify("wrong", hash))
	assert.False(t, passwords.Verify("", hash))
}

func TestHashIsSalted(t *testing.T) {
	passwords := NewPasswords(DefaultBcryptCost)

	h1, err := passwords.Hash("secret")
	require.NoError(t, err)
	h2, err := passwords.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, passwords.Verify("secret", h1))
	assert.True(t, passwords.Verify("secret", h2))
}

func TestCostBelowMinimumFallsBack(t *testing.T) {
	passwords := NewPasswords(0)

	hash, err := passwords.Hash("secret")
	require.NoError(t, err)
	assert.True(t, passwords.Verify("secret", hash))
}
