package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", first)
	assert.NotEqual(t, first, second, "hashes must be salted")

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	ok, err := ComparePassword(hash, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ComparePassword("not-a-bcrypt-hash", "secret")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestPassword_LongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("p", 80)

	hash, err := HashPassword(long)
	require.NoError(t, err)

	ok, err := ComparePassword(hash, long)
	require.NoError(t, err)
	assert.True(t, ok)

	// only the first 72 bytes count
	ok, err = ComparePassword(hash, strings.Repeat("p", 72)+"different")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePassword(hash, strings.Repeat("p", 71))
	require.NoError(t, err)
	assert.False(t, ok)
}
