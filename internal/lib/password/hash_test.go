package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, CompareHash(hash, "secret123"))
	assert.Error(t, CompareHash(hash, "wrongpassword"))
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := GetHash("secret123")
	require.NoError(t, err)
	second, err := GetHash("secret123")
	require.NoError(t, err)

	// bcrypt salts every hash, two hashes of the same password must differ
	assert.NotEqual(t, first, second)
}

func TestCompareHash_NotAHash(t *testing.T) {
	assert.Error(t, CompareHash("not-a-bcrypt-hash", "secret123"))
}
