package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Verify("correct horse battery staple", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	// Same plaintext must not produce the same hash
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("password123", first))
	assert.True(t, hasher.Verify("password123", second))
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher()
	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
}
