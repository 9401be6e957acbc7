package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckKey(t *testing.T) {
	key, err := GenerateToken()
	require.NoError(t, err)
	assert.Len(t, key, 43)

	hash, err := HashKey(key)
	require.NoError(t, err)
	assert.NotEqual(t, key, hash)

	assert.NoError(t, CheckKey(key, hash))
	assert.Error(t, CheckKey(key+"x", hash))
	assert.Error(t, CheckKey(key, "not-a-hash"))
}

func TestGenerateTokenIsRandom(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
