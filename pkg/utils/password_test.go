package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	encoded, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	require.Len(t, strings.Split(encoded, "."), 2)

	assert.NoError(t, VerifyPassword("s3cretpass", encoded))
	assert.Error(t, VerifyPassword("wrongpass", encoded))
}

func TestHashPasswordSaltsAreUnique(t *testing.T) {
	first, err := HashPassword("samepassword")
	require.NoError(t, err)
	second, err := HashPassword("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPasswordRejectsBlank(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("anything", "not-an-encoded-hash"))
	assert.Error(t, VerifyPassword("anything", "!!!.###"))
}
