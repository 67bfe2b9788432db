package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesSaltedHash(t *testing.T) {
	t.Parallel()

	stored, err := HashPassword("secret123")
	require.NoError(t, err)

	parts := strings.Split(stored, ":")
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])

	// Fresh salt every call
	again, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, stored, again)
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	stored, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse battery staple", stored))
	assert.False(t, VerifyPassword("wrong password", stored))
}

func TestVerifyPassword_MalformedStoredHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no separator", stored: "abcdef"},
		{name: "too many parts", stored: "a:b:c"},
		{name: "invalid base64 salt", stored: "!!!:YWJj"},
		{name: "invalid base64 key", stored: "YWJj:!!!"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, VerifyPassword("anything", tt.stored))
		})
	}
}
