package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_Deterministic(t *testing.T) {
	// Один и тот же пароль всегда дает один и тот же дайджест
	assert.Equal(t, HashPassword("password123"), HashPassword("password123"))
	assert.NotEqual(t, HashPassword("password123"), HashPassword("password124"))
}

func TestHashPassword_Format(t *testing.T) {
	digest := HashPassword("admin123")
	assert.Len(t, digest, 64, "SHA-256 в hex — всегда 64 символа")
	assert.Regexp(t, "^[0-9a-f]{64}$", digest)
}
