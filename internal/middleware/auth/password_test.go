package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hashed)
	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hashed, "secret123"))
	assert.ErrorIs(t, VerifyPassword(hashed, "wrong"), bcrypt.ErrMismatchedHashAndPassword)
}
