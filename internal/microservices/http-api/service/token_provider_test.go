package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTProvider_RoundTrip(t *testing.T) {
	provider := NewJWTProvider(testSecret, time.Hour)

	token, err := provider.Sign("user-1", "ADMIN")
	require.NoError(t, err)

	claims, err := provider.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTProvider_Expired(t *testing.T) {
	provider := &jwtProvider{
		secret: []byte(testSecret),
		expiry: time.Minute,
		now:    func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}
	token, err := provider.Sign("user-1", "USER")
	require.NoError(t, err)

	_, err = NewJWTProvider(testSecret, time.Minute).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTProvider_WrongSecret(t *testing.T) {
	token, err := NewJWTProvider(testSecret, time.Hour).Sign("user-1", "USER")
	require.NoError(t, err)

	_, err = NewJWTProvider(testSecret+"other", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTProvider_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{UserID: "user-1", Role: "ADMIN"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTProvider(testSecret, time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
