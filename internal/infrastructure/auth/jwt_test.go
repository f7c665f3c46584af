package auth

import (
	"testing"
	"time"

	"github.com/storeops/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-that-is-long-enough",
		Issuer:          "storeops-test",
		TokenExpiration: expiration,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := newTestService(time.Hour)
	userID := uuid.New()

	token, expiresAt, err := service.GenerateToken(GenerateTokenInput{
		UserID:      userID,
		Username:    "sara",
		Permissions: []string{"accounting.read", "roles.manage"},
	})
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "sara", claims.Username)
	assert.Contains(t, claims.Permissions, "accounting.read")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)

	token, _, err := service.GenerateToken(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "sara",
	})
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := newTestService(time.Hour)
	other := NewJWTService(config.JWTConfig{
		Secret:          "a-completely-different-secret-key",
		Issuer:          "storeops-test",
		TokenExpiration: time.Hour,
	})

	token, _, err := service.GenerateToken(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "sara",
	})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := newTestService(time.Hour)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
