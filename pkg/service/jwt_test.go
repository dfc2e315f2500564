package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "rental-system/pkg/errors"
)

func newTestJWTService(ttl time.Duration) JWTService {
	return NewJWTService("test-secret-key", ttl, zap.NewNop())
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(42, "alice", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "customer", claims.Role)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_RolePreserved(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(1, "boss", "owner")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Role)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken(7, "bob", "customer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_ForeignSignatureRejected(t *testing.T) {
	issuer := NewJWTService("key-one", time.Hour, zap.NewNop())
	verifier := NewJWTService("key-two", time.Hour, zap.NewNop())

	token, err := issuer.GenerateToken(7, "bob", "customer")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.ValidateToken("definitely.not.a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
