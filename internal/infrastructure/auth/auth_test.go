package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/synerjet/bendesk/internal/shared/authorization"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3nha")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha", hash)

	assert.NoError(t, h.Verify("s3nha", hash))
	assert.Error(t, h.Verify("errada", hash))
	assert.Error(t, h.Verify("s3nha", "plaintext"))

	assert.False(t, h.NeedsRehash(hash))
	assert.True(t, NewBcryptPasswordHasher(bcrypt.MinCost+1).NeedsRehash(hash))
	assert.True(t, h.NeedsRehash("plaintext"))
}

func TestNewBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptPasswordHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, exp, err := svc.Generate(7, "maria", authorization.RoleSupport)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, authorization.RoleSupport, claims.Role)
	assert.False(t, svc.ShouldRefresh(claims))
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewJWTService("other", time.Hour).Generate(1, "a", authorization.RoleUser)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := NewJWTService("secret", -time.Minute).Generate(1, "a", authorization.RoleUser)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTService_ShouldRefresh(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute))}}
	assert.True(t, svc.ShouldRefresh(claims))
	assert.False(t, svc.ShouldRefresh(nil))
}
