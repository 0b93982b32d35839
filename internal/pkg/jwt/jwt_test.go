//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"suitenest/internal/domain/user"
	"suitenest/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	service := jwt.NewService("secret-a", time.Hour)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateToken(userID, "ada@example.com", user.RoleAdmin)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "ada@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "ada@example.com", claims.Subject)
	})

	t.Run("other secret is rejected", func(t *testing.T) {
		token, err := jwt.NewService("secret-b", time.Hour).GenerateToken(userID, "ada@example.com", user.RoleGuest)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwt.NewService("secret-a", -time.Minute).GenerateToken(userID, "ada@example.com", user.RoleGuest)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
