package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tenantID := uuid.New()

	t.Run("hashes_password", func(t *testing.T) {
		user, err := NewUser(tenantID, "JSmith", "J.Smith@Example.com", "correct horse battery")
		require.NoError(t, err)

		assert.Equal(t, "jsmith", user.Username)
		assert.Equal(t, "j.smith@example.com", user.Email)
		assert.NotEqual(t, "correct horse battery", user.PasswordHash)
		assert.True(t, user.CheckPassword("correct horse battery"))
		assert.False(t, user.CheckPassword("wrong horse"))
	})

	t.Run("short_password_refused", func(t *testing.T) {
		_, err := NewUser(tenantID, "jsmith", "j@example.com", "short")
		assert.Error(t, err)
	})

	t.Run("requires_username_and_tenant", func(t *testing.T) {
		_, err := NewUser(tenantID, "  ", "j@example.com", "correct horse battery")
		assert.Error(t, err)
		_, err = NewUser(uuid.Nil, "jsmith", "j@example.com", "correct horse battery")
		assert.Error(t, err)
	})
}

func TestPasswordResetToken(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()

	token, plaintext, err := NewPasswordResetToken(tenantID, userID)
	require.NoError(t, err)

	t.Run("stores_only_the_digest", func(t *testing.T) {
		assert.NotEmpty(t, plaintext)
		assert.NotEqual(t, plaintext, token.TokenHash)
		assert.Equal(t, HashResetToken(plaintext), token.TokenHash)
		assert.Len(t, token.TokenHash, 64)
	})

	t.Run("usable_until_spent_or_expired", func(t *testing.T) {
		assert.True(t, token.IsUsable())

		used := time.Now()
		token.UsedAt = &used
		assert.False(t, token.IsUsable())

		token.UsedAt = nil
		token.ExpiresAt = time.Now().Add(-time.Minute)
		assert.False(t, token.IsUsable())
	})

	t.Run("tokens_are_unique", func(t *testing.T) {
		second, secondPlaintext, err := NewPasswordResetToken(tenantID, userID)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, secondPlaintext)
		assert.NotEqual(t, token.TokenHash, second.TokenHash)
	})
}
