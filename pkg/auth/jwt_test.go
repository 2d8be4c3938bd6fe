package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.Set("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken("64f1c0ffee0000000000abcd")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.User.ID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.Set("JWT_SECRET", "test-secret")

	_, err := auth.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.Set("JWT_SECRET", "secret-one")
	token, err := auth.GenerateToken("abc")
	require.NoError(t, err)

	config.Set("JWT_SECRET", "secret-two")
	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenHasNoExpiryByDefault(t *testing.T) {
	config.Set("JWT_SECRET", "test-secret")
	config.Set("JWT_TTL", "")

	token, err := auth.GenerateToken("abc")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestTokenExpiryKnob(t *testing.T) {
	config.Set("JWT_SECRET", "test-secret")
	config.Set("JWT_TTL", "1h")
	t.Cleanup(func() { config.Set("JWT_TTL", "") })

	token, err := auth.GenerateToken("abc")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := auth.WithUserID(context.Background(), "user-42")
	assert.Equal(t, "user-42", auth.UserIDFromCtx(ctx))
	assert.Empty(t, auth.UserIDFromCtx(context.Background()))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, auth.CheckPassword(hash, "hunter2"))
	assert.False(t, auth.CheckPassword(hash, "hunter3"))
}
