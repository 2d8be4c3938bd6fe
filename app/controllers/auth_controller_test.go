package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/pkg/auth"
)

func TestSignupIssuesUsableToken(t *testing.T) {
	env := newTestEnv(t)

	token := env.signup(t, "kashvi", "kashvi@example.com", "secret123")

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.User.ID)

	user, err := env.users.FindByID(context.Background(), claims.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "kashvi@example.com", user.Email)
}

func TestSignupSeedsZeroedCart(t *testing.T) {
	env := newTestEnv(t)

	token := env.signup(t, "kashvi", "kashvi@example.com", "secret123")
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	user, err := env.users.FindByID(context.Background(), claims.User.ID)
	require.NoError(t, err)
	require.Len(t, user.CartData, 300)
	for key, qty := range user.CartData {
		assert.Zero(t, qty, "slot %s", key)
	}
}

func TestSignupAcceptsAnyNonEmptyEmail(t *testing.T) {
	env := newTestEnv(t)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	code := env.post(t, "/signup", map[string]string{
		"username": "a", "email": "admin@localhost", "password": "p",
	}, "", &resp)

	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)

	user, err := env.users.FindByEmail(context.Background(), "admin@localhost")
	require.NoError(t, err)
	assert.Equal(t, "a", user.Name)
}

func TestSignupRequiresAllFields(t *testing.T) {
	env := newTestEnv(t)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	code := env.post(t, "/signup", map[string]string{"email": "k@example.com"}, "", &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing fields", resp.Error)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "first", "dup@example.com", "pw1")

	var resp struct {
		Success bool   `json:"success"`
		Errors  string `json:"errors"`
	}
	code := env.post(t, "/signup", map[string]string{
		"username": "second", "email": "dup@example.com", "password": "pw2",
	}, "", &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Email already exists", resp.Errors)
}

func TestLoginReturnsToken(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "kashvi", "kashvi@example.com", "secret123")

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	code := env.post(t, "/login", map[string]string{
		"email": "kashvi@example.com", "password": "secret123",
	}, "", &resp)

	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongEmail(t *testing.T) {
	env := newTestEnv(t)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	code := env.post(t, "/login", map[string]string{
		"email": "ghost@example.com", "password": "whatever",
	}, "", &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Wrong email", resp.Error)
}

func TestLoginWrongPasswordIssuesNoToken(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "kashvi", "kashvi@example.com", "secret123")

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Token   string `json:"token"`
	}
	code := env.post(t, "/login", map[string]string{
		"email": "kashvi@example.com", "password": "wrong",
	}, "", &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Wrong password", resp.Error)
	assert.Empty(t, resp.Token)
}
