package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/config"
)

func newAccounts(v services.CredentialVerifier) (*services.AccountService, *repositories.MemoryUserStore) {
	config.Set("JWT_SECRET", "test-secret")
	users := repositories.NewMemoryUserStore()
	return services.NewAccountService(users, v), users
}

func TestSignupThenLogin(t *testing.T) {
	accounts, _ := newAccounts(services.PlaintextVerifier{})

	token, err := accounts.Signup(context.Background(), "kashvi", "k@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	token, err = accounts.Login(context.Background(), "k@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	accounts, _ := newAccounts(services.PlaintextVerifier{})

	_, err := accounts.Signup(context.Background(), "a", "k@example.com", "pw")
	require.NoError(t, err)

	_, err = accounts.Signup(context.Background(), "b", "k@example.com", "pw")
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func TestLoginFailures(t *testing.T) {
	accounts, _ := newAccounts(services.PlaintextVerifier{})
	_, err := accounts.Signup(context.Background(), "kashvi", "k@example.com", "pw")
	require.NoError(t, err)

	_, err = accounts.Login(context.Background(), "ghost@example.com", "pw")
	assert.ErrorIs(t, err, services.ErrWrongEmail)

	_, err = accounts.Login(context.Background(), "k@example.com", "nope")
	assert.ErrorIs(t, err, services.ErrWrongPassword)
}

func TestPlaintextVerifierStoresVerbatim(t *testing.T) {
	accounts, users := newAccounts(services.PlaintextVerifier{})

	_, err := accounts.Signup(context.Background(), "kashvi", "k@example.com", "pw")
	require.NoError(t, err)

	u, err := users.FindByEmail(context.Background(), "k@example.com")
	require.NoError(t, err)
	assert.Equal(t, "pw", u.Password)
}

func TestBcryptVerifierHashes(t *testing.T) {
	accounts, users := newAccounts(services.BcryptVerifier{})

	_, err := accounts.Signup(context.Background(), "kashvi", "k@example.com", "pw")
	require.NoError(t, err)

	u, err := users.FindByEmail(context.Background(), "k@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", u.Password)

	_, err = accounts.Login(context.Background(), "k@example.com", "pw")
	assert.NoError(t, err)
}
