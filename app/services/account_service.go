// Package services holds the business rules between handlers and
// stores. Services receive their stores by injection and return
// sentinel errors that controllers translate into wire responses.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/shashiranjanraj/vastra/app/jobs"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/queue"
)

var (
	ErrDuplicateEmail = errors.New("services: email already exists")
	ErrWrongEmail     = errors.New("services: wrong email")
	ErrWrongPassword  = errors.New("services: wrong password")
)

// CredentialVerifier abstracts how a stored credential is produced and
// checked, so the storage scheme can change without touching signup or
// login flow.
type CredentialVerifier interface {
	// Hash converts a plaintext password into its stored form.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the stored form.
	Verify(stored, password string) bool
}

// PlaintextVerifier stores passwords verbatim and compares them in
// constant time. It is the default scheme for compatibility with
// existing user documents; switch to bcrypt via AUTH_HASH=bcrypt.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) { return password, nil }

func (PlaintextVerifier) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// BcryptVerifier stores bcrypt digests.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	return auth.HashPassword(password)
}

func (BcryptVerifier) Verify(stored, password string) bool {
	return auth.CheckPassword(stored, password)
}

// VerifierFromConfig picks the credential scheme from AUTH_HASH.
func VerifierFromConfig() CredentialVerifier {
	if config.AuthHash() == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlaintextVerifier{}
}

// AccountService handles signup and login.
type AccountService struct {
	users    repositories.UserStore
	verifier CredentialVerifier
}

func NewAccountService(users repositories.UserStore, verifier CredentialVerifier) *AccountService {
	return &AccountService{users: users, verifier: verifier}
}

// Signup creates an account with a zeroed cart and returns a signed
// token for the new user. Duplicate emails surface as
// ErrDuplicateEmail whether caught by the pre-check or the unique
// index underneath.
func (s *AccountService) Signup(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}

	hashed, err := s.verifier.Hash(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		CartData: models.NewCart(),
		Date:     time.Now(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}

	// Welcome mail is best effort; a full queue must not fail signup.
	if err := queue.Dispatch(&jobs.WelcomeJob{UserName: name, Email: email}); err != nil {
		logger.WithCtx(ctx).Warn("welcome job not queued", "error", err)
	}

	return auth.GenerateToken(user.ID.Hex())
}

// Login verifies credentials and returns a signed token.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrWrongEmail
	}
	if err != nil {
		return "", err
	}

	if !s.verifier.Verify(user.Password, password) {
		return "", ErrWrongPassword
	}

	return auth.GenerateToken(user.ID.Hex())
}
