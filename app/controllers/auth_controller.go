package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/ctx"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

type AuthController struct {
	accounts *services.AccountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

// signupRequest checks presence only; the storefront sends whatever
// the user typed and the contract accepts any non-empty email.
type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup registers an account and returns a signed token.
//
// A taken email answers 400 with the plural "errors" key; that
// asymmetry with login is part of the storefront contract.
func (ac *AuthController) Signup(c *ctx.Context) {
	var req signupRequest
	if errs, err := c.ShouldBindJSON(&req); err != nil || errs != nil {
		c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Missing fields"})
		return
	}

	token, err := ac.accounts.Signup(c.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, services.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"errors":  "Email already exists",
		})
		return
	}
	if err != nil {
		logger.WithCtx(c.Context()).Error("signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	logger.WithCtx(c.Context()).Info("user signed up", "email", req.Email)
	c.JSON(http.StatusOK, map[string]any{"success": true, "token": token})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a signed token. Failures use
// the singular "error" key with fixed messages.
func (ac *AuthController) Login(c *ctx.Context) {
	var req loginRequest
	if errs, err := c.ShouldBindJSON(&req); err != nil || errs != nil {
		c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Missing fields"})
		return
	}

	token, err := ac.accounts.Login(c.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrWrongEmail):
		c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Wrong email"})
		return
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Wrong password"})
		return
	case err != nil:
		logger.WithCtx(c.Context()).Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	c.JSON(http.StatusOK, map[string]any{"success": true, "token": token})
}
