// Package auth mints and verifies the identity tokens carried in the
// auth-token request header.
//
// The token payload keeps the wire contract the storefront expects:
//
//	{"user":{"id":"<hex storage id>"}}
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/vastra/config"
	"golang.org/x/crypto/bcrypt"
)

// TokenUser is the embedded identity object.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims holds the typed JWT payload.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed identity token for the given user id.
// Tokens carry no expiry unless JWT_TTL is set to a duration ("24h");
// storefront sessions stay valid until the signing secret rotates.
func GenerateToken(userID string) (string, error) {
	claims := Claims{
		User: TokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl := tokenTTL(); ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func tokenTTL() time.Duration {
	d, err := time.ParseDuration(config.Get("JWT_TTL", ""))
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

// ValidateToken parses and validates a token string.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// ─── Caller identity in request context ──────────────────────────────────────

type ctxKey struct{}

// WithUserID stores the authenticated user id in ctx.
// Set by the auth guard middleware.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserIDFromCtx returns the authenticated user id, or "" when the
// request did not pass the auth guard.
func UserIDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// ─── Password hashing ────────────────────────────────────────────────────────

// HashPassword returns a bcrypt hash of the plain-text password.
// Used by the bcrypt credential verifier (AUTH_HASH=bcrypt).
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
