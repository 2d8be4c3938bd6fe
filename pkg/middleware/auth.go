// Package middleware provides the HTTP middleware stack for the service.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/vastra/pkg/auth"
)

// TokenHeader is the request header carrying the identity token.
// The frontend sends the raw signed token with no Bearer prefix.
const TokenHeader = "auth-token"

// AuthGuard validates the auth-token header and attaches the embedded
// user id to the request context for downstream handlers.
//
// The 401 bodies keep the wire shape the storefront expects:
// {"errors":"Missing token"} / {"errors":"Invalid token"}.
func AuthGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			writeAuthError(w, "Missing token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil || claims.User.ID == "" {
			writeAuthError(w, "Invalid token")
			return
		}

		ctx := auth.WithUserID(r.Context(), claims.User.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"errors": msg}) //nolint:errcheck
}
