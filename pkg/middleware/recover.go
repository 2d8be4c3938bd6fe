package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// Recovery catches any panic in downstream handlers, logs the stack
// trace, and returns a generic 500. Outside production the panic
// message is included in the body to ease debugging.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)

				body := map[string]any{"error": "Internal Server Error"}
				if !config.Production() {
					body["message"] = fmt.Sprintf("%v", err)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(body) //nolint:errcheck
			}
		}()
		next.ServeHTTP(w, r)
	})
}
