package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/httpx"
)

// Recoverer converts any unhandled panic into an opaque 500 response.
// The underlying cause is logged server-side only.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Panic while handling request",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
