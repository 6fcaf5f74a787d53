package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS enables CORS for the configured origins. Without origins the
// middleware is a no-op.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	if len(h.corsAllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.New(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	}).Handler
}
