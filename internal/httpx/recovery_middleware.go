package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoveryMiddleware turns a handler panic into a 500 instead of
// killing the connection.
func RecoveryMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("request_id", RequestIDFrom(r)).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					if !rw.headerWritten {
						writeError(rw, http.StatusInternalServerError, "Internal Server Error")
					}
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
