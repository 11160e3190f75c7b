package httpx

import (
	"net/http"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/auth"
)

// AuthMiddleware verifies the session cookie. A missing, tampered, or
// expired token stops the request here; the downstream handler never
// runs. The decoded payload rides along on the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			claims, err := auth.ParseToken(secret, cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Unauthorized Access")
}
