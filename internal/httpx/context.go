package httpx

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	claimsKey    contextKey = "claims"
	requestIDKey contextKey = "requestID"
)

// ContextWithClaims returns a new context carrying the verified token
// payload.
func ContextWithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom retrieves the verified token payload, or nil on an
// unauthenticated request.
func ClaimsFrom(r *http.Request) jwt.MapClaims {
	if v, ok := r.Context().Value(claimsKey).(jwt.MapClaims); ok {
		return v
	}
	return nil
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
