package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/Alexandru2223/postpilot/internal/ratelimit"
)

type contextKey string

const tokenKey contextKey = "bearer_token"

// Token returns the bearer token the auth middleware extracted.
func Token(r *http.Request) string {
	token, _ := r.Context().Value(tokenKey).(string)
	return token
}

// RequireAuth rejects requests without a bearer token. The body matches the
// original surface exactly.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		ctx := context.WithValue(r.Context(), tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit throttles callers per bearer token.
func RateLimit(limiter ratelimit.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(Token(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
