package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Context key for user identity
type contextKey string

const (
	UserIDKey      contextKey = "userID"
	UserRoleKey    contextKey = "userRole"
	TokenClaimsKey contextKey = "jwtClaims"
)

// AuthMiddleware decodes a bearer token when present. Requests without a
// valid token pass through anonymous, matching the legacy API which never
// gates routes server-side. The signing secret is injected from config so
// it reflects the .env loaded at startup, not the process environment at
// package init.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				return key, nil
			})

			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				ctx := context.WithValue(r.Context(), TokenClaimsKey, claims)
				if uid, ok := claims["user_id"].(string); ok {
					ctx = context.WithValue(ctx, UserIDKey, uid)
				}
				if role, ok := claims["role"].(string); ok {
					ctx = context.WithValue(ctx, UserRoleKey, role)
				}
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext returns the authenticated user id, if any.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserIDKey).(string)
	return uid, ok
}
