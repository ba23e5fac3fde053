// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// serviceKey is the context key for storing the authenticated service name.
const serviceKey ContextKey = "service"

// TokenValidator is an interface for validating bearer tokens.
// This allows the middleware to work with any token service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (ServiceGetter, error)
}

// ServiceGetter is an interface for extracting the calling service name
// from token claims.
type ServiceGetter interface {
	GetService() string
}

// AuthMiddleware creates middleware that validates bearer tokens and adds
// the calling service name to the request context.
func AuthMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" is matched case-insensitively.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), serviceKey, claims.GetService())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetService extracts the authenticated service name from the request context.
func GetService(r *http.Request) (string, error) {
	service, ok := r.Context().Value(serviceKey).(string)
	if !ok || service == "" {
		return "", fmt.Errorf("service not found in request context")
	}
	return service, nil
}

// ServiceKey returns the context key for the service name (for testing purposes).
func ServiceKey() ContextKey {
	return serviceKey
}
