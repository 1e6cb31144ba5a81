package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/rental-commerce/application/auth"
	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/muhammadheryan/rental-commerce/utils/errors"
)

// AuthMiddleware returns a middleware that validates admin JWT sessions using
// AuthApp. Storefront reads and quote endpoints stay public; stock mutations
// require a token.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via AuthApp
			userID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRequest defines which endpoints are public (no auth required).
// Internal paths carry their own service-key middleware.
func isPublicRequest(r *http.Request) bool {
	path := r.URL.Path
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if strings.HasPrefix(path, "/v1/rentals/") {
		return true
	}
	if strings.HasSuffix(path, "/rental-quote") {
		return true
	}
	if r.Method == http.MethodGet {
		return true
	}

	return false
}
