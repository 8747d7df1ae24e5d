package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/models"
	"github.com/currencygw/gw-currency-converter/internal/services"
)

// apiKeyHeader carries the caller's credential on every protected request.
const apiKeyHeader = "X-API-Key"

// APIKeyResolver defines the minimal interface needed by the middleware.
type APIKeyResolver interface {
	ResolveAPIKey(ctx context.Context, apiKey string) (*models.User, error)
}

// authErrorResponse is the JSON body written on a rejected credential.
type authErrorResponse struct {
	Error string `json:"error"`
}

// APIKeyAuthMiddleware returns a middleware that resolves the X-API-Key
// header to a user record and injects it into the request context.
func APIKeyAuthMiddleware(resolver APIKeyResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := resolver.ResolveAPIKey(ctx, r.Header.Get(apiKeyHeader))
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)

				msg := "Invalid API key"
				if errors.Is(err, services.ErrMissingAPIKey) {
					msg = "API key required"
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(authErrorResponse{Error: msg})
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(ctx, user)))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// NewContextWithUser stores the resolved user in the context.
func NewContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the resolved user from the context. Returns nil if not present.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
