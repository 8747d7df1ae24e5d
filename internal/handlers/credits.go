package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/middlewares"
)

// CreditsResponse represents the caller's remaining credit balance
// swagger:model CreditsResponse
type CreditsResponse struct {
	// Remaining credits
	// default: 97
	Credits int64 `json:"credits"`
}

// CreditsErrorResponse represents an error response for the credits endpoint
// swagger:model CreditsErrorResponse
type CreditsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetCreditsHandler returns an HTTP handler reporting the caller's
// remaining credits. The balance comes from the user record resolved by
// the auth middleware for this request; reading it does not consume a credit.
// @Summary Get remaining credits
// @Description Returns the remaining credit balance for the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.CreditsResponse "Remaining credits"
// @Failure 401 {object} handlers.CreditsErrorResponse "Unauthorized"
// @Router /users/credits [get]
// @Security APIKeyAuth
func NewGetCreditsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			logger.Log.Error("credits request reached handler without a resolved user")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreditsErrorResponse{Error: "Unauthorized"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreditsResponse{Credits: user.Credits})
	}
}
