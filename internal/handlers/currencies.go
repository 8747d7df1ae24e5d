package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/middlewares"
	"github.com/currencygw/gw-currency-converter/internal/models"
	"github.com/currencygw/gw-currency-converter/internal/services"
)

// Admitter gates a metered request against the user's credit balance,
// deducting one credit eagerly when the request is allowed.
type Admitter interface {
	Admit(ctx context.Context, user *models.User) error
}

// CurrencyLister defines the interface that the rates service must implement.
type CurrencyLister interface {
	SupportedCurrencies(ctx context.Context) []string
}

// CurrenciesResponse represents the supported-currency list
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Sorted currency codes; empty when currency data is currently unavailable
	Currencies []string `json:"currencies"`
}

// CurrenciesErrorResponse represents an error response for the currencies endpoint
// swagger:model CurrenciesErrorResponse
type CurrenciesErrorResponse struct {
	// Error message
	// default: Insufficient credits
	Error string `json:"error"`
}

// NewGetCurrenciesHandler returns an HTTP handler listing supported currencies.
// @Summary List supported currencies
// @Description Returns the sorted list of supported currency codes. Consumes one credit. An empty list means currency data is currently unavailable.
// @Tags currency
// @Produce json
// @Success 200 {object} handlers.CurrenciesResponse "Supported currencies"
// @Failure 401 {object} handlers.CurrenciesErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.CurrenciesErrorResponse "Insufficient credits"
// @Router /currency/currencies [get]
// @Security APIKeyAuth
func NewGetCurrenciesHandler(admitter Admitter, lister CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.UserFromContext(ctx)
		if user == nil {
			logger.Log.Error("currencies request reached handler without a resolved user")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrenciesErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := admitter.Admit(ctx, user); err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientCredits):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(CurrenciesErrorResponse{Error: "Insufficient credits"})
			default:
				logger.Log.Errorw("admission failed", "email", user.Email, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CurrenciesErrorResponse{Error: "Internal server error"})
			}
			return
		}

		currencies := lister.SupportedCurrencies(ctx)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrenciesResponse{Currencies: currencies})
	}
}
