package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/middlewares"
	"github.com/currencygw/gw-currency-converter/internal/models"
	"github.com/currencygw/gw-currency-converter/internal/services"
)

// Converter defines the interface that the rates service must implement.
type Converter interface {
	Convert(ctx context.Context, user *models.User, base, target string, amount float64, date string) (*models.ConversionQuote, error)
}

// ConvertRequest represents the JSON body for a conversion
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Source currency
	// required: true
	// default: EUR
	BaseCurrency string `json:"base_currency"`

	// Target currency
	// required: true
	// default: USD
	TargetCurrency string `json:"target_currency"`

	// Amount to convert
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`

	// Optional historical date (YYYY-MM-DD)
	// default: 2024-01-15
	Date string `json:"date,omitempty"`
}

// ConvertResponse represents a successful conversion
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Source currency
	// default: EUR
	BaseCurrency string `json:"base_currency"`

	// Target currency
	// default: USD
	TargetCurrency string `json:"target_currency"`

	// Amount converted
	// default: 100.0
	Amount float64 `json:"amount"`

	// Result of the conversion
	// default: 85.0
	ConvertedAmount float64 `json:"converted_amount"`

	// Rate applied
	// default: 0.85
	Rate float64 `json:"rate"`

	// Historical date, when one was requested
	Date string `json:"date,omitempty"`
}

// ConvertErrorResponse represents an error response for a conversion
// swagger:model ConvertErrorResponse
type ConvertErrorResponse struct {
	// Error message
	// default: Invalid currency code(s)
	Error string `json:"error"`
}

// NewConvertHandler returns an HTTP handler converting between currencies.
// Admission deducts one credit up front; a successful conversion deducts
// one more.
// @Summary Convert currency
// @Description Converts an amount from one currency to another at the latest rate, or at a historical rate when a date is given.
// @Tags currency
// @Accept json
// @Produce json
// @Param convertRequest body handlers.ConvertRequest true "Conversion request"
// @Success 200 {object} handlers.ConvertResponse "Conversion result"
// @Failure 400 {object} handlers.ConvertErrorResponse "Invalid currency codes or unavailable rate data"
// @Failure 401 {object} handlers.ConvertErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.ConvertErrorResponse "Insufficient credits"
// @Failure 500 {object} handlers.ConvertErrorResponse "Internal server error"
// @Router /currency/convert [post]
// @Security APIKeyAuth
func NewConvertHandler(admitter Admitter, converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.UserFromContext(ctx)
		if user == nil {
			logger.Log.Error("convert request reached handler without a resolved user")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := admitter.Admit(ctx, user); err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientCredits):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "Insufficient credits"})
			default:
				logger.Log.Errorw("admission failed", "email", user.Email, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "Internal server error"})
			}
			return
		}

		quote, err := converter.Convert(ctx, user, req.BaseCurrency, req.TargetCurrency, req.Amount, req.Date)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCurrency):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "Invalid currency code(s)"})
			case errors.Is(err, services.ErrHistoricalUnavailable):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConvertErrorResponse{
					Error: fmt.Sprintf("Historical data not available for %s/%s on %s", req.BaseCurrency, req.TargetCurrency, req.Date),
				})
			case errors.Is(err, services.ErrConversionFailed):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConvertErrorResponse{
					Error: fmt.Sprintf("Could not convert %s to %s", req.BaseCurrency, req.TargetCurrency),
				})
			default:
				logger.Log.Errorw("conversion failed unexpectedly", "email", user.Email, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConvertErrorResponse{
					Error: fmt.Sprintf("Conversion failed due to an unexpected error: %v", err),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConvertResponse{
			BaseCurrency:    quote.BaseCurrency,
			TargetCurrency:  quote.TargetCurrency,
			Amount:          quote.Amount,
			ConvertedAmount: quote.ConvertedAmount,
			Rate:            quote.Rate,
			Date:            quote.Date,
		})
	}
}
