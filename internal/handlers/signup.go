package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/services"
)

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, email string) (apiKey string, credits int64, err error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Newly issued API key
	// default: 7e4b52d6-6a8c-4b5e-9f1d-2c53a1d0a6f3
	APIKey string `json:"api_key"`

	// Starting credit balance
	// default: 100
	Credits int64 `json:"credits"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: User with this email already exists
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Register a new user
// @Description Registers a new user by email and issues an API key with initial credits. Emails are case-insensitive.
// @Tags users
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 200 {object} handlers.SignupResponse "User successfully registered"
// @Failure 400 {object} handlers.SignupErrorResponse "Email already registered / invalid request"
// @Router /users/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		apiKey, credits, err := svc.Signup(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "User with this email already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SignupResponse{
			APIKey:  apiKey,
			Credits: credits,
		})
	}
}
