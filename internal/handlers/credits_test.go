package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/currencygw/gw-currency-converter/internal/middlewares"
	"github.com/currencygw/gw-currency-converter/internal/models"
)

func TestGetCreditsHandler(t *testing.T) {
	tests := []struct {
		name         string
		user         *models.User
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			user: &models.User{
				Email:   "john@example.com",
				APIKey:  "key-1",
				Credits: 97,
			},
			expectedCode: 200,
			expectedBody: map[string]any{"credits": float64(97)},
		},
		{
			name:         "no resolved user",
			user:         nil,
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewGetCreditsHandler()

			req := httptest.NewRequest(http.MethodGet, "/users/credits", nil)
			if tt.user != nil {
				req = req.WithContext(middlewares.NewContextWithUser(req.Context(), tt.user))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
