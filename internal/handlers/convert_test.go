package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/currencygw/gw-currency-converter/internal/middlewares"
	"github.com/currencygw/gw-currency-converter/internal/models"
	"github.com/currencygw/gw-currency-converter/internal/services"
)

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{Email: "john@example.com", APIKey: "key-1", Credits: 10}

	tests := []struct {
		name         string
		user         *models.User
		reqBody      ConvertRequest
		rawBody      string
		mockSetup    func(admitter *MockAdmitter, converter *MockConverter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "latest rate success",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "USD",
				Amount:         100,
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(nil)
				converter.EXPECT().
					Convert(gomock.Any(), user, "EUR", "USD", 100.0, "").
					Return(&models.ConversionQuote{
						BaseCurrency:    "EUR",
						TargetCurrency:  "USD",
						Amount:          100,
						ConvertedAmount: 108.5,
						Rate:            1.085,
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"base_currency":    "EUR",
				"target_currency":  "USD",
				"amount":           float64(100),
				"converted_amount": 108.5,
				"rate":             1.085,
			},
		},
		{
			name: "historical rate success",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "USD",
				Amount:         100,
				Date:           "2024-01-15",
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(nil)
				converter.EXPECT().
					Convert(gomock.Any(), user, "EUR", "USD", 100.0, "2024-01-15").
					Return(&models.ConversionQuote{
						BaseCurrency:    "EUR",
						TargetCurrency:  "USD",
						Amount:          100,
						ConvertedAmount: 85,
						Rate:            0.85,
						Date:            "2024-01-15",
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"base_currency":    "EUR",
				"target_currency":  "USD",
				"amount":           float64(100),
				"converted_amount": float64(85),
				"rate":             0.85,
				"date":             "2024-01-15",
			},
		},
		{
			name: "invalid currency",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "XXX",
				Amount:         100,
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(nil)
				converter.EXPECT().
					Convert(gomock.Any(), user, "EUR", "XXX", 100.0, "").
					Return(nil, services.ErrInvalidCurrency)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid currency code(s)"},
		},
		{
			name: "historical data unavailable",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "USD",
				Amount:         100,
				Date:           "1800-01-01",
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(nil)
				converter.EXPECT().
					Convert(gomock.Any(), user, "EUR", "USD", 100.0, "1800-01-01").
					Return(nil, services.ErrHistoricalUnavailable)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Historical data not available for EUR/USD on 1800-01-01"},
		},
		{
			name: "conversion failed",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "USD",
				Amount:         100,
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(nil)
				converter.EXPECT().
					Convert(gomock.Any(), user, "EUR", "USD", 100.0, "").
					Return(nil, services.ErrConversionFailed)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Could not convert EUR to USD"},
		},
		{
			name: "unexpected conversion error",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "USD",
				Amount:         100,
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(nil)
				converter.EXPECT().
					Convert(gomock.Any(), user, "EUR", "USD", 100.0, "").
					Return(nil, errors.New("boom"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Conversion failed due to an unexpected error: boom"},
		},
		{
			name: "insufficient credits",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "USD",
				Amount:         100,
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(services.ErrInsufficientCredits)
			},
			expectedCode: 402,
			expectedBody: map[string]any{"error": "Insufficient credits"},
		},
		{
			name:         "invalid json",
			user:         user,
			rawBody:      "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			// Amounts are not validated: any float passes through, and the
			// admit credit is charged before the conversion runs.
			name: "negative amount is admitted and converted",
			user: user,
			reqBody: ConvertRequest{
				BaseCurrency:   "EUR",
				TargetCurrency: "USD",
				Amount:         -50,
			},
			mockSetup: func(admitter *MockAdmitter, converter *MockConverter) {
				admitter.EXPECT().Admit(gomock.Any(), user).Return(nil)
				converter.EXPECT().
					Convert(gomock.Any(), user, "EUR", "USD", -50.0, "").
					Return(&models.ConversionQuote{
						BaseCurrency:    "EUR",
						TargetCurrency:  "USD",
						Amount:          -50,
						ConvertedAmount: -54.25,
						Rate:            1.085,
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"base_currency":    "EUR",
				"target_currency":  "USD",
				"amount":           float64(-50),
				"converted_amount": -54.25,
				"rate":             1.085,
			},
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
			admitter := NewMockAdmitter(ctrl)
			converter := NewMockConverter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(admitter, converter)
			}

			handler := NewConvertHandler(admitter, converter)

			var body *bytes.Buffer
			if tt.rawBody != "" {
				body = bytes.NewBufferString(tt.rawBody)
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := httptest.NewRequest(http.MethodPost, "/currency/convert", body)
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
