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

	"github.com/currencygw/gw-currency-converter/internal/services"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		mockSetup    func(m *MockSignuper)
		expectedCode int
		expectedBody map[string]any
		rawBody      string // when non-empty, sent as-is instead of a marshalled request
	}{
		{
			name:  "success",
			email: "john@example.com",
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "john@example.com").
					Return("7e4b52d6-6a8c-4b5e-9f1d-2c53a1d0a6f3", int64(100), nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"api_key": "7e4b52d6-6a8c-4b5e-9f1d-2c53a1d0a6f3",
				"credits": float64(100),
			},
		},
		{
			name:  "user already exists",
			email: "alice@example.com",
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "alice@example.com").
					Return("", int64(0), services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "User with this email already exists"},
		},
		{
			name:  "internal server error",
			email: "bob@example.com",
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob@example.com").
					Return("", int64(0), errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name:         "missing email",
			rawBody:      "{}",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignuper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSignupHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(SignupRequest{Email: tt.email})
				req = httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewBuffer(bodyBytes))
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
