package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

func TestRespondWithDomainError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "Validation",
			err:             domain.NewValidationError("amount", "must be greater than zero"),
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid amount: must be greater than zero",
		},
		{
			name:            "Not found",
			err:             fmt.Errorf("load: %w", domain.NewNotFoundError("employee", 4)),
			expectedCode:    http.StatusNotFound,
			expectedMessage: "load: employee 4 not found",
		},
		{
			name: "Overpayment",
			err: &domain.OverpaymentError{
				Record: "fuel purchase 1", Payment: decimal.RequireFromString("20"), Outstanding: decimal.RequireFromString("10"),
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: "fuel purchase 1: overpayment of Rs. 10.00 (payment Rs. 20.00, outstanding Rs. 10.00)",
		},
		{
			name:            "Persistence failure is hidden",
			err:             errors.New("connection refused"),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondWithDomainError(w, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var body Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestRespondWithJSON_NoPayload(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
