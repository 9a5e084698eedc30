package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected APIError
	}{
		{
			name:     "Validation error keeps its message",
			err:      &ValidationError{Message: MsgInvalidEmail},
			expected: APIError{Code: CodeValidationError, Message: MsgInvalidEmail},
		},
		{
			name:     "Fetch error",
			err:      &FetchError{Code: CodeFetchError, StatusCode: 500, Body: "boom"},
			expected: APIError{Code: CodeFetchError, Message: MsgProjectsFailed},
		},
		{
			name:     "Wrapped rate limit error",
			err:      fmt.Errorf("load: %w", &FetchError{Code: CodeRateLimitReached, StatusCode: 403}),
			expected: APIError{Code: CodeRateLimitReached, Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again"},
		},
		{
			name:     "Format error displayed like a fetch error",
			err:      &FormatError{Err: errors.New("not a list")},
			expected: APIError{Code: CodeInvalidFormat, Message: MsgProjectsFailed},
		},
		{
			name:     "Delivery error",
			err:      &DeliveryError{Code: CodeEmailNotConfigured},
			expected: APIError{Code: CodeEmailNotConfigured, Message: MsgSendFailed},
		},
		{
			name:     "Unknown error",
			err:      errors.New("unexpected"),
			expected: APIError{Code: "GENERIC_ERROR", Message: msgInternalFailure},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewAPIError(tt.err))
		})
	}
}

func TestFetchErrorMessage(t *testing.T) {
	assert.EqualError(t, &FetchError{StatusCode: 404, Body: "Not Found"}, "github API error: 404 - Not Found")
	assert.EqualError(t, &FetchError{Err: errors.New("dial tcp: refused")}, "github API error: dial tcp: refused")
}
