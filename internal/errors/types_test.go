package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Database", ErrorTypeDatabase, "database"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Parse", ErrorTypeParse, "parse"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name:     "Error without cause",
			appError: &AppError{Type: ErrorTypeValidation, Message: "invalid punch"},
			expected: "validation: invalid punch",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeDatabase,
				Message: "upsert failed",
				Cause:   errors.New("disk full"),
			},
			expected: "database: upsert failed (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("bad token")
	err := NewParseError("8h", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, &AppError{Type: ErrorTypeParse, Code: "PARSE_FAILED"}))
	assert.False(t, errors.Is(err, &AppError{Type: ErrorTypeDatabase, Code: "DATABASE_ERROR"}))
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeInvalidInput}

	_, ok := err.GetContext("missing")
	assert.False(t, ok)

	err.WithContext("period", "2024/2")
	value, ok := err.GetContext("period")
	assert.True(t, ok)
	assert.Equal(t, "2024/2", value)
}
