package validation

import (
	"errors"
	"strings"
	"testing"

	apperrors "workhours/internal/errors"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "day", Message: "is required"}}, "validation error for field 'day': is required"},
		{"Multiple errors", []FieldError{
			{Field: "punch 1", Message: "bad format"},
			{Field: "punch 2", Message: "out of range"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else if result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_ErrAndMerge(t *testing.T) {
	ve := NewValidationError()
	if ve.Err() != nil {
		t.Errorf("empty ValidationError.Err() should be nil")
	}

	other := NewValidationError()
	other.AddRequiredError("day")
	ve.Merge(other)
	ve.Merge(errors.New("not a validation error"))
	ve.Merge(nil)

	if len(ve.Errors) != 1 {
		t.Fatalf("Expected 1 error after merge, got %d", len(ve.Errors))
	}
	if !IsValidationError(ve.Err()) {
		t.Errorf("Err() should return the ValidationError")
	}
}

func TestValidationError_Adders(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("day")
	ve.AddInvalidFormatError("punch 1", "ab", "HH:MM")
	ve.AddInvalidCountError("punches", 7, 6)
	ve.AddInvalidValueError("year", 1900, "too old")
	ve.AddInvalidRangeError("punch 2", "25:00", "must be between 00:00 and 23:59")
	ve.AddInvalidOrderError("punch 3", "07:00", "07:00 is earlier than punch 2 at 08:00")

	expected := []struct {
		field    string
		errType  ValidationErrorType
		contains string
	}{
		{"day", ErrorTypeRequired, "day is required"},
		{"punch 1", ErrorTypeInvalidFormat, "expected: HH:MM"},
		{"punches", ErrorTypeInvalidCount, "at most 6 values, got 7"},
		{"year", ErrorTypeInvalidValue, "too old"},
		{"punch 2", ErrorTypeInvalidRange, "23:59"},
		{"punch 3", ErrorTypeInvalidOrder, "out of order"},
	}

	if len(ve.Errors) != len(expected) {
		t.Fatalf("Expected %d errors, got %d", len(expected), len(ve.Errors))
	}
	for i, want := range expected {
		got := ve.Errors[i]
		if got.Field != want.field || got.Type != want.errType || !strings.Contains(got.Message, want.contains) {
			t.Errorf("error %d = %+v, expected field %q type %q containing %q", i, got, want.field, want.errType, want.contains)
		}
	}

	if n := len(fieldErrors(ve, "punch 2")); n != 1 {
		t.Errorf("punch 2 has %d errors, expected 1", n)
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if msg := ve.GetUserFriendlyMessage(); msg != "Input validation failed" {
		t.Errorf("unexpected message for empty error: %q", msg)
	}

	ve.AddRequiredError("day")
	if msg := ve.GetUserFriendlyMessage(); msg != "day is required" {
		t.Errorf("unexpected single message: %q", msg)
	}

	ve.AddRequiredError("punch 1")
	msg := ve.GetUserFriendlyMessage()
	if !strings.HasPrefix(msg, "Multiple validation errors occurred:") || !strings.Contains(msg, "- punch 1 is required") {
		t.Errorf("unexpected multi message: %q", msg)
	}
}

func TestValidationError_ToAppError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("day")

	appErr := ve.ToAppError()
	if !appErr.IsType(apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation AppError, got %v", appErr.Type)
	}
	var inner *ValidationError
	if !errors.As(appErr, &inner) {
		t.Errorf("AppError should unwrap to the ValidationError")
	}
}

// fieldErrors returns the errors recorded for one field
func fieldErrors(ve *ValidationError, field string) []FieldError {
	var errs []FieldError
	for _, err := range ve.Errors {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}
