package errors

import (
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("client", "acme")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "client not found: acme" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "client not found: acme")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "client" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "acme" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewAuthenticationError(t *testing.T) {
	cause := errors.New("status 401")
	err := NewAuthenticationError("get current user", cause)

	if err.Type != ErrorTypeAuthentication {
		t.Errorf("NewAuthenticationError type = %v, want %v", err.Type, ErrorTypeAuthentication)
	}
	if err.Message != "API rejected credentials during get current user" {
		t.Errorf("NewAuthenticationError message = %v", err.Message)
	}
	if err.Code != "AUTHENTICATION_FAILED" {
		t.Errorf("NewAuthenticationError code = %v, want %v", err.Code, "AUTHENTICATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewAuthenticationError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "get current user" {
		t.Errorf("NewAuthenticationError should set operation context")
	}
}

func TestNewTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("search time entries", cause)

	if err.Type != ErrorTypeTransport {
		t.Errorf("NewTransportError type = %v, want %v", err.Type, ErrorTypeTransport)
	}
	if err.Message != "API request failed: search time entries" {
		t.Errorf("NewTransportError message = %v", err.Message)
	}
	if err.Code != "TRANSPORT_ERROR" {
		t.Errorf("NewTransportError code = %v, want %v", err.Code, "TRANSPORT_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewTransportError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewMalformedResponseError(t *testing.T) {
	err := NewMalformedResponseError("expected exactly one time entry, got 2", nil)

	if err.Type != ErrorTypeMalformed {
		t.Errorf("NewMalformedResponseError type = %v, want %v", err.Type, ErrorTypeMalformed)
	}
	if err.Code != "MALFORMED_RESPONSE" {
		t.Errorf("NewMalformedResponseError code = %v, want %v", err.Code, "MALFORMED_RESPONSE")
	}
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New("no such file")
	err := NewConfigError("cannot read secrets file", cause)

	if err.Type != ErrorTypeConfig {
		t.Errorf("NewConfigError type = %v, want %v", err.Type, ErrorTypeConfig)
	}
	if err.Code != "CONFIG_ERROR" {
		t.Errorf("NewConfigError code = %v, want %v", err.Code, "CONFIG_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewConfigError cause = %v, want %v", err.Cause, cause)
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := WrapError(cause, ErrorTypeMalformed, "decoding search response")

	if err.Type != ErrorTypeMalformed {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeMalformed)
	}
	if err.Message != "decoding search response" {
		t.Errorf("WrapError message = %v", err.Message)
	}
	if !errors.Is(err, err) {
		t.Errorf("WrapError should match itself with errors.Is")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("WrapError should unwrap to cause")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NewValidationError("bad input", nil)
	plainErr := errors.New("plain error")

	if !IsAppError(appErr) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if IsAppError(plainErr) {
		t.Errorf("IsAppError should return false for plain error")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewTransportError("list clients", errors.New("timeout"))

	if !IsErrorType(err, ErrorTypeTransport) {
		t.Errorf("IsErrorType should match transport error")
	}
	if IsErrorType(err, ErrorTypeAuthentication) {
		t.Errorf("IsErrorType should not match authentication for transport error")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeTransport) {
		t.Errorf("IsErrorType should return false for plain error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation error returns message",
			err:      NewValidationError("numdays must be at least 1", nil),
			expected: "numdays must be at least 1",
		},
		{
			name:     "not found error returns message",
			err:      NewNotFoundError("client", "Nope"),
			expected: "client not found: Nope",
		},
		{
			name:     "authentication error returns hint",
			err:      NewAuthenticationError("get current user", nil),
			expected: "Toggl rejected the API token. Check the token in secrets.ini.",
		},
		{
			name:     "transport error returns hint",
			err:      NewTransportError("list clients", nil),
			expected: "Could not reach the Toggl API. Check your network connection and try again.",
		},
		{
			name:     "plain error returns its own message",
			err:      errors.New("something else"),
			expected: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewTransportError("op", nil)); code != "TRANSPORT_ERROR" {
		t.Errorf("GetErrorCode() = %v, want TRANSPORT_ERROR", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", code)
	}
}
