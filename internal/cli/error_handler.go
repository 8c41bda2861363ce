package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
	"github.com/robert-osoelectronics/toggl-reports/internal/validation"
)

// Exit codes per failure class. Network and API failures are reported with
// a distinct non-zero status instead of crashing with a raw diagnostic;
// retries stay out of scope.
const (
	ExitOK             = 0
	ExitNotFound       = 1
	ExitInvalidInput   = 2
	ExitAuthentication = 3
	ExitTransport      = 4
	ExitMalformed      = 5
	ExitConfig         = 6
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle adds operation context while keeping the typed error in the chain
// so ExitCode still sees the failure class.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// ExitCode maps an error to the process exit status for its failure class.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return ExitInvalidInput
	}

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeNotFound:
			return ExitNotFound
		case errors.ErrorTypeValidation:
			return ExitInvalidInput
		case errors.ErrorTypeAuthentication:
			return ExitAuthentication
		case errors.ErrorTypeTransport:
			return ExitTransport
		case errors.ErrorTypeMalformed:
			return ExitMalformed
		case errors.ErrorTypeConfig:
			return ExitConfig
		}
	}

	return ExitNotFound
}

// UserMessage renders an error for terminal output, preferring the
// friendly form of typed errors over their technical chain.
func UserMessage(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}

	if appErr, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(appErr)
	}
	return err.Error()
}
