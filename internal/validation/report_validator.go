package validation

import (
	"strings"
)

// ReportValidator provides validation for report generation inputs
type ReportValidator struct{}

// NewReportValidator creates a new report validator
func NewReportValidator() *ReportValidator {
	return &ReportValidator{}
}

// ValidateNumDays validates the lookback window size
func (rv *ReportValidator) ValidateNumDays(numDays int) error {
	if numDays < 1 {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("numdays", numDays, "must be at least 1")
		return validationError
	}
	return nil
}

// ValidateClientName validates a client filter value. An empty filter is
// valid and means no filtering; a set filter must not be blank.
func (rv *ReportValidator) ValidateClientName(name string, filterSet bool) error {
	if !filterSet {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("client")
		return validationError
	}
	return nil
}
