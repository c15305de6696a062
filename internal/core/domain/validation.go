package domain

import (
	"strings"
)

// IssueCode classifies a validation error or warning.
type IssueCode string

// Validation issue codes.
const (
	IssueFutureDate          IssueCode = "future_date"
	IssueDateOutOfRange      IssueCode = "date_out_of_range"
	IssueUnknownTimeZone     IssueCode = "unknown_time_zone"
	IssueLatitudeRange       IssueCode = "latitude_out_of_range"
	IssueLongitudeRange      IssueCode = "longitude_out_of_range"
	IssueNotFinite           IssueCode = "not_finite"
	IssueUnknownReference    IssueCode = "unknown_reference_system"
	IssueUnknownPrecision    IssueCode = "unknown_precision"
	IssueUnknownHouseSystem  IssueCode = "unknown_house_system"
	IssueReducedAccuracy     IssueCode = "reduced_accuracy"
	IssuePoleProximity       IssueCode = "pole_proximity"
	IssueDateLineProximity   IssueCode = "date_line_proximity"
	IssuePlaceholderLocation IssueCode = "placeholder_location"
	IssueZeroCorrection      IssueCode = "zero_correction_reference"
	IssueMaximumPrecision    IssueCode = "maximum_precision"
	IssueUnusualHouseSystem  IssueCode = "unusual_house_system"
	IssueProfileOutOfRange   IssueCode = "profile_out_of_range"
	IssueProfileInconsistent IssueCode = "profile_inconsistent"
)

// ValidationIssue is a single error or warning produced by validation.
type ValidationIssue struct {
	Field   string    `json:"field"`
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

// ValidationResult aggregates blocking errors and advisory warnings.
type ValidationResult struct {
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// IsValid reports whether there are no blocking errors.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Merge concatenates the errors and warnings of other onto r.
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	return ValidationResult{
		Errors:   append(append([]ValidationIssue(nil), r.Errors...), other.Errors...),
		Warnings: append(append([]ValidationIssue(nil), r.Warnings...), other.Warnings...),
	}
}

// HasError reports whether an error with the given code is present.
func (r ValidationResult) HasError(code IssueCode) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// HasWarning reports whether a warning with the given code is present.
func (r ValidationResult) HasWarning(code IssueCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// ValidationError is returned when validation produced blocking errors.
type ValidationError struct {
	Result ValidationResult
}

// Error lists the blocking messages.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Result.Errors))
	for _, issue := range e.Result.Errors {
		msgs = append(msgs, issue.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap exposes the sentinel so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
