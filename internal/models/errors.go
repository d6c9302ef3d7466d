// Package models defines the data structures for the aircon subsidy engine.
package models

import (
	"errors"
	"strings"
)

// Common errors
var (
	// ErrExtractionFormat means the extractor payload was empty or not a
	// well-formed JSON object after code fences were stripped.
	ErrExtractionFormat = errors.New("extraction result is not a well-formed JSON object")

	// ErrNoNumericToken means a field expected to carry a number had none.
	ErrNoNumericToken = errors.New("no numeric value found in field")

	// ErrUnknownModel means the selected model code has no catalog row.
	ErrUnknownModel = errors.New("model code not found in catalog")

	// ErrLookupService covers an unreachable collaborator or a response
	// with an unexpected shape (postal lookup, image extraction).
	ErrLookupService = errors.New("lookup service unavailable or returned unexpected data")

	// ErrNotEligible is returned by the quote composer when asked to
	// compose a net cost for a non-eligible unit. A non-eligible outcome
	// itself is a valid evaluator result, not a failure.
	ErrNotEligible = errors.New("unit is not eligible for a subsidy")

	ErrMissingField           = errors.New("required field is empty")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrInvalidZipCode         = errors.New("zip code must be 7 digits without hyphen")
	ErrInvalidManufactureYear = errors.New("manufacture year must be a four-digit year")
)

// ValidateCustomerRecord validates a customer submission. Every contact
// field is required, mirroring the all-or-nothing form check.
func ValidateCustomerRecord(r *CustomerRecord) error {
	required := []struct {
		name  string
		value string
	}{
		{"model_number", r.ModelNumber},
		{"zip_code", r.ZipCode},
		{"address", r.Address},
		{"name", r.Name},
		{"phone_number", r.PhoneNumber},
		{"email", r.Email},
		{"customer_number", r.CustomerNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Err: ErrMissingField, Field: f.name}
		}
	}

	if !isValidEmail(r.Email) {
		return ErrInvalidEmail
	}

	if !isValidZipCode(r.ZipCode) {
		return ErrInvalidZipCode
	}

	if r.ManufactureYear < 1000 || r.ManufactureYear > 9999 {
		return ErrInvalidManufactureYear
	}

	return nil
}

// FieldError attaches the offending field name to a validation error.
type FieldError struct {
	Err   error
	Field string
}

func (e *FieldError) Error() string { return e.Err.Error() + ": " + e.Field }
func (e *FieldError) Unwrap() error { return e.Err }

// isValidEmail performs basic email validation.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}

	// Basic check: must contain @ and have content before and after
	atIndex := strings.Index(email, "@")
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	// Must have a dot after @
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex <= atIndex+1 || dotIndex == len(email)-1 {
		return false
	}

	return true
}

func isValidZipCode(zip string) bool {
	if len(zip) != 7 {
		return false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
