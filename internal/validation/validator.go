package validation

import (
	"regexp"
	"strings"

	"civicvoter/internal/domain"
)

// MaxAddressLength bounds the free-text address input forwarded to the
// external geocoder.
const MaxAddressLength = 200

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateResolveAddressRequest validates the address resolution payload.
func (v *Validator) ValidateResolveAddressRequest(address string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("address"))
	} else if len(trimmed) > MaxAddressLength {
		errors = append(errors, domain.NewInvalidFormatError("address", "exceeds maximum length"))
	}

	return errors
}

// ValidateZipCode validates a 5-digit ZIP path parameter.
func (v *Validator) ValidateZipCode(zip string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(zip) == "" {
		errors = append(errors, domain.NewMissingFieldError("zip"))
	} else if !isValidZipCode(zip) {
		errors = append(errors, domain.NewInvalidFormatError("zip", zip))
	}

	return errors
}

// isValidZipCode checks for exactly five digits.
func isValidZipCode(s string) bool {
	return regexp.MustCompile(`^\d{5}$`).MatchString(s)
}
