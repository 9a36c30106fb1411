package synth

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind identifies which validation rule rejected a phone number.
type FailureKind string

// Stable values (these exact strings appear in diagnostics and logs).
const (
	EmptyIdentifier    FailureKind = "EMPTY_IDENTIFIER"
	NonDigitIdentifier FailureKind = "NON_DIGIT_IDENTIFIER"
	TooShortIdentifier FailureKind = "TOO_SHORT_IDENTIFIER"
	TooLongIdentifier  FailureKind = "TOO_LONG_IDENTIFIER"
)

// Valid phone numbers are all-digit strings of 6 to 20 characters.
const (
	minNumberLen = 6
	maxNumberLen = 20
)

// ValidationError reports a rejected phone number together with the rule
// that rejected it, so callers can switch on Kind instead of matching
// message text.
type ValidationError struct {
	Kind FailureKind
	Raw  string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptyIdentifier:
		return "phone number is empty"
	case NonDigitIdentifier:
		return fmt.Sprintf("invalid phone number %q: only digits are allowed", e.Raw)
	case TooShortIdentifier:
		return fmt.Sprintf("phone number %q is too short to be valid", e.Raw)
	case TooLongIdentifier:
		return fmt.Sprintf("phone number %q is too long to be valid", e.Raw)
	default:
		return fmt.Sprintf("invalid phone number %q", e.Raw)
	}
}

// KindOf extracts the failure kind from an error returned by this package.
func KindOf(err error) (FailureKind, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return "", false
}

// ValidateNumber trims and checks a raw phone number. The rules run in a
// fixed order and each produces a distinct failure kind.
func ValidateNumber(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", &ValidationError{Kind: EmptyIdentifier, Raw: raw}
	}
	for _, c := range cleaned {
		if c < '0' || c > '9' {
			return "", &ValidationError{Kind: NonDigitIdentifier, Raw: raw}
		}
	}
	if len(cleaned) < minNumberLen {
		return "", &ValidationError{Kind: TooShortIdentifier, Raw: raw}
	}
	if len(cleaned) > maxNumberLen {
		return "", &ValidationError{Kind: TooLongIdentifier, Raw: raw}
	}
	return cleaned, nil
}
