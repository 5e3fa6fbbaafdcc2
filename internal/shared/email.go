package shared

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailAddress is a case-insensitive email, normalized to lowercase.
type EmailAddress struct {
	value string
}

func NewEmailAddress(value string) (EmailAddress, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return EmailAddress{}, NewValidationError("email", "cannot be empty")
	}
	if !emailPattern.MatchString(trimmed) {
		return EmailAddress{}, NewValidationError("email", "must be a valid email address")
	}

	return EmailAddress{value: strings.ToLower(trimmed)}, nil
}

func (e EmailAddress) String() string {
	return e.value
}

func (e EmailAddress) Equals(other EmailAddress) bool {
	return e.value == other.value
}
