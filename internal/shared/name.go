package shared

import "strings"

// PersonName is a trimmed display name of at least two characters.
type PersonName struct {
	value string
}

func NewPersonName(value string) (PersonName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return PersonName{}, NewValidationError("name", "cannot be empty")
	}
	if len(trimmed) < 2 {
		return PersonName{}, NewValidationError("name", "must be at least 2 characters long")
	}

	return PersonName{value: trimmed}, nil
}

func (n PersonName) String() string {
	return n.value
}

func (n PersonName) Equals(other PersonName) bool {
	return n.value == other.value
}
