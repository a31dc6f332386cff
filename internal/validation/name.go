package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ValidateName validates an account display name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if utf8.RuneCountInString(trimmed) > 255 {
		return errors.New("name is too long (max 255 characters)")
	}

	return nil
}

// ParseBool accepts the values an HTML boolean control can submit.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true, nil
	case "0", "false", "off", "no":
		return false, nil
	}
	return false, errors.New("value must be true or false")
}
