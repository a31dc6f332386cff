package validation

import (
	"net/mail"
	"strings"
)

var commonPasswordFragments = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
}

// RegistrationInput is the sign-up form.
type RegistrationInput struct {
	Email    string
	Name     string
	Password string
}

// ValidateRegistration checks every field and reports all failures at once.
func ValidateRegistration(in RegistrationInput) error {
	errs := Errors{}

	if msg := emailProblem(in.Email); msg != "" {
		errs["email"] = msg
	}
	if err := ValidateName(in.Name); err != nil {
		errs["name"] = err.Error()
	}
	if msg := passwordProblem(in.Password); msg != "" {
		errs["password"] = msg
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RFC 5321 caps the whole address at 254 characters.
func emailProblem(email string) string {
	switch {
	case email == "":
		return "email address is required"
	case len(email) > 254:
		return "email address is too long (max 254 characters)"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "invalid email address format"
	}
	return ""
}

// bcrypt silently truncates past 72 bytes.
func passwordProblem(password string) string {
	switch {
	case len(password) < 12:
		return "password must be at least 12 characters"
	case len(password) > 72:
		return "password must not exceed 72 characters"
	}

	lower := strings.ToLower(password)
	for _, fragment := range commonPasswordFragments {
		if strings.Contains(lower, fragment) {
			return "password is too common, please choose a stronger one"
		}
	}
	return ""
}
