package validation

import (
	"errors"
	"strings"
	"testing"
)

func validInput() ProfileInput {
	return ProfileInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Gender:    "1",
		Birthdate: "1990-01-01",
	}
}

func TestValidateProfile_Valid(t *testing.T) {
	fields, err := ValidateProfile(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields.FirstName != "Jane" || fields.LastName != "Doe" {
		t.Fatalf("unexpected names: %q %q", fields.FirstName, fields.LastName)
	}
	if !fields.Gender {
		t.Fatal("expected gender true for \"1\"")
	}
	if got := fields.Birthdate.Format("2006-01-02"); got != "1990-01-01" {
		t.Fatalf("expected birthdate 1990-01-01, got %s", got)
	}
}

func TestValidateProfile_Rules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ProfileInput)
		wantField string
	}{
		{"first name 21 chars", func(in *ProfileInput) { in.FirstName = strings.Repeat("a", 21) }, "first_name"},
		{"first name empty", func(in *ProfileInput) { in.FirstName = "" }, "first_name"},
		{"first name whitespace only", func(in *ProfileInput) { in.FirstName = "   " }, "first_name"},
		{"first name with space", func(in *ProfileInput) { in.FirstName = "Mary Jane" }, "first_name"},
		{"first name punctuation", func(in *ProfileInput) { in.FirstName = "O'Neil" }, "first_name"},
		{"last name 21 chars", func(in *ProfileInput) { in.LastName = strings.Repeat("b", 21) }, "last_name"},
		{"last name missing", func(in *ProfileInput) { in.LastName = "" }, "last_name"},
		{"gender missing", func(in *ProfileInput) { in.Gender = "" }, "gender"},
		{"gender not boolean", func(in *ProfileInput) { in.Gender = "maybe" }, "gender"},
		{"gender numeric out of range", func(in *ProfileInput) { in.Gender = "2" }, "gender"},
		{"birthdate empty", func(in *ProfileInput) { in.Birthdate = "" }, "birthdate"},
		{"birthdate garbage", func(in *ProfileInput) { in.Birthdate = "not-a-date" }, "birthdate"},
		{"birthdate impossible day", func(in *ProfileInput) { in.Birthdate = "1990-02-30" }, "birthdate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := ValidateProfile(in)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected Errors, got %T: %v", err, err)
			}
			if !verrs.Has(tt.wantField) {
				t.Fatalf("expected error on %s, got %v", tt.wantField, verrs)
			}
			if len(verrs) != 1 {
				t.Fatalf("expected exactly one failing field, got %v", verrs)
			}
		})
	}
}

func TestValidateProfile_Accepts(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*ProfileInput)
		wantGender bool
	}{
		{"alphanumeric first name", func(in *ProfileInput) { in.FirstName = "Jane1" }, true},
		{"exactly 20 chars", func(in *ProfileInput) { in.FirstName = strings.Repeat("a", 20) }, true},
		{"unicode letters", func(in *ProfileInput) { in.LastName = "Müller" }, true},
		{"combining marks", func(in *ProfileInput) { in.FirstName = "हिन्दी" }, true},
		{"mark with no precomposed form", func(in *ProfileInput) { in.LastName = "Te\u0331st" }, true},
		{"twenty accented letters", func(in *ProfileInput) { in.LastName = strings.Repeat("é", 20) }, true},
		{"gender zero", func(in *ProfileInput) { in.Gender = "0" }, false},
		{"gender true word", func(in *ProfileInput) { in.Gender = "true" }, true},
		{"gender false word", func(in *ProfileInput) { in.Gender = "false" }, false},
		{"gender uppercase", func(in *ProfileInput) { in.Gender = "TRUE" }, true},
		{"surrounding whitespace", func(in *ProfileInput) { in.FirstName = "  Jane  " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			fields, err := ValidateProfile(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fields.Gender != tt.wantGender {
				t.Fatalf("gender = %v, want %v", fields.Gender, tt.wantGender)
			}
		})
	}
}

func TestValidateProfile_ReportsEveryField(t *testing.T) {
	_, err := ValidateProfile(ProfileInput{})

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	for _, field := range []string{"first_name", "last_name", "gender", "birthdate"} {
		if !verrs.Has(field) {
			t.Errorf("missing error for %s", field)
		}
	}
	if !strings.Contains(verrs["first_name"], "required") {
		t.Errorf("unexpected first_name message: %q", verrs["first_name"])
	}
}

func TestValidateRegistration(t *testing.T) {
	err := ValidateRegistration(RegistrationInput{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = ValidateRegistration(RegistrationInput{Email: "nope", Password: "password12345"})
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	for _, field := range []string{"email", "name", "password"} {
		if !verrs.Has(field) {
			t.Errorf("missing error for %s", field)
		}
	}
}
