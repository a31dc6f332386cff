package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/templui/profiles/internal/model"
	"golang.org/x/text/unicode/norm"
)

const NameMaxLength = 20

// Errors maps a form field name to its message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// ProfileInput is the raw form submission for create and update.
type ProfileInput struct {
	FirstName string `form:"first_name" validate:"required,letters_digits,max=20"`
	LastName  string `form:"last_name" validate:"required,letters_digits,max=20"`
	Gender    string `form:"gender" validate:"required,oneof=1 0 true false"`
	Birthdate string `form:"birthdate" validate:"required,datetime=2006-01-02"`
}

var validate = newValidator()

// lettersDigits allows combining marks, which alphanumunicode rejects, so
// names like "हिन्दी" stay valid after NFC leaves their marks separate.
var lettersDigits = regexp.MustCompile(`^[\p{L}\p{M}\p{N}]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("letters_digits", func(fl validator.FieldLevel) bool {
		return lettersDigits.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateProfile normalizes and checks the input and returns the typed
// fields. A failure is always an Errors value.
func ValidateProfile(in ProfileInput) (model.ProfileFields, error) {
	in.FirstName = norm.NFC.String(strings.TrimSpace(in.FirstName))
	in.LastName = norm.NFC.String(strings.TrimSpace(in.LastName))
	in.Gender = strings.ToLower(strings.TrimSpace(in.Gender))
	in.Birthdate = strings.TrimSpace(in.Birthdate)

	err := validate.Struct(in)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return model.ProfileFields{}, err
		}
		out := Errors{}
		for _, fe := range verrs {
			out[fe.Field()] = message(fe)
		}
		return model.ProfileFields{}, out
	}

	birthdate, err := time.Parse(model.BirthdateLayout, in.Birthdate)
	if err != nil {
		return model.ProfileFields{}, Errors{"birthdate": "The birthdate is not a valid date."}
	}

	return model.ProfileFields{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Gender:    in.Gender == "1" || in.Gender == "true",
		Birthdate: birthdate,
	}, nil
}

func message(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "letters_digits":
		return fmt.Sprintf("The %s may only contain letters and numbers.", label)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be true or false.", label)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", label)
	default:
		return fmt.Sprintf("The %s is invalid.", label)
	}
}
