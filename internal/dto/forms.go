package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterEmailShape installs the app's fixed email check on a validator
// instance. The tag keeps the exact shape rule both forms were shipped with.
func RegisterEmailShape(validate *validator.Validate) error {
	return validate.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
}

// RegisterForm carries the sign-up fields. Password strength is a policy
// concern, not a tag, so the composition rules stay in one named place.
type RegisterForm struct {
	FirstName string `validate:"required,min=2"`
	LastName  string `validate:"required,min=2"`
	Email     string `validate:"required,email_shape"`
	Password  string `validate:"-"`
	Confirm   string `validate:"-"`
}

type LoginForm struct {
	Email    string `validate:"required,email_shape"`
	Password string `validate:"required"`
}

type ForgotPasswordForm struct {
	Email string `validate:"required,email_shape"`
}

// PasswordUpdateForm is mutable while the reset screen is active and
// discarded once the update succeeds.
type PasswordUpdateForm struct {
	NewPassword  string
	Confirmation string
}
