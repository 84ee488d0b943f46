package common

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validate tags on payload and converts the first
// failure into a *ValidationError carrying the offending field name.
func ValidateStruct(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		fieldError := validationErrors[0]
		return NewValidationError(fieldError.Field(), validationMessage(fieldError))
	}

	return nil
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "eqfield":
		return fmt.Sprintf("the value of %s does not match %s", fieldError.Field(), fieldError.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", fieldError.Field(), fieldError.Tag())
	}
}
