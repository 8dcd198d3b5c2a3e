package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kscout/credential-intake-api/models"

	"gopkg.in/go-playground/validator.v9"
)

// validateNotBlank is a custom validation which ensures a string is not empty
// once surrounding whitespace is removed.
// Only works with fields which are strings.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// jsonTagName reports fields by their JSON name so errors match the request body
func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

// CredentialValidator checks registration requests
type CredentialValidator struct {
	validate *validator.Validate
}

// NewCredentialValidator creates a CredentialValidator
func NewCredentialValidator() CredentialValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonTagName)

	if err := validate.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(fmt.Errorf("failed to register notblank validation: %s", err.Error()))
	}

	return CredentialValidator{
		validate: validate,
	}
}

// Name returns the name of the validator
func (v CredentialValidator) Name() string {
	return "Credential validator"
}

// Summary returns a short description of what the check does
func (v CredentialValidator) Summary() string {
	return "Ensures user and password are present and not blank"
}

// Validate returns one FieldError per rejected field, or nil if the request is valid
func (v CredentialValidator) Validate(req models.RegistrationRequest) []FieldError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(fmt.Errorf("failed to validate registration request: %s", err.Error()))
	}

	fieldErrs := []FieldError{}
	for _, fieldErr := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field: fieldErr.Field(),
			Why:   "must not be empty",
		})
	}

	return fieldErrs
}
