package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FlattenValidationErrors turns validator.ValidationErrors into a
// field -> messages map keyed by the json field name (lowercased struct
// field when no json tag applies).
func FlattenValidationErrors(err error) map[string][]string {
	fieldErrors := make(map[string][]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["body"] = []string{err.Error()}
		return fieldErrors
	}

	for _, fe := range validationErrs {
		field := strings.ToLower(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], validationMessage(fe))
	}
	return fieldErrors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return "must be a valid uuid"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
