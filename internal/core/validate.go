// FILE: internal/core/validate.go
package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks v against its validate tags and reports every failed field
// in one INVALID_REQUEST error
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return &CodedError{Code: ErrInvalidRequest, Message: "validation failed", Details: err.Error()}
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "min":
			if fe.Type().Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
			}
		case "max":
			if fe.Type().Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}

	return &CodedError{Code: ErrInvalidRequest, Message: "validation failed", Details: details.String()}
}
