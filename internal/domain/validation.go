package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// EmailHeuristicTag is the validator tag that applies ValidEmail to a string field.
const EmailHeuristicTag = "email_heuristic"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance with the domain rules
// registered. Field names in its errors are the JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Registration only fails for an empty tag or nil func.
		_ = RegisterEmailHeuristic(v)
		validate = v
	})
	return validate
}

// RegisterEmailHeuristic registers EmailHeuristicTag on v.
func RegisterEmailHeuristic(v *validator.Validate) error {
	return v.RegisterValidation(EmailHeuristicTag, func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
}

// validateStruct runs the shared validator and folds field errors into a
// single error wrapping ErrValidation.
func validateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case EmailHeuristicTag:
			msgs = append(msgs, fmt.Sprintf("%s does not look like an email address", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}
