package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
)

// New returns a validator that reports fields by their JSON names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ToDetails maps validator errors to field -> message pairs.
// Nested fields are reported with dotted paths, e.g. "instructor.name".
func ToDetails(err error) map[string]string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}
	details := make(map[string]string, len(ves))
	for _, fe := range ves {
		field := fieldPath(fe)
		if _, exists := details[field]; exists {
			continue
		}
		details[field] = describe(fe)
	}
	return details
}

// Error converts a validator failure into a 400 application error carrying field details.
func Error(err error, fallback string) *appErrors.Error {
	details := ToDetails(err)
	message := fallback
	if len(details) > 0 {
		fields := make([]string, 0, len(details))
		for field := range details {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, field+" "+details[field])
		}
		message = strings.Join(parts, "; ")
	}
	appErr := appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	appErr.Details = details
	return appErr
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "uuid":
		return "must be a valid id"
	default:
		return "is invalid"
	}
}

// Required reports a single missing field in the same shape as validator failures.
func Required(field string) *appErrors.Error {
	appErr := appErrors.Clone(appErrors.ErrValidation, field+" is required")
	appErr.Details = map[string]string{field: "is required"}
	return appErr
}
