package validation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	apperrors "tavola/internal/errors"
)

// New returns the configured validator shared by all controllers.
func New() *validatorv10.Validate {
	v := validatorv10.New(validatorv10.WithRequiredStructEnabled())

	// zip codes are exact 5-digit strings; the resolver never normalizes
	v.RegisterValidation("zip5", func(fl validatorv10.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 5 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return v
}

// DecodeAndValidate decodes the JSON body into out and runs struct
// validation, converting failures into a ValidationError with per-field
// details.
func DecodeAndValidate(r *http.Request, out interface{}, v *validatorv10.Validate) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}

	if err := v.Struct(out); err != nil {
		return toValidationError(err)
	}

	return nil
}

// Validate runs struct validation only, for payloads not read from a body.
func Validate(out interface{}, v *validatorv10.Validate) error {
	if err := v.Struct(out); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(err.Error())
	}

	details := make([]apperrors.ValidationDetail, 0, len(ve))
	for _, fe := range ve {
		details = append(details, apperrors.ValidationDetail{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}

	return apperrors.NewValidationError("validation failed", details...)
}

func fieldPath(fe validatorv10.FieldError) string {
	// drop the root struct name: "CreateZoneRequest.Name" -> "name"
	path := fe.StructNamespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return fe.Field()
	}
	return strings.ToLower(path[:1]) + path[1:]
}

func fieldMessage(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "zip5":
		return "must be a 5-digit zip code"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
