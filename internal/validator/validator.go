package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	ierr "opeec-backend/internal/errors"
)

// validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// Violations returns the field level failures of req, or nil when req is valid.
func Violations(req any) validator.ValidationErrors {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if ierr.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}

// ValidateRequest validates req and returns an ErrValidation marked error
// describing every failing field.
func ValidateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		fieldErrs := Violations(req)
		if len(fieldErrs) == 0 {
			return ierr.Wrap(err, "request validation failed", ierr.ErrValidation)
		}
		return ierr.WithHint(
			ierr.NewError(Describe(fieldErrs), ierr.ErrValidation),
			"Request validation failed",
			ierr.ErrValidation,
		)
	}
	return nil
}

// Describe renders field errors as "field: rule" pairs.
func Describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), rule))
	}
	return strings.Join(parts, "; ")
}
