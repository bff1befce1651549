package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

const (
	ErrCodeNotFound             = "not_found"
	ErrCodeValidation           = "validation_error"
	ErrCodeDatabase             = "database_error"
	ErrCodeSystem               = "system_error"
	ErrCodeSettingsUnavailable  = "settings_unavailable"
	ErrCodeInvalidCatalogUnit   = "invalid_catalog_unit"
	ErrCodeInvalidCatalogOption = "invalid_catalog_option"
)

// Sentinel marks. Errors produced by this module are marked with one of these
// so callers can classify them with errors.Is regardless of wrapping.
var (
	ErrNotFound             = errors.New(ErrCodeNotFound)
	ErrValidation           = errors.New(ErrCodeValidation)
	ErrDatabase             = errors.New(ErrCodeDatabase)
	ErrSystem               = errors.New(ErrCodeSystem)
	ErrSettingsUnavailable  = errors.New(ErrCodeSettingsUnavailable)
	ErrInvalidCatalogUnit   = errors.New(ErrCodeInvalidCatalogUnit)
	ErrInvalidCatalogOption = errors.New(ErrCodeInvalidCatalogOption)

	// maps errors to http status codes; first match wins
	statusCodeMap = []struct {
		mark   error
		status int
		code   string
	}{
		{ErrSettingsUnavailable, http.StatusServiceUnavailable, ErrCodeSettingsUnavailable},
		{ErrInvalidCatalogUnit, http.StatusBadRequest, ErrCodeInvalidCatalogUnit},
		{ErrInvalidCatalogOption, http.StatusBadRequest, ErrCodeInvalidCatalogOption},
		{ErrValidation, http.StatusBadRequest, ErrCodeValidation},
		{ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
		{ErrDatabase, http.StatusInternalServerError, ErrCodeDatabase},
		{ErrSystem, http.StatusInternalServerError, ErrCodeSystem},
	}
)

// NewError creates a new error with the given message marked with reference.
func NewError(msg string, reference error) error {
	return errors.Mark(errors.New(msg), reference)
}

// NewErrorf is NewError with formatting.
func NewErrorf(reference error, format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), reference)
}

// WithHint marks err with reference and attaches a user facing hint.
func WithHint(err error, hint string, reference error) error {
	return errors.Mark(errors.WithHint(err, hint), reference)
}

// Wrap adds context to err and marks it with reference.
func Wrap(err error, msg string, reference error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), reference)
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error, including catalog validation failures
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidCatalogUnit) ||
		errors.Is(err, ErrInvalidCatalogOption)
}

// IsSettingsUnavailable checks if pricing failed because no percentage settings exist
func IsSettingsUnavailable(err error) bool {
	return errors.Is(err, ErrSettingsUnavailable)
}

// HTTPStatus maps an error to the status code a handler should answer with.
func HTTPStatus(err error) int {
	for _, entry := range statusCodeMap {
		if errors.Is(err, entry.mark) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// Code returns the machine readable code for err.
func Code(err error) string {
	for _, entry := range statusCodeMap {
		if errors.Is(err, entry.mark) {
			return entry.code
		}
	}
	return ErrCodeSystem
}

// Hint returns the first user facing hint attached to err, or fallback.
func Hint(err error, fallback string) string {
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		return fallback
	}
	return hints[0]
}
