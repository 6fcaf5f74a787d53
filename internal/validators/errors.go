package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/task-tracker/models"
)

var (
	// ErrValidationFailed is matched by every Errors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedType is returned when no schema exists for the value.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Errors is the list of rule violations found in one request.
type Errors []models.FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Constraint)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, ", ")
}

// Is reports true for ErrValidationFailed so callers can use errors.Is.
func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsFieldErrors extracts the violations from err, if any.
func AsFieldErrors(err error) ([]models.FieldError, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
