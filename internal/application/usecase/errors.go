// Package usecase contains the application services driven by the HTTP and
// CLI adapters. Use cases translate raw DTO input into domain values, run
// the rate engine, and shape the results for presentation.
package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
)

// ErrValidation is the sentinel every ValidationErrors unwraps to.
var ErrValidation = errors.New("validation failed")

// ValidationErrors collects field-level problems found in a request.
type ValidationErrors []dto.ValidationError

// Error implements error.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrValidation.
func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}

// add appends a field error.
func (v *ValidationErrors) add(field string, value any, err error) {
	*v = append(*v, dto.ValidationError{Field: field, Message: err.Error(), Value: value})
}

// errOrNil returns nil for an empty collection so callers can return it directly.
func (v ValidationErrors) errOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
