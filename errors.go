package logprobs

import (
	"errors"
	"fmt"
	"strings"
)

// Violation kinds attached to FieldError values.
const (
	KindMissingRequiredField = "missing_required_field"
	KindTypeMismatch         = "type_mismatch"
	KindShapeMismatch        = "shape_mismatch"
)

// Common validation errors usable with errors.Is against any violation.
var (
	// ErrValidationFailed is the generic failure when no specific kind applies.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingRequiredField is returned when a required field is absent or null.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrTypeMismatch is returned when a field value cannot be coerced to its declared type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrShapeMismatch is returned when a field expected to hold nested entries is not sequence- or mapping-shaped.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// FieldError describes a single validation failure scoped to a dotted and
// bracketed path from the input root, e.g. "content[2].top_logprobs[0].logprob".
type FieldError struct {
	Path    string
	Kind    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap maps the violation kind to its sentinel so callers can use
// errors.Is to classify individual violations.
func (e FieldError) Unwrap() error {
	switch e.Kind {
	case KindMissingRequiredField:
		return ErrMissingRequiredField
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindShapeMismatch:
		return ErrShapeMismatch
	default:
		return ErrValidationFailed
	}
}

// ValidationErrors is the aggregate of every violation found in a single
// construction attempt. It implements the error interface so the whole set
// can bubble up through a single error return.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Path, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes each violation to errors.Is/errors.As traversal.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i, err := range ve {
		errs[i] = err
	}
	return errs
}

func (ve *ValidationErrors) Add(err FieldError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(path string) bool {
	for _, err := range ve {
		if err.Path == path {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(path string) []string {
	var messages []string
	for _, err := range ve {
		if err.Path == path {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Path] {
			paths = append(paths, err.Path)
			seen[err.Path] = true
		}
	}
	return paths
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error, unwrapping
// as needed. Returns nil when the error carries no validation details.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
