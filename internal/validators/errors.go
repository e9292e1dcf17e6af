package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidDataProvided is the sentinel every [ValidationError] unwraps to.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// ValidationError carries per-field validation messages keyed by the JSON
// field name, e.g. {"name": ["Required"]}.
type ValidationError struct {
	FieldErrors map[string][]string
}

// NewFieldError builds a [ValidationError] with a single message for field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{FieldErrors: map[string][]string{field: {message}}}
}

func (e *ValidationError) Error() string {
	fields := e.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.FieldErrors[f], "; ")))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDataProvided, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}

// Fields returns the names of the failing fields in sorted order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// FirstMessage returns the first message of the first failing field in
// sorted field order, or "" when there are no field errors.
func (e *ValidationError) FirstMessage() string {
	for _, f := range e.Fields() {
		if msgs := e.FieldErrors[f]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

func (e *ValidationError) add(field, message string) {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string][]string)
	}
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}
