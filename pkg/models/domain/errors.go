package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks lookups for entities that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingField marks requests missing a required field.
	ErrMissingField = errors.New("missing required field")
)

// MissingField returns a validation error naming the absent field.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// NotFound returns a not-found error naming the entity kind and id.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
