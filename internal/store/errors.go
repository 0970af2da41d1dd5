package store

import (
	"errors"
	"fmt"
)

// Base errors for matching with errors.Is. The concrete types below carry
// the field/kind detail; raw gorm errors never cross the store boundary for
// expected conditions.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrNotFound     = errors.New("not found")
	ErrConstraint   = errors.New("constraint violation")
)

// InvalidInputError is returned when a supplied value fails validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// DuplicateError is returned when a uniqueness rule would be violated.
type DuplicateError struct {
	Kind string
}

func (e *DuplicateError) Error() string { return e.Kind + " already exists" }

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// NotFoundError is returned when a record does not exist or is inactive.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string { return e.Kind + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConstraintError is returned when a reference does not resolve, e.g. an
// unknown category name.
type ConstraintError struct {
	Kind string
}

func (e *ConstraintError) Error() string { return "invalid " + e.Kind }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }
