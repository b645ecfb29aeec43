// Package errors holds the infrastructure-level sentinel errors shared by the
// validatron packages. Validation failures themselves are never represented
// here: they are *validation.Error values. These sentinels describe what
// happened around a validation run (the run failed, a routine panicked, a
// value had an unexpected type).
package errors

import "errors"

var (
	// ErrValidation wraps every failed top-level validation returned as a Go error.
	ErrValidation = errors.New("validation failed")

	// ErrPanicRecovery marks an error produced from a recovered panic. A panicking
	// validation routine is an implementation fault, not a validation failure.
	ErrPanicRecovery = errors.New("panic recovered")

	// ErrWrongType is returned when a value does not have the type a caller expected.
	ErrWrongType = errors.New("wrong type")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is exactly one, otherwise errors.Join of all of them.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
