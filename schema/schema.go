// Package schema attaches validation routines to types explicitly, in code,
// instead of through struct tags or generated methods.
//
// A routine receives the value and a fresh *validation.Builder, registers the
// outcome of every check at its location and returns b.Finish():
//
//	var portSchema = schema.Of(func(p Port, b *validation.Builder) *validation.Error {
//		return b.
//			AtNamed("number", validators.Max(p.Number, 65535)).
//			AtNamed("protocol", validators.Required(p.Protocol)).
//			Finish()
//	})
//
// Types that cannot carry a Validate method (for example third-party types)
// are registered in a Registry instead.
package schema

import (
	"github.com/nsat/validatron/assert"
	"github.com/nsat/validatron/validation"
)

// Routine validates one value of type T. It must return b.Finish().
type Routine[T any] func(value T, b *validation.Builder) *validation.Error

// Schema is a Routine bound to its type. The zero Schema accepts everything.
type Schema[T any] struct {
	routine Routine[T]
}

// Of wraps a routine.
func Of[T any](routine Routine[T]) Schema[T] {
	assert.True(routine != nil, "schema: nil routine")

	return Schema[T]{routine: routine}
}

// Validate runs the routine on value with a fresh builder. A routine that
// returns without finishing its builder is a bug and panics.
func (s Schema[T]) Validate(value T) *validation.Error {
	if s.routine == nil {
		return nil
	}

	b := validation.Build()
	report := s.routine(value, b)

	assert.True(b.Finished(), "schema: routine for %T returned without calling Finish", value)

	return report
}

// Bind pairs the schema with a value so the pair can be passed anywhere a
// validate.Validator is expected.
func (s Schema[T]) Bind(value T) Check {
	return func() *validation.Error {
		return s.Validate(value)
	}
}

// Check is a deferred validation. It has the shape of validate.Validator.
type Check func() *validation.Error

// Validate runs the check. A nil Check passes.
func (c Check) Validate() *validation.Error {
	if c == nil {
		return nil
	}

	return c()
}
