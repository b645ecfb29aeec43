// Package assert provides invariant checks for programmer faults. A failed
// assertion panics: misuse of the validation machinery (reusing a finished
// builder, a negative index, an empty reason list) is a bug in the caller and
// must never surface as a validation failure.
//
// Building with the assertions_disabled tag turns the panicking checks into
// no-ops.
package assert

import (
	"fmt"

	"github.com/nsat/validatron/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error wrapping errors.ErrWrongType.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

func fail(args []any) {
	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}
