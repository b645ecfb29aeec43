// Package try holds the result of an operation that may already have failed
// before validation runs, e.g. a field that could not be parsed.
package try

// Try is either a Value (Error is nil) or a failure.
type Try[A any] struct {
	Value A
	Error error
}

// Of pairs a value with the error of the call that produced it.
func Of[A any](value A, err error) Try[A] {
	if err != nil {
		return Failure[A](err)
	}

	return Success(value)
}

// Success wraps a value.
func Success[A any](value A) Try[A] {
	return Try[A]{Value: value}
}

// Failure wraps an error.
func Failure[A any](err error) Try[A] {
	return Try[A]{Error: err}
}

func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}

func (t Try[A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	if t.IsSuccess() {
		return t.Value
	}

	return defaultValue
}
