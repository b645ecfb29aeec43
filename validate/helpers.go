package validate

import (
	"context"

	"github.com/nsat/validatron/validation"
)

// Func turns a function into a Validator. A nil function always passes.
//
// Example:
//
//	check := validate.Func(func() *validation.Error {
//	    return validators.Max(port, 65535)
//	})
func Func(f func() *validation.Error) Validator {
	return validatorFunc(f)
}

type validatorFunc func() *validation.Error

var _ Validator = validatorFunc(nil)

func (f validatorFunc) Validate() *validation.Error {
	if f == nil {
		return nil
	}

	return f()
}

// FuncErr wraps a plain error-returning check into a HasValidate so it can be
// passed to Validate. A nil function always passes.
//
// Example:
//
//	err := validate.Validate(ctx, validate.FuncErr(func() error {
//	    if port < 1 || port > 65535 {
//	        return fmt.Errorf("port %d is out of range", port)
//	    }
//	    return nil
//	}))
func FuncErr(f func() error) HasValidate {
	return &validateFunc{validate: f}
}

type validateFunc struct {
	validate func() error
}

var _ HasValidate = (*validateFunc)(nil)

func (v *validateFunc) Validate() error {
	if v.validate != nil {
		return v.validate()
	}

	return nil
}

// FuncWithContext is FuncErr for checks that need a context.
func FuncWithContext(f func(ctx context.Context) error) HasValidateWithContext {
	return &validateFuncWithContext{validate: f}
}

type validateFuncWithContext struct {
	validate func(ctx context.Context) error
}

var _ HasValidateWithContext = (*validateFuncWithContext)(nil)

func (v *validateFuncWithContext) Validate(ctx context.Context) error {
	if v.validate != nil {
		return v.validate(ctx)
	}

	return nil
}

// Adapt converts a HasValidate into a Validator, keeping the structure of a
// returned *validation.Error and turning any other error into a single
// reason.
func Adapt(v HasValidate) Validator {
	return Func(func() *validation.Error {
		if v == nil {
			return nil
		}

		return validation.FromError(v.Validate())
	})
}
