package validate

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/nsat/validatron/contexts"
	"github.com/nsat/validatron/errors"
	"github.com/nsat/validatron/logger"
	"github.com/nsat/validatron/utils"
	"github.com/nsat/validatron/validation"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Validator is the validation capability. Validate must be total (never
// panic) and exhaustive: it checks every constraint and reports every failure,
// returning nil when the value is valid.
type Validator interface {
	Validate() *validation.Error
}

// HasValidate is implemented by types that validate themselves with a plain
// Go error. A returned *validation.Error (wrapped or not) keeps its structure,
// and a nil *validation.Error counts as success even though the error
// interface holding it is not nil.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext is HasValidate for validation that needs a context,
// e.g. to honour cancellation.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate is the top-level entry point. It validates value with the first
// mechanism that applies:
//
//  1. nil or a typed nil: success
//  2. Validator
//  3. HasValidate
//  4. HasValidateWithContext
//  5. a schema registered in the context's registry (see WithRegistry)
//  6. otherwise a warning is logged and the value is accepted
//
// A failure is returned wrapped in errors.ErrValidation unless wrapping was
// disabled with WithWrappedError; validation.AsError recovers the report.
// A panicking routine is a bug, not a failure: the panic is recovered and
// returned wrapped in errors.ErrPanicRecovery.
//
// Example:
//
//	if err := validate.Validate(ctx, cfg); err != nil {
//	    report, _ := validation.AsError(err)
//	    for _, v := range report.Flatten() {
//	        fmt.Println(v)
//	    }
//	}
func Validate(ctx context.Context, value any) error {
	//nolint:contextcheck // EnsureContext preserves context inheritance
	ctx = contexts.EnsureContext(ctx)
	typeName := fmt.Sprintf("%T", value)

	ctx, span := startSpan(ctx, typeName)
	defer span.End()

	start := time.Now()
	outcome, canValidate, err := validateInternal(ctx, value)
	elapsed := time.Since(start)

	if err != nil {
		recordMetrics(typeName, canValidate, true, elapsed, 0)
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation routine panicked")
		logger.Get(ctx).Error("Validation routine panicked", "type", typeName, "error", err)

		return err
	}

	report := validation.FromError(outcome)
	hasError := outcome != nil

	recordMetrics(typeName, canValidate, hasError, elapsed, report.Count())
	span.SetAttributes(
		attribute.Bool("validate.has_error", hasError),
		attribute.Int("validate.failures", report.Count()))

	if !hasError {
		return nil
	}

	span.SetStatus(codes.Error, "validation failed")
	logger.Get(ctx).Debug("Validation failed", "type", typeName, "failures", report.Count())

	if !wantWrappedErrors(ctx) {
		return outcome
	}

	return fmt.Errorf("%w: %w", errors.ErrValidation, outcome)
}

// validateInternal dispatches to the validation mechanism of value. outcome is
// the validation result; err is only set for a recovered panic.
func validateInternal(ctx context.Context, value any) (outcome error, canValidate bool, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			outcome, canValidate = nil, true
			err = utils.GetPanicRecoveryError(recovered, debug.Stack())
		}
	}()

	if utils.IsNilish(value) {
		return nil, false, nil
	}

	switch v := value.(type) {
	case Validator:
		return v.Validate().Err(), true, nil
	case HasValidate:
		return successAsNil(v.Validate()), true, nil
	case HasValidateWithContext:
		return successAsNil(v.Validate(ctx)), true, nil
	}

	if registry, ok := RegistryFromContext(ctx); ok {
		if check, found := registry.Lookup(value); found {
			return check.Validate().Err(), true, nil
		}
	}

	logger.Get(ctx).Warn("Validate called on unsupported type",
		"type", fmt.Sprintf("%T", value))

	return nil, false, nil
}

// successAsNil maps a nil *validation.Error hidden in a non-nil error back to
// nil. Any other error is returned untouched so its chain survives.
func successAsNil(err error) error {
	if err != nil && validation.FromError(err) == nil {
		return nil
	}

	return err
}

func startSpan(ctx context.Context, typeName string) (context.Context, trace.Span) {
	tracer, ok := TracerFromContext(ctx)
	if !ok || tracer == nil {
		return ctx, noop.Span{}
	}

	return tracer.Start(ctx, "validate",
		trace.WithAttributes(attribute.String("validate.type", typeName)))
}
