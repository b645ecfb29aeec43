package validate

import (
	"context"

	"github.com/nsat/validatron/contexts"
	"github.com/nsat/validatron/schema"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const (
	// wantWrappedErrorsKey holds the wrapped errors preference, see WithWrappedError.
	wantWrappedErrorsKey contextKey = "wantWrappedErrors"

	// registryKey holds the *schema.Registry consulted for types without a
	// Validate method.
	registryKey contextKey = "registry"

	// tracerKey holds the tracer used to create a span per Validate call.
	tracerKey contextKey = "tracer"
)

// WithWrappedError controls whether Validate wraps failures with
// errors.ErrValidation (the default) or returns them as they are.
// The report stays recoverable with validation.AsError either way.
//
// Example:
//
//	ctx = validate.WithWrappedError(ctx, false)
//	err := validate.Validate(ctx, cfg)
//	report, _ := validation.AsError(err)
func WithWrappedError(ctx context.Context, wantWrapped bool) context.Context {
	return contexts.WithValue[contextKey, bool](ctx, wantWrappedErrorsKey, wantWrapped)
}

// wantWrappedErrors defaults to true.
func wantWrappedErrors(ctx context.Context) bool {
	value, found := contexts.GetValue[contextKey, bool](ctx, wantWrappedErrorsKey)
	if found {
		return value
	}

	return true
}

// WithRegistry makes Validate fall back to the given registry for values
// that implement none of the validation interfaces.
func WithRegistry(ctx context.Context, registry *schema.Registry) context.Context {
	return contexts.WithValue[contextKey, *schema.Registry](ctx, registryKey, registry)
}

// RegistryFromContext returns the registry set with WithRegistry, if any.
func RegistryFromContext(ctx context.Context) (*schema.Registry, bool) {
	return contexts.GetValue[contextKey, *schema.Registry](ctx, registryKey)
}

// WithTracer makes Validate run inside an OpenTelemetry span named
// "validate". Without a tracer no spans are created.
//
// Example:
//
//	ctx = validate.WithTracer(ctx, otel.Tracer("config-loader"))
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return contexts.WithValue[contextKey, trace.Tracer](ctx, tracerKey, tracer)
}

// TracerFromContext returns the tracer set with WithTracer, if any.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	return contexts.GetValue[contextKey, trace.Tracer](ctx, tracerKey)
}
