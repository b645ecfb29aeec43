// Package contexts provides typed helpers around context.Context values. The
// validate and batch packages carry their configuration (registries, tracers,
// flags) this way instead of through globals.
package contexts

import "context"

// EnsureContext returns the first non-nil context, or context.Background when
// every argument is nil.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// IsContextAlive reports whether the context is non-nil and not yet done.
// It never blocks.
func IsContextAlive(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	select {
	case <-ctx.Done():
		return false
	default:
		return true
	}
}

// WithValue is a type-safe wrapper around context.WithValue. A nil ctx is
// replaced with context.Background.
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, key, value)
}

// GetValue is the typed counterpart of ctx.Value. It reports false when ctx is
// nil, the key is absent, or the stored value is not a V.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}
