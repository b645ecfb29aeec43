package validation

import (
	"fmt"

	"github.com/nsat/validatron/assert"
	"github.com/nsat/validatron/location"
)

// Builder accumulates the outcomes of one validation routine invocation and
// resolves them into a single report with Finish.
//
// Passing outcomes (nil) contribute nothing, so a location missing from the
// final report means it passed, never that it was skipped. Outcomes registered
// at a location that already holds a failure are merged, not overwritten.
//
// A Builder belongs to a single routine invocation; it is not safe for
// concurrent use and cannot be reused after Finish.
//
// Example:
//
//	func (l listener) Validate() *validation.Error {
//	    b := validation.Build().
//	        AtNamed("port", validators.Min(l.Port, 1)).
//	        AtNamed("tls", validate.Optional(l.TLS))
//
//	    if l.Public && !l.TLS.NonEmpty() {
//	        b.Because("public listeners need TLS")
//	    }
//
//	    return b.Finish()
//	}
type Builder struct {
	pending  *Error
	finished bool
}

// Build returns a fresh Builder with no pending failures.
func Build() *Builder {
	return &Builder{}
}

// At registers outcome at loc. A nil outcome is a no-op.
func (b *Builder) At(loc location.Location, outcome *Error) *Builder {
	b.mustBeLive()
	assert.False(loc.IsZero(), "validation: builder used with a zero location")

	if outcome == nil {
		return b
	}

	b.absorb(&Error{fields: map[location.Location]*Error{loc: outcome}})

	return b
}

// AtNamed registers outcome at location.Named(name).
func (b *Builder) AtNamed(name string, outcome *Error) *Builder {
	return b.At(location.Named(name), outcome)
}

// AtIndex registers outcome at location.Index(i).
func (b *Builder) AtIndex(i int, outcome *Error) *Builder {
	return b.At(location.Index(i), outcome)
}

// AtKey registers outcome at location.Key(key).
func (b *Builder) AtKey(key string, outcome *Error) *Builder {
	return b.At(location.Key(key), outcome)
}

// AtError registers a plain Go error at loc, see FromError.
func (b *Builder) AtError(loc location.Location, err error) *Builder {
	return b.At(loc, FromError(err))
}

// Because records a reason against the value as a whole rather than one of
// its parts. Use it for type-level constraints.
func (b *Builder) Because(reason string) *Builder {
	b.mustBeLive()
	b.absorb(New(reason))

	return b
}

// Becausef is Because with fmt.Sprintf formatting.
func (b *Builder) Becausef(format string, args ...any) *Builder {
	return b.Because(fmt.Sprintf(format, args...))
}

// Merge folds a whole outcome into the current node without adding a
// location, e.g. to inline the checks of an embedded type.
func (b *Builder) Merge(outcome *Error) *Builder {
	b.mustBeLive()

	if outcome != nil {
		b.absorb(outcome)
	}

	return b
}

// HasFailures reports whether any failure has been registered so far. It does
// not consume the builder.
func (b *Builder) HasFailures() bool {
	return b.pending != nil
}

// Finished reports whether Finish has been called.
func (b *Builder) Finished() bool {
	return b.finished
}

// Finish consumes the builder and returns nil when nothing failed, otherwise
// the accumulated report. Calling it twice panics.
func (b *Builder) Finish() *Error {
	assert.False(b.finished, "validation: Finish called twice on the same builder")

	b.finished = true
	report := b.pending
	b.pending = nil

	return report
}

func (b *Builder) mustBeLive() {
	assert.False(b.finished, "validation: builder used after Finish")
}

// absorb merges outcome into the pending report, which the builder owns.
func (b *Builder) absorb(outcome *Error) {
	if b.pending == nil {
		b.pending = outcome.clone()

		return
	}

	b.pending.absorb(outcome)
}
