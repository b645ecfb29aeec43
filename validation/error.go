// Package validation holds the structured, location-aware failure report
// produced by validation routines, the merge rules that combine reports, and
// the Builder a routine uses to assemble one.
//
// A report is a *Error. A nil *Error means success: there is no such thing as
// an empty report. Every non-nil *Error has one of two shapes:
//
//   - Unstructured: an ordered list of reasons attributed to the current node.
//   - Structured: a non-empty map from location.Location to a nested *Error.
//
// A *Error is immutable once returned. Merge never modifies its inputs.
package validation

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/nsat/validatron/assert"
	"github.com/nsat/validatron/location"
)

// Shape tells the two kinds of report node apart.
type Shape uint8

const (
	// ShapeUnstructured is a flat list of reasons with no sub-locations.
	ShapeUnstructured Shape = iota + 1
	// ShapeStructured is a mapping from sub-locations to nested reports.
	ShapeStructured
)

// String returns "unstructured", "structured" or "unknown".
func (s Shape) String() string {
	switch s {
	case ShapeUnstructured:
		return "unstructured"
	case ShapeStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// ErrorsKey is where bare reasons end up when they are merged with a
// structured report.
var ErrorsKey = location.Key("errors") //nolint:gochecknoglobals

// Error is a validation report. See the package documentation for its shapes.
type Error struct {
	reasons []string
	fields  map[location.Location]*Error
}

// New returns an unstructured report with a single reason.
func New(reason string) *Error {
	return &Error{reasons: []string{reason}}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Unstructured returns a report holding the given reasons in order. At least
// one reason is required.
func Unstructured(reasons ...string) *Error {
	assert.NonEmptySlice(reasons, "validation: unstructured error needs at least one reason")

	return &Error{reasons: slices.Clone(reasons)}
}

// Structured returns a report with the given sub-reports. Nil sub-reports are
// successes and are dropped; if nothing is left the result is nil.
func Structured(fields map[location.Location]*Error) *Error {
	out := make(map[location.Location]*Error, len(fields))

	for loc, sub := range fields {
		if sub == nil {
			continue
		}

		assert.False(loc.IsZero(), "validation: zero location in structured error")

		out[loc] = sub
	}

	if len(out) == 0 {
		return nil
	}

	return &Error{fields: out}
}

// FromError adopts an arbitrary Go error. Nil stays nil, a wrapped *Error is
// unwrapped, and anything else becomes a single unstructured reason.
//
// A nil *Error stored in a non-nil error interface (the result of returning
// Builder.Finish from a func that returns error) is success and yields nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	if report, ok := err.(*Error); ok && report == nil { //nolint:errorlint
		return nil
	}

	if report, ok := AsError(err); ok {
		return report
	}

	return New(err.Error())
}

// AsError finds a non-nil *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var report *Error
	if errors.As(err, &report) && report != nil {
		return report, true
	}

	return nil, false
}

// Err returns e as an error, mapping a nil report to a nil error. Always use
// it (never a plain conversion) when handing a report to code that expects an
// error, so that success stays a nil interface.
func (e *Error) Err() error {
	if e == nil {
		return nil
	}

	return e
}

// Shape returns the shape of a report, or zero for nil (success).
func (e *Error) Shape() Shape {
	if e == nil {
		return 0
	}

	if e.fields != nil {
		return ShapeStructured
	}

	return ShapeUnstructured
}

// IsStructured reports whether e is a non-nil structured report.
func (e *Error) IsStructured() bool {
	return e != nil && e.fields != nil
}

// IsUnstructured reports whether e is a non-nil unstructured report.
func (e *Error) IsUnstructured() bool {
	return e != nil && e.fields == nil
}

// Reasons returns a copy of the reasons of an unstructured report, or nil.
func (e *Error) Reasons() []string {
	if !e.IsUnstructured() {
		return nil
	}

	return slices.Clone(e.reasons)
}

// Locations returns the sub-locations of a structured report in
// location.Compare order, or nil.
func (e *Error) Locations() []location.Location {
	if !e.IsStructured() {
		return nil
	}

	return slices.SortedFunc(maps.Keys(e.fields), location.Compare)
}

// All iterates over the sub-reports of a structured report in
// location.Compare order.
func (e *Error) All() iter.Seq2[location.Location, *Error] {
	return func(yield func(location.Location, *Error) bool) {
		for _, loc := range e.Locations() {
			if !yield(loc, e.fields[loc]) {
				return
			}
		}
	}
}

// Get returns the sub-report at loc. A missing location means that part of the
// value passed.
func (e *Error) Get(loc location.Location) (*Error, bool) {
	if !e.IsStructured() {
		return nil, false
	}

	sub, ok := e.fields[loc]

	return sub, ok
}

// At walks a path of locations from e. The empty path returns e itself.
func (e *Error) At(path ...location.Location) (*Error, bool) {
	current := e

	for _, loc := range path {
		next, ok := current.Get(loc)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, current != nil
}

// Len is the number of reasons (unstructured) or sub-locations (structured).
func (e *Error) Len() int {
	if e == nil {
		return 0
	}

	if e.fields != nil {
		return len(e.fields)
	}

	return len(e.reasons)
}

// Count is the total number of reasons anywhere in the report.
func (e *Error) Count() int {
	if e == nil {
		return 0
	}

	if e.fields == nil {
		return len(e.reasons)
	}

	total := 0
	for _, sub := range e.fields {
		total += sub.Count()
	}

	return total
}

// Equal reports deep equality. Reason order matters, map order does not.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}

	if e.Shape() != other.Shape() {
		return false
	}

	if e.fields == nil {
		return slices.Equal(e.reasons, other.reasons)
	}

	return maps.EqualFunc(e.fields, other.fields, (*Error).Equal)
}

// Merge combines two reports without modifying either:
//
//   - Unstructured + Unstructured: reasons of a, then reasons of b.
//   - Structured + Structured: union of locations, shared locations merged
//     recursively.
//   - Unstructured + Structured, in either order: the unstructured side is
//     moved under ErrorsKey and the two are merged as structured reports.
//
// Nil is the identity on both sides.
//
// Example:
//
//	validation.Merge(validation.New("a"), validation.New("b"))
//	// ["a","b"]
//
//	validation.Merge(
//	    validation.Structured(map[location.Location]*validation.Error{
//	        location.Named("dummy"): validation.New("x"),
//	    }),
//	    validation.New("b"))
//	// {"dummy":["x"],"errors":["b"]}
func Merge(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	out := a.clone()
	out.absorb(b)

	return out
}

// clone makes a shallow copy whose top-level slice and map are owned by the
// copy. Sub-reports are shared, which is safe because they are never mutated.
func (e *Error) clone() *Error {
	if e.fields != nil {
		return &Error{fields: maps.Clone(e.fields)}
	}

	return &Error{reasons: slices.Clone(e.reasons)}
}

// absorb merges other into e in place. e must be owned by the caller.
func (e *Error) absorb(other *Error) {
	switch {
	case e.fields == nil && other.fields == nil:
		e.reasons = append(e.reasons, other.reasons...)
	case e.fields != nil && other.fields != nil:
		for loc, sub := range other.fields {
			e.fields[loc] = Merge(e.fields[loc], sub)
		}
	case e.fields == nil:
		e.fields = map[location.Location]*Error{ErrorsKey: {reasons: e.reasons}}
		e.reasons = nil
		e.absorb(other)
	default:
		e.absorb(&Error{fields: map[location.Location]*Error{ErrorsKey: other}})
	}
}
