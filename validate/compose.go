package validate

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/nsat/validatron/location"
	"github.com/nsat/validatron/optional"
	"github.com/nsat/validatron/try"
	"github.com/nsat/validatron/validation"
)

// AlreadyErrorMessage is the reason reported for a failed try.Try.
const AlreadyErrorMessage = "value is already an error"

// Each validates every element of seq and attaches each failure at
// location.Index(position), positions counted in iteration order. Passing
// elements leave no entry.
func Each[V Validator](seq iter.Seq[V]) *validation.Error {
	b := validation.Build()

	i := 0
	for v := range seq {
		b.AtIndex(i, v.Validate())
		i++
	}

	return b.Finish()
}

// Slice is Each over a slice.
//
// Example:
//
//	report := validate.Slice([]port{{Number: 80}, {Number: 0}})
//	// report: {"1": {"number": ["0 is less than 1"]}}
func Slice[S ~[]V, V Validator](s S) *validation.Error {
	return Each(slices.Values(s))
}

// List is a slice that validates its elements.
type List[V Validator] []V

// Validate reports each failing element at its index.
func (l List[V]) Validate() *validation.Error {
	return Slice(l)
}

// Set validates the members of a set. Go maps have no order, so members are
// sorted first and indexed by their sorted position.
func Set[V interface {
	cmp.Ordered
	Validator
}](set map[V]struct{}) *validation.Error {
	return Each(slices.Values(slices.Sorted(maps.Keys(set))))
}

// SetFunc is Set for members that are not cmp.Ordered; compare defines the
// indexing order.
func SetFunc[V comparable](set map[V]struct{}, compare func(a, b V) int, check func(V) *validation.Error) *validation.Error {
	b := validation.Build()

	for i, v := range slices.SortedFunc(maps.Keys(set), compare) {
		b.AtIndex(i, check(v))
	}

	return b.Finish()
}

// EachKey validates every value of seq and attaches each failure at
// location.Key of the rendered key. Repeated keys have their failures merged.
func EachKey[K any, V Validator](seq iter.Seq2[K, V]) *validation.Error {
	b := validation.Build()

	for k, v := range seq {
		b.At(location.KeyOf(k), v.Validate())
	}

	return b.Finish()
}

// Map is EachKey over a map.
//
// Example:
//
//	report := validate.Map(map[string]listener{
//	    "public":   {Port: 443},
//	    "internal": {Port: 70000},
//	})
//	// report: {"internal": {"port": ["70000 is greater than 65535"]}}
func Map[M ~map[K]V, K comparable, V Validator](m M) *validation.Error {
	return EachKey(maps.All(m))
}

// Dict is a map that validates its values.
type Dict[K comparable, V Validator] map[K]V

// Validate reports each failing value under its rendered key.
func (d Dict[K, V]) Validate() *validation.Error {
	return Map(d)
}

// Optional passes when absent and delegates when present.
func Optional[V Validator](value optional.Value[V]) *validation.Error {
	if v, ok := value.Get(); ok {
		return v.Validate()
	}

	return nil
}

// Pointer passes for nil and delegates otherwise.
func Pointer[V Validator](value *V) *validation.Error {
	if value == nil {
		return nil
	}

	return (*value).Validate()
}

// Try delegates on success. A failed Try is reported as a single reason; the
// underlying error is deliberately not inspected.
func Try[V Validator](value try.Try[V]) *validation.Error {
	if value.IsFailure() {
		return validation.New(AlreadyErrorMessage)
	}

	return value.Value.Validate()
}

// Tuple attaches the outcome of each positional component of a tuple-like
// value at location.Index(position).
func Tuple(components ...*validation.Error) *validation.Error {
	b := validation.Build()

	for i, outcome := range components {
		b.AtIndex(i, outcome)
	}

	return b.Finish()
}

// Variant attaches the outcome of a per-variant custom check at
// location.Named(name), next to the variant's own fields.
func Variant(name string, outcome *validation.Error) *validation.Error {
	return validation.Build().AtNamed(name, outcome).Finish()
}
