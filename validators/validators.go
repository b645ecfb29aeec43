// Package validators is the built-in library of leaf checks. Every check is
// pure and total: it returns nil when the value is acceptable and otherwise a
// single-reason *validation.Error. Attach results with a validation.Builder:
//
//	b.AtNamed("port", validators.Max(cfg.Port, 65535))
package validators

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/nsat/validatron/optional"
	"github.com/nsat/validatron/validation"
)

// RequiredMessage is the reason reported for an absent required value.
const RequiredMessage = "a value is required."

// Check is a reusable check for values of type T. Custom predicates written as
// a Check compose with the built-ins through All.
type Check[T any] func(value T) *validation.Error

// Required fails when value is absent.
func Required[T any](value optional.Value[T]) *validation.Error {
	if value.Empty() {
		return validation.New(RequiredMessage)
	}

	return nil
}

// RequiredPtr fails when value is nil.
func RequiredPtr[T any](value *T) *validation.Error {
	if value == nil {
		return validation.New(RequiredMessage)
	}

	return nil
}

// Equals fails unless value == expected.
func Equals[T comparable](value, expected T) *validation.Error {
	if value != expected {
		return validation.Newf("%v != %v", value, expected)
	}

	return nil
}

// Min fails iff value < bound. The bound is inclusive.
func Min[T cmp.Ordered](value, bound T) *validation.Error {
	if value < bound {
		return validation.Newf("%v is less than %v", value, bound)
	}

	return nil
}

// Max fails iff value > bound. The bound is inclusive.
func Max[T cmp.Ordered](value, bound T) *validation.Error {
	if value > bound {
		return validation.Newf("%v is greater than %v", value, bound)
	}

	return nil
}

// OptionMin applies Min to a present value. Absent values pass.
func OptionMin[T cmp.Ordered](value optional.Value[T], bound T) *validation.Error {
	if v, ok := value.Get(); ok {
		return Min(v, bound)
	}

	return nil
}

// OptionMax applies Max to a present value. Absent values pass.
func OptionMax[T cmp.Ordered](value optional.Value[T], bound T) *validation.Error {
	if v, ok := value.Get(); ok {
		return Max(v, bound)
	}

	return nil
}

// MinLength fails when seq yields fewer than n elements. The whole sequence is
// traversed to count it.
func MinLength[T any](seq iter.Seq[T], n int) *validation.Error {
	if count := length(seq); count < n {
		return validation.Newf("sequence does not have enough elements, it has %d but the minimum is %d", count, n)
	}

	return nil
}

// MaxLength fails when seq yields more than n elements.
func MaxLength[T any](seq iter.Seq[T], n int) *validation.Error {
	if count := length(seq); count > n {
		return validation.Newf("sequence has too many elements, it has %d but the maximum is %d", count, n)
	}

	return nil
}

// MinLengthSlice is MinLength over the elements of a slice.
func MinLengthSlice[S ~[]E, E any](s S, n int) *validation.Error {
	return MinLength(slices.Values(s), n)
}

// MaxLengthSlice is MaxLength over the elements of a slice.
func MaxLengthSlice[S ~[]E, E any](s S, n int) *validation.Error {
	return MaxLength(slices.Values(s), n)
}

// MinLengthMap is MinLength over the entries of a map.
func MinLengthMap[M ~map[K]V, K comparable, V any](m M, n int) *validation.Error {
	return MinLength(maps.Keys(m), n)
}

// MaxLengthMap is MaxLength over the entries of a map.
func MaxLengthMap[M ~map[K]V, K comparable, V any](m M, n int) *validation.Error {
	return MaxLength(maps.Keys(m), n)
}

func length[T any](seq iter.Seq[T]) int {
	count := 0

	for range seq {
		count++
	}

	return count
}

// Predicate fails when pred(value) is false. The name identifies the
// predicate in the reason.
func Predicate[T any](name string, pred func(T) bool, value T) *validation.Error {
	if !pred(value) {
		return validation.Newf("Predicate %q failed", name)
	}

	return nil
}

// All runs every check against value and merges their failures at the
// current node, in the order the checks are given.
func All[T any](value T, checks ...Check[T]) *validation.Error {
	var report *validation.Error

	for _, check := range checks {
		report = validation.Merge(report, check(value))
	}

	return report
}

// AtLeast is Min as a Check.
func AtLeast[T cmp.Ordered](bound T) Check[T] {
	return func(value T) *validation.Error {
		return Min(value, bound)
	}
}

// AtMost is Max as a Check.
func AtMost[T cmp.Ordered](bound T) Check[T] {
	return func(value T) *validation.Error {
		return Max(value, bound)
	}
}

// EqualTo is Equals as a Check.
func EqualTo[T comparable](expected T) Check[T] {
	return func(value T) *validation.Error {
		return Equals(value, expected)
	}
}

// Satisfies is Predicate as a Check.
func Satisfies[T any](name string, pred func(T) bool) Check[T] {
	return func(value T) *validation.Error {
		return Predicate(name, pred, value)
	}
}
