//go:build assertions_disabled

package assert

// True asserts that the given value is true. Disabled by build tag.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false. Disabled by build tag.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// NotNil asserts that the given value is not nil. Disabled by build tag.
func NotNil(value any, args ...any) {
	// Intentionally left blank
}

// NonEmptySlice asserts that the slice has at least one element. Disabled by build tag.
func NonEmptySlice[T any](slice []T, args ...any) {
	// Intentionally left blank
}
