//go:build !assertions_disabled

package assert_test

import (
	"testing"

	"github.com/nsat/validatron/assert"
	commonerrors "github.com/nsat/validatron/errors"
	"github.com/stretchr/testify/require"
)

func TestType_Success(t *testing.T) {
	t.Parallel()

	value, err := assert.Type[string]("hello")
	require.NoError(t, err)
	require.Equal(t, "hello", value)
}

func TestType_Failure(t *testing.T) {
	t.Parallel()

	value, err := assert.Type[int]("hello")
	require.Error(t, err)
	require.ErrorIs(t, err, commonerrors.ErrWrongType)
	require.Contains(t, err.Error(), "expected type int, but received string")
	require.Zero(t, value)
}

func TestTrue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []any
		message string
	}{
		{name: "no args", args: nil, message: "assertion failed"},
		{name: "format string", args: []any{"index %d is negative", -1}, message: "index -1 is negative"},
		{name: "non string first arg", args: []any{42, "x"}, message: "assertion failed: [42 x]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NotPanics(t, func() { assert.True(true, tt.args...) })
			require.PanicsWithValue(t, tt.message, func() { assert.True(false, tt.args...) })
		})
	}
}

func TestFalse(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { assert.False(false) })
	require.Panics(t, func() { assert.False(true) })
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { assert.NotNil(1) })
	require.Panics(t, func() { assert.NotNil(nil) })
}

func TestNonEmptySlice(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { assert.NonEmptySlice([]string{"a"}) })
	require.PanicsWithValue(t, "need at least one reason", func() {
		assert.NonEmptySlice([]string{}, "need at least one reason")
	})
}
