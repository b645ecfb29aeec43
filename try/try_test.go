package try

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errParse = errors.New("parse failed")

func TestOf(t *testing.T) {
	t.Parallel()

	n, err := strconv.Atoi("42")
	ok := Of(n, err)
	require.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())

	val, err := ok.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, val)

	n, err = strconv.Atoi("forty-two")
	bad := Of(n, err)
	require.True(t, bad.IsFailure())

	val, err = bad.Get()
	require.Error(t, err)
	assert.Equal(t, 0, val, "a failure never exposes its value")
}

func TestSuccessAndFailure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Success("x").GetOrElse("default"))
	assert.Equal(t, "default", Failure[string](errParse).GetOrElse("default"))

	_, err := Failure[int](errParse).Get()
	require.ErrorIs(t, err, errParse)
}
