package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenHashable = errors.New("broken hashable")

type brokenHashable struct{}

func (brokenHashable) UpdateHash(hash.Hash) error {
	return errBrokenHashable
}

type pair struct {
	left, right HashableString
}

func (p pair) UpdateHash(h hash.Hash) error {
	if err := p.left.UpdateHash(h); err != nil {
		return err
	}

	return p.right.UpdateHash(h)
}

func TestHashFunctions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fn     HashFunc
		length int
	}{
		{name: "sha256", fn: Sha256, length: 64},
		{name: "xxh3", fn: Xxh3, length: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, err := tt.fn(HashableString("consistency test"))
			require.NoError(t, err)
			assert.Len(t, first, tt.length)

			second, err := tt.fn(HashableString("consistency test"))
			require.NoError(t, err)
			assert.Equal(t, first, second)

			other, err := tt.fn(HashableString("something else"))
			require.NoError(t, err)
			assert.NotEqual(t, first, other)
		})
	}
}

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	for _, fn := range []HashFunc{Sha256, Xxh3} {
		result, err := fn(brokenHashable{})
		require.ErrorIs(t, err, errBrokenHashable)
		assert.Empty(t, result)
	}
}

func TestHashableString_IsLengthPrefixed(t *testing.T) {
	t.Parallel()

	first, err := Xxh3(pair{left: "ab", right: "c"})
	require.NoError(t, err)

	second, err := Xxh3(pair{left: "a", right: "bc"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashableInt(t *testing.T) {
	t.Parallel()

	zero, err := Xxh3(HashableInt(0))
	require.NoError(t, err)

	one, err := Xxh3(HashableInt(1))
	require.NoError(t, err)

	assert.NotEqual(t, zero, one)
}
