package validators

import (
	"maps"
	"slices"
	"testing"

	"github.com/nsat/validatron/optional"
	"github.com/nsat/validatron/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reasonOf(t *testing.T, report *validation.Error) string {
	t.Helper()

	require.NotNil(t, report)

	reasons := report.Reasons()
	require.Len(t, reasons, 1)

	return reasons[0]
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Required(optional.Some(0)))
	assert.Equal(t, "a value is required.", reasonOf(t, Required(optional.None[int]())))

	value := "set"
	assert.Nil(t, RequiredPtr(&value))
	assert.Equal(t, "a value is required.", reasonOf(t, RequiredPtr[string](nil)))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Equals("a", "a"))
	assert.Equal(t, "1 != 2", reasonOf(t, Equals(1, 2)))
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		report   *validation.Error
		expected string
	}{
		{name: "min equal bound", report: Min(5, 5)},
		{name: "min above bound", report: Min(6, 5)},
		{name: "min below bound", report: Min(4, 5), expected: "4 is less than 5"},
		{name: "max equal bound", report: Max(5, 5)},
		{name: "max below bound", report: Max(4, 5)},
		{name: "max above bound", report: Max(6, 5), expected: "6 is greater than 5"},
		{name: "floats", report: Min(0.5, 1.5), expected: "0.5 is less than 1.5"},
		{name: "strings", report: Max("b", "a"), expected: "b is greater than a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.expected == "" {
				assert.Nil(t, tt.report)

				return
			}

			assert.Equal(t, tt.expected, reasonOf(t, tt.report))
		})
	}
}

func TestOptionMinMax(t *testing.T) {
	t.Parallel()

	assert.Nil(t, OptionMin(optional.None[int](), 5))
	assert.Nil(t, OptionMax(optional.None[int](), 5))
	assert.Nil(t, OptionMin(optional.Some(5), 5))
	assert.Nil(t, OptionMax(optional.Some(5), 5))
	assert.Equal(t, "4 is less than 5", reasonOf(t, OptionMin(optional.Some(4), 5)))
	assert.Equal(t, "6 is greater than 5", reasonOf(t, OptionMax(optional.Some(6), 5)))
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MinLengthSlice([]int{}, 0))
	assert.Nil(t, MinLengthSlice([]int{1, 2, 3}, 3))
	assert.Nil(t, MaxLengthSlice([]int{1, 2, 3}, 3))

	short := reasonOf(t, MinLengthSlice([]int{1, 2}, 3))
	assert.Equal(t, "sequence does not have enough elements, it has 2 but the minimum is 3", short)
	assert.Contains(t, short, "2")
	assert.Contains(t, short, "3")

	long := reasonOf(t, MaxLengthSlice([]int{1, 2, 3}, 2))
	assert.Equal(t, "sequence has too many elements, it has 3 but the maximum is 2", long)

	m := map[string]int{"a": 1, "b": 2}
	assert.Nil(t, MinLengthMap(m, 2))
	assert.NotNil(t, MaxLengthMap(m, 1))

	assert.NotNil(t, MinLength(maps.Values(m), 3))
	assert.Nil(t, MaxLength(slices.Values([]string{}), 0))
}

func TestLength_TraversesLazySequences(t *testing.T) {
	t.Parallel()

	produced := 0
	seq := func(yield func(int) bool) {
		for i := range 4 {
			produced++

			if !yield(i) {
				return
			}
		}
	}

	assert.Equal(t, "sequence has too many elements, it has 4 but the maximum is 1", reasonOf(t, MaxLength(seq, 1)))
	assert.Equal(t, 4, produced)
}

func TestPredicate(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }

	assert.Nil(t, Predicate("even", even, 4))
	assert.Equal(t, `Predicate "even" failed`, reasonOf(t, Predicate("even", even, 3)))
}

func TestAll(t *testing.T) {
	t.Parallel()

	odd := func(n int) bool { return n%2 == 1 }

	assert.Nil(t, All(7, AtLeast(1), AtMost(10), Satisfies("odd", odd)))
	assert.Nil(t, All[int](7))

	report := All(12, AtLeast(1), AtMost(10), Satisfies("odd", odd), EqualTo(7))
	require.NotNil(t, report)
	assert.Equal(t, []string{
		"12 is greater than 10",
		`Predicate "odd" failed`,
		"12 != 7",
	}, report.Reasons())
}

func TestCustomCheck(t *testing.T) {
	t.Parallel()

	var nonBlank Check[string] = func(s string) *validation.Error {
		if s == "" {
			return validation.New("must not be blank")
		}

		return nil
	}

	assert.Equal(t, []string{"must not be blank", "sequence does not have enough elements, it has 0 but the minimum is 1"},
		All("", nonBlank, func(s string) *validation.Error { return MinLengthSlice([]byte(s), 1) }).Reasons())
}
