package validation_test

import (
	"errors"
	"testing"

	"github.com/nsat/validatron/location"
	"github.com/nsat/validatron/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SuccessIsSilence(t *testing.T) {
	t.Parallel()

	b := validation.Build()

	report := b.
		AtNamed("a", nil).
		AtIndex(0, nil).
		AtKey("k", nil).
		AtError(location.Named("e"), nil).
		Merge(nil).
		Finish()

	assert.Nil(t, report)
	assert.True(t, b.Finished())
}

func TestBuilder_Exhaustive(t *testing.T) {
	t.Parallel()

	b := validation.Build()

	b.AtNamed("first", validation.New("1"))
	b.AtNamed("second", nil)
	b.AtNamed("third", validation.New("3"))
	b.AtIndex(4, validation.New("4"))

	require.True(t, b.HasFailures())

	report := b.Finish()

	assert.Equal(t, []location.Location{
		location.Index(4),
		location.Named("first"),
		location.Named("third"),
	}, report.Locations())
}

func TestBuilder_SameLocationMerges(t *testing.T) {
	t.Parallel()

	report := validation.Build().
		AtNamed("field", validation.New("too small")).
		AtNamed("field", validation.New("not even")).
		Finish()

	field, ok := report.Get(location.Named("field"))
	require.True(t, ok)
	assert.Equal(t, []string{"too small", "not even"}, field.Reasons())
}

func TestBuilder_Because(t *testing.T) {
	t.Parallel()

	t.Run("alone stays unstructured", func(t *testing.T) {
		t.Parallel()

		report := validation.Build().
			Because("first").
			Becausef("%s and %s", "second", "third").
			Finish()

		assert.Equal(t, []string{"first", "second and third"}, report.Reasons())
	})

	t.Run("with located failures moves under errors", func(t *testing.T) {
		t.Parallel()

		report := validation.Build().
			Because("type level").
			AtNamed("dummy", validation.New("x")).
			Finish()

		expected := structured(
			location.Named("dummy"), validation.New("x"),
			validation.ErrorsKey, validation.New("type level"),
		)

		assert.True(t, expected.Equal(report), "%#v", report)
	})
}

func TestBuilder_AtError(t *testing.T) {
	t.Parallel()

	report := validation.Build().
		AtError(location.Key("host"), errors.New("no such host")).
		Finish()

	host, ok := report.Get(location.Key("host"))
	require.True(t, ok)
	assert.Equal(t, []string{"no such host"}, host.Reasons())
}

func TestBuilder_MergeInlines(t *testing.T) {
	t.Parallel()

	embedded := validation.Build().AtNamed("inner", validation.New("x")).Finish()

	report := validation.Build().
		AtNamed("outer", validation.New("y")).
		Merge(embedded).
		Finish()

	assert.Equal(t, []location.Location{location.Named("inner"), location.Named("outer")}, report.Locations())
}

func TestBuilder_OutcomesAreNotModified(t *testing.T) {
	t.Parallel()

	outcome := validation.New("x")

	report := validation.Build().
		Merge(outcome).
		Because("y").
		Finish()

	assert.Equal(t, []string{"x", "y"}, report.Reasons())
	assert.Equal(t, []string{"x"}, outcome.Reasons())
}

func TestBuilder_Misuse(t *testing.T) {
	t.Parallel()

	t.Run("finish twice", func(t *testing.T) {
		t.Parallel()

		b := validation.Build()
		b.Finish()

		assert.Panics(t, func() { b.Finish() })
	})

	t.Run("use after finish", func(t *testing.T) {
		t.Parallel()

		b := validation.Build()
		b.Finish()

		assert.Panics(t, func() { b.Because("late") })
		assert.Panics(t, func() { b.AtNamed("late", nil) })
		assert.Panics(t, func() { b.Merge(nil) })
	})

	t.Run("zero location", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { validation.Build().At(location.Location{}, validation.New("x")) })
	})
}
