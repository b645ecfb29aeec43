package jsonpath

import (
	"testing"

	"github.com/nsat/validatron/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []location.Location
		expected string
	}{
		{name: "root", path: nil, expected: "$"},
		{name: "named", path: []location.Location{location.Named("out_a")}, expected: "$['out_a']"},
		{
			name:     "nested with index",
			path:     []location.Location{location.Named("out_f"), location.Index(0), location.Named("in_b")},
			expected: "$['out_f'][0]['in_b']",
		},
		{
			name:     "key with spaces",
			path:     []location.Location{location.Named("out_d"), location.Key("a bad example")},
			expected: "$['out_d']['a bad example']",
		},
		{
			name:     "escaped quote and backslash",
			path:     []location.Location{location.Key(`it's a\b`)},
			expected: `$['it\'s a\\b']`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FromLocations(tt.path...))
		})
	}
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected []Segment
		wantErr  error
	}{
		{name: "root", path: "$", expected: nil},
		{name: "simple", path: "$['user']", expected: []Segment{{Text: "user"}}},
		{
			name:     "mixed",
			path:     "$['out_f'][12]['in_b']",
			expected: []Segment{{Text: "out_f"}, {Text: "12", Index: true}, {Text: "in_b"}},
		},
		{name: "escapes", path: `$['it\'s a\\b']`, expected: []Segment{{Text: `it's a\b`}}},
		{name: "brackets inside quotes", path: "$['a][b']", expected: []Segment{{Text: "a][b"}}},
		{name: "empty", path: "", wantErr: ErrPathEmpty},
		{name: "no dollar", path: "['user']", wantErr: ErrPathMustStartWithDollar},
		{name: "dot notation", path: "$.user", wantErr: ErrPathInvalidSyntax},
		{name: "unterminated", path: "$['user", wantErr: ErrPathInvalidSyntax},
		{name: "missing close bracket", path: "$['user'", wantErr: ErrPathInvalidSyntax},
		{name: "empty quoted", path: "$['']", wantErr: ErrPathEmptySegment},
		{name: "empty index", path: "$[]", wantErr: ErrPathEmptySegment},
		{name: "negative index", path: "$[-1]", wantErr: ErrPathInvalidIndex},
		{name: "padded index", path: "$[01]", wantErr: ErrPathInvalidIndex},
		{name: "word index", path: "$[abc]", wantErr: ErrPathInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			segments, err := ParsePath(tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Error(t, ValidatePath(tt.path))

				return
			}

			require.NoError(t, err)
			require.NoError(t, ValidatePath(tt.path))
			assert.Equal(t, tt.expected, segments)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := []location.Location{
		location.Named("out_d"),
		location.Key(`a 'quoted' \ key`),
		location.Index(3),
	}

	segments, err := ParsePath(FromLocations(path...))
	require.NoError(t, err)
	require.Len(t, segments, len(path))

	for i, seg := range segments {
		assert.True(t, seg.Matches(path[i]), "segment %d should match %#v", i, path[i])
	}
}

func TestSegment_Matches(t *testing.T) {
	t.Parallel()

	quoted := Segment{Text: "1"}
	index := Segment{Text: "1", Index: true}

	assert.True(t, quoted.Matches(location.Named("1")))
	assert.True(t, quoted.Matches(location.Key("1")))
	assert.False(t, quoted.Matches(location.Index(1)))

	assert.True(t, index.Matches(location.Index(1)))
	assert.False(t, index.Matches(location.Named("1")))
}
