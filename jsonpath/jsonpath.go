// Package jsonpath renders and parses location paths in JSONPath bracket
// notation:
//   - Named and Key steps are quoted: $['out_d']['a bad example']
//   - Index steps are bare integers: $['out_f'][0]
//   - The empty path (the root value itself) is "$"
//
// Quotes and backslashes inside quoted steps are escaped with a backslash.
//
//nolint:godoclint // Package comment is correctly formatted
package jsonpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nsat/validatron/location"
)

// Sentinel errors for path validation.
var (
	ErrPathEmpty               = errors.New("path cannot be empty")
	ErrPathMustStartWithDollar = errors.New("path must start with $")
	ErrPathEmptySegment        = errors.New("path contains empty segment")
	ErrPathInvalidSyntax       = errors.New("invalid bracket notation syntax")
	ErrPathInvalidIndex        = errors.New("invalid index segment")
)

// Segment is one parsed step of a path. Quoted steps address Named or Key
// locations (which serialize identically), bare integers address Index
// locations.
type Segment struct {
	Text  string
	Index bool
}

// Matches reports whether the segment addresses loc.
func (s Segment) Matches(loc location.Location) bool {
	if s.Index {
		return loc.Kind() == location.KindIndex && loc.String() == s.Text
	}

	return loc.Kind() != location.KindIndex && loc.Text() == s.Text
}

func (s Segment) String() string {
	if s.Index {
		return "[" + s.Text + "]"
	}

	return "['" + escape(s.Text) + "']"
}

// FromLocations renders a path of locations in bracket notation.
//
// Examples:
//   - FromLocations() -> "$"
//   - FromLocations(Named("out_b"), Named("in_a")) -> "$['out_b']['in_a']"
//   - FromLocations(Named("out_f"), Index(0)) -> "$['out_f'][0]"
func FromLocations(path ...location.Location) string {
	var b strings.Builder

	b.WriteString("$")

	for _, loc := range path {
		b.WriteString(Segment{Text: loc.String(), Index: loc.Kind() == location.KindIndex}.String())
	}

	return b.String()
}

// ParsePath parses bracket notation into segments. "$" parses to no segments.
func ParsePath(path string) ([]Segment, error) {
	if path == "" {
		return nil, ErrPathEmpty
	}

	if !strings.HasPrefix(path, "$") {
		return nil, fmt.Errorf("%w, got: %s", ErrPathMustStartWithDollar, path)
	}

	var segments []Segment

	rest := path[1:]

	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: expected '[' at offset %d", ErrPathInvalidSyntax, len(path)-len(rest))
		}

		var (
			seg Segment
			err error
		)

		if len(rest) > 1 && rest[1] == '\'' {
			seg, rest, err = parseQuoted(rest[2:])
		} else {
			seg, rest, err = parseIndex(rest[1:])
		}

		if err != nil {
			return nil, fmt.Errorf("%w: segment %d", err, len(segments))
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

// parseQuoted consumes the body of a quoted step up to and including "']".
func parseQuoted(rest string) (Segment, string, error) {
	var text strings.Builder

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			if i+1 >= len(rest) {
				return Segment{}, "", ErrPathInvalidSyntax
			}

			i++
			text.WriteByte(rest[i])
		case '\'':
			if i+1 >= len(rest) || rest[i+1] != ']' {
				return Segment{}, "", ErrPathInvalidSyntax
			}

			if text.Len() == 0 {
				return Segment{}, "", ErrPathEmptySegment
			}

			return Segment{Text: text.String()}, rest[i+2:], nil
		default:
			text.WriteByte(rest[i])
		}
	}

	return Segment{}, "", ErrPathInvalidSyntax
}

// parseIndex consumes a bare non-negative integer step up to and including "]".
func parseIndex(rest string) (Segment, string, error) {
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return Segment{}, "", ErrPathInvalidSyntax
	}

	if end == 0 {
		return Segment{}, "", ErrPathEmptySegment
	}

	digits := rest[:end]

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || strconv.Itoa(n) != digits {
		return Segment{}, "", fmt.Errorf("%w: %q", ErrPathInvalidIndex, digits)
	}

	return Segment{Text: digits, Index: true}, rest[end+1:], nil
}

// ValidatePath reports whether path is valid bracket notation.
func ValidatePath(path string) error {
	_, err := ParsePath(path)

	return err
}

func escape(text string) string {
	if !strings.ContainsAny(text, `'\`) {
		return text
	}

	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(text)
}
