// Package location addresses a single step inside a validated value: a struct
// field or named constraint, a position in a sequence, or a key in a map.
// A path through a value is a sequence of locations.
package location

import (
	"encoding"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"facette.io/natsort"
	"github.com/nsat/validatron/assert"
	"github.com/nsat/validatron/hashing"
)

// Kind discriminates the three kinds of Location.
type Kind uint8

const (
	// KindNamed is a struct field name or a logical constraint name.
	KindNamed Kind = iota + 1
	// KindIndex is a position within an ordered sequence.
	KindIndex
	// KindKey is a map key rendered to text.
	KindKey
)

// String returns the lowercase kind name, e.g. "named".
func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindIndex:
		return "index"
	case KindKey:
		return "key"
	default:
		return "unknown"
	}
}

// Location is an immutable path segment. It is comparable, so two equal
// locations are == and can be used directly as Go map keys.
type Location struct {
	kind  Kind
	text  string
	index int
}

// Named returns the location of a struct field or named constraint.
func Named(name string) Location {
	return Location{kind: KindNamed, text: name}
}

// Index returns the location of the i-th element of a sequence. A negative
// index is a programmer error and panics.
func Index(i int) Location {
	assert.True(i >= 0, "location: index %d is negative", i)

	return Location{kind: KindIndex, index: i}
}

// Key returns the location of a map entry whose key renders as key.
func Key(key string) Location {
	return Location{kind: KindKey, text: key}
}

// KeyOf renders an arbitrary map key to text and returns its Key location.
// Two distinct keys that render identically share a location.
func KeyOf(key any) Location {
	switch typed := key.(type) {
	case string:
		return Key(typed)
	case fmt.Stringer:
		return Key(typed.String())
	case encoding.TextMarshaler:
		if text, err := typed.MarshalText(); err == nil {
			return Key(string(text))
		}
	}

	return Key(fmt.Sprint(key))
}

// Kind returns which kind of location this is.
func (l Location) Kind() Kind {
	return l.kind
}

// IsZero reports whether l is the zero Location, which addresses nothing.
func (l Location) IsZero() bool {
	return l.kind == 0
}

// Text returns the name or key text. It is empty for Index locations.
func (l Location) Text() string {
	return l.text
}

// Position returns the index of an Index location and false for other kinds.
func (l Location) Position() (int, bool) {
	return l.index, l.kind == KindIndex
}

// String renders the location the way it appears as a key in a serialized
// report: the literal text for Named and Key, the decimal integer for Index.
func (l Location) String() string {
	if l.kind == KindIndex {
		return strconv.Itoa(l.index)
	}

	return l.text
}

// GoString makes %#v output readable in test failures.
func (l Location) GoString() string {
	if l.kind == KindIndex {
		return fmt.Sprintf("Index(%d)", l.index)
	}

	kind := l.kind.String()

	return fmt.Sprintf("%s%s(%q)", strings.ToUpper(kind[:1]), kind[1:], l.text)
}

// Equals reports whether both locations address the same step.
func (l Location) Equals(other Location) bool {
	return l == other
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UpdateHash implements hashing.Hashable. The kind is part of the hash, so
// Named("a") and Key("a") hash differently, matching ==.
func (l Location) UpdateHash(h hash.Hash) error {
	if _, err := h.Write([]byte{byte(l.kind)}); err != nil {
		return err
	}

	if l.kind == KindIndex {
		return hashing.HashableInt(l.index).UpdateHash(h)
	}

	return hashing.HashableString(l.text).UpdateHash(h)
}

// Compare orders locations for stable iteration: natural order of the string
// form (so "2" sorts before "10" and "item2" before "item10"), then byte
// order, then kind. It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Location) int {
	as, bs := a.String(), b.String()

	if as != bs {
		less, greater := natsort.Compare(as, bs), natsort.Compare(bs, as)

		switch {
		case less && !greater:
			return -1
		case greater && !less:
			return 1
		default:
			// natsort considers "01" and "1" equal; fall back to byte order.
			return strings.Compare(as, bs)
		}
	}

	switch {
	case a.kind < b.kind:
		return -1
	case a.kind > b.kind:
		return 1
	default:
		return 0
	}
}
