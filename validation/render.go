package validation

import (
	"bytes"
	"encoding/json"
	"hash"
	"strconv"
	"strings"

	"github.com/nsat/validatron/hashing"
	"github.com/nsat/validatron/jsonpath"
	"github.com/nsat/validatron/location"
	"gopkg.in/yaml.v3"
)

// Violation is one reason together with the path of the node it belongs to.
type Violation struct {
	Path    []location.Location
	Message string
}

// JSONPath renders the violation's path in bracket notation, e.g.
// $['out_d']['a bad example']['in_a'].
func (v Violation) JSONPath() string {
	return jsonpath.FromLocations(v.Path...)
}

// String renders the violation as "<path>: <message>", e.g.
// $['out_b']['in_a']: must be set.
func (v Violation) String() string {
	return v.JSONPath() + ": " + v.Message
}

// Flatten lists every reason in the report with its full path. Sub-locations
// are visited in location.Compare order and reasons in their recorded order,
// so the result is deterministic.
func (e *Error) Flatten() []Violation {
	var out []Violation

	e.flatten(nil, &out)

	return out
}

func (e *Error) flatten(prefix []location.Location, out *[]Violation) {
	if e == nil {
		return
	}

	if e.fields == nil {
		for _, reason := range e.reasons {
			*out = append(*out, Violation{Path: prefix, Message: reason})
		}

		return
	}

	for loc, sub := range e.All() {
		path := make([]location.Location, len(prefix), len(prefix)+1)
		copy(path, prefix)

		sub.flatten(append(path, loc), out)
	}
}

// Error implements the error interface: every violation, "; " separated.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	violations := e.Flatten()
	parts := make([]string, len(violations))

	for i, v := range violations {
		parts[i] = v.String()
	}

	return strings.Join(parts, "; ")
}

// Lookup returns the sub-report at a bracket-notation path such as
// "$['out_b']['in_a']". A well-formed path that leads nowhere returns
// (nil, nil): that part of the value passed. Quoted steps match Named and Key
// locations alike; when both exist their reports are merged.
func (e *Error) Lookup(path string) (*Error, error) {
	segments, err := jsonpath.ParsePath(path)
	if err != nil {
		return nil, err
	}

	current := e

	for _, seg := range segments {
		if !current.IsStructured() {
			return nil, nil
		}

		var next *Error

		for loc, sub := range current.All() {
			if seg.Matches(loc) {
				next = Merge(next, sub)
			}
		}

		if next == nil {
			return nil, nil
		}

		current = next
	}

	return current, nil
}

// renderEntry is one serialized key of a structured report.
type renderEntry struct {
	key     string
	isIndex bool
	report  *Error
}

// entries groups sub-locations by their serialized form. Locations that render
// identically (Named("a") and Key("a"), or Named("1") and Index(1)) share one
// key and their reports are merged, so nothing is lost on output.
func (e *Error) entries() []renderEntry {
	var out []renderEntry

	for loc, sub := range e.All() {
		key := loc.String()
		isIndex := loc.Kind() == location.KindIndex

		// location.Compare sorts by string form first, so equal keys are adjacent.
		if n := len(out); n > 0 && out[n-1].key == key {
			out[n-1].report = Merge(out[n-1].report, sub)
			out[n-1].isIndex = out[n-1].isIndex && isIndex

			continue
		}

		out = append(out, renderEntry{key: key, isIndex: isIndex, report: sub})
	}

	return out
}

// MarshalJSON renders unstructured reports as arrays of strings and
// structured reports as objects keyed by location, in deterministic order.
// A nil report renders as null.
//
// Example output:
//
//	{"out_a":["x","y"],"out_f":{"2":["two"],"10":["ten"]}}
func (e *Error) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	if err := e.writeJSON(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *Error) writeJSON(buf *bytes.Buffer) error {
	if e == nil {
		buf.WriteString("null")

		return nil
	}

	if e.fields == nil {
		reasons, err := json.Marshal(e.reasons)
		if err != nil {
			return err
		}

		buf.Write(reasons)

		return nil
	}

	buf.WriteByte('{')

	for i, entry := range e.entries() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.key)
		if err != nil {
			return err
		}

		buf.Write(key)
		buf.WriteByte(':')

		if err := entry.report.writeJSON(buf); err != nil {
			return err
		}
	}

	buf.WriteByte('}')

	return nil
}

// MarshalYAML implements yaml.Marshaler with the same tree as MarshalJSON.
// Index keys are emitted as integers, everything else as strings.
func (e *Error) MarshalYAML() (any, error) {
	return e.yamlNode(), nil
}

func (e *Error) yamlNode() *yaml.Node {
	if e == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}

	if e.fields == nil {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, reason := range e.reasons {
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: reason})
		}

		return node
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, entry := range e.entries() {
		tag := "!!str"
		if entry.isIndex {
			tag = "!!int"
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: entry.key},
			entry.report.yamlNode())
	}

	return node
}

// UpdateHash implements hashing.Hashable over the canonical form of the
// report: shape, then reasons in order or locations in location.Compare order.
func (e *Error) UpdateHash(h hash.Hash) error {
	if _, err := h.Write([]byte{byte(e.Shape())}); err != nil {
		return err
	}

	switch {
	case e == nil:
		return nil
	case e.fields == nil:
		if err := hashing.HashableInt(len(e.reasons)).UpdateHash(h); err != nil {
			return err
		}

		for _, reason := range e.reasons {
			if err := hashing.HashableString(reason).UpdateHash(h); err != nil {
				return err
			}
		}
	default:
		if err := hashing.HashableInt(len(e.fields)).UpdateHash(h); err != nil {
			return err
		}

		for loc, sub := range e.All() {
			if err := loc.UpdateHash(h); err != nil {
				return err
			}

			if err := sub.UpdateHash(h); err != nil {
				return err
			}
		}
	}

	return nil
}

// Fingerprint returns a stable xxh3 digest of the report. Equal reports have
// equal fingerprints, which makes repeated validations cheap to compare.
func (e *Error) Fingerprint() (string, error) {
	return hashing.Xxh3(e)
}

// GoString gives a compact constructor-like rendering for test failures.
func (e *Error) GoString() string {
	if e == nil {
		return "nil"
	}

	var b strings.Builder

	e.writeGo(&b)

	return b.String()
}

func (e *Error) writeGo(b *strings.Builder) {
	if e.fields == nil {
		b.WriteString("Unstructured(")

		for i, reason := range e.reasons {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(strconv.Quote(reason))
		}

		b.WriteString(")")

		return
	}

	b.WriteString("Structured{")

	i := 0

	for loc, sub := range e.All() {
		if i > 0 {
			b.WriteString(", ")
		}

		i++

		b.WriteString(loc.GoString())
		b.WriteString(": ")
		sub.writeGo(b)
	}

	b.WriteString("}")
}
