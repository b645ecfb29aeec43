// Package validate defines the Validator capability and the rules that
// compose validators of parts into validators of wholes.
//
// A product type validates each field at location.Named(field); a sequence
// validates each element at location.Index(position); a map validates each
// value at location.Key(key); an optional or pointer field is only checked
// when present. A sum type (an interface with one struct per variant) lets
// each variant validate itself: unit variants pass, tuple-like variants use
// Tuple, struct-like variants use Named fields, and Variant attaches a
// per-variant custom check.
//
// Validate is the top-level entry point for arbitrary values. It also records
// metrics, creates a span when a tracer is configured, and returns failures as
// Go errors.
package validate
