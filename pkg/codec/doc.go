// Package codec implements the minimal JSON discipline used at the work
// order boundary: exact encoding of records to flat object literals and
// best-effort extraction of named scalar values from request bodies.
//
// # Scope
//
// The decoder is a deliberate, explicitly-scoped scanner over one flat JSON
// object of known string keys. It is not a JSON parser:
//
//   - nested objects and arrays are not understood
//   - escaped quotes inside string values terminate the value early
//   - numeric and boolean values are returned as their raw text
//
// Inputs outside that scope yield best-effort extraction, never a panic.
// The encoding direction is exact: values produced by Object round-trip
// through Extract as long as the value contains no literal '}' and no
// unescaped '"'.
//
// Callers that need full JSON (error envelopes, health probes) should use
// encoding/json via pkg/serializer instead.
package codec
