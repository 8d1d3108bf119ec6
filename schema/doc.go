// Package schema routes interchange payloads to their typed decoders. A
// payload names its own family through schema_name; Detect reads the
// envelope, DecodeJSON and DecodeYAML produce a validated record, and
// Encode writes the canonical JSON form (stable key order, so encoding the
// same record twice is byte-identical).
//
// YAML input is bridged through JSON: the YAML document is converted and
// then decoded by the same strict, revalidating decoders the JSON path uses.
package schema
