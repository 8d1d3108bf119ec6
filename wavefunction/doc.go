// Package wavefunction models the optional wavefunction payload a result
// record may carry: named orbital, density, Fock, eigenvalue and occupation
// quantities per spin channel, stored as flat numeric arrays next to string
// pointer fields that name them.
//
// What:
//
//   - Raw: the untrimmed payload as callers provide it (basis, restricted
//     flag, "scf_"-prefixed storage arrays, pointer fields).
//   - Properties: the validated, protocol-trimmed record. Field values are
//     reachable by name; matrices are shape-checked against (nbf, nbf) and
//     vectors against (nbf,) of the payload's basis.
//   - Build: applies a protocol.Wavefunction policy to a Raw payload and
//     produces a Properties record, or nil when nothing is retained.
//
// The field registry is closed: a payload key that is not basis, restricted,
// a known quantity, or its "scf_" storage counterpart fails validation.
//
// Errors:
//
//   - core.ErrMissingField: restricted or basis absent.
//   - core.ErrValue: unknown field name.
//   - core.ErrReference: a retained pointer whose storage does not exist.
//   - core.ErrShape: storage not castable to the basis shape.
package wavefunction
