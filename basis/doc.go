// Package basis models Gaussian basis sets for quantum-chemistry
// interchange: electron shells, effective-core-potential terms, per-element
// centers, and named sets mapping atoms onto centers.
//
// What:
//
//   - ElectronShell: shared exponents plus contraction-coefficient rows,
//     spherical or cartesian, possibly fused over several angular momenta.
//   - ECPPotential: one effective-core-potential term (scalar or spinorbit).
//   - Center: the shells and potentials one atom kind carries.
//   - Set: named centers plus an atom-to-center map; computes the total
//     basis-function count (nbf) for the mapped atom sequence.
//
// Why:
//
//   - Interchange payloads carry basis data as nested records whose shape
//     invariants (row lengths, fused-shell row counts, atom-map references)
//     must hold before any consumer trusts derived counts.
//
// Shape rules:
//
//   - Every coefficient row is as long as the exponent list.
//   - A fused shell (more than one angular momentum) carries exactly one
//     coefficient row per momentum.
//   - A single-momentum shell may carry any positive number of rows
//     (general contraction).
//   - Spherical shells span 2l+1 functions per momentum, cartesian shells
//     (l+1)(l+2)/2.
//
// Errors:
//
//   - ErrFusedShell: fused-shell row-count violation.
//   - core.ErrShape / core.ErrReference / core.ErrValue / core.ErrMissingField
//     through *core.ValidationError for all other construction failures.
package basis
