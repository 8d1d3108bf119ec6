// Package molecule holds the minimal molecular-system record other qcwire
// records reference: element symbols, flat Cartesian geometry, charge and
// multiplicity, plus a small periodic-table lookup for symbol validation.
//
// What:
//
//   - Molecule: symbols + flat 3N geometry + molecular_charge/_multiplicity.
//   - New: validating constructor filling schema defaults and deep-copying.
//   - Z / Symbol: element symbol to atomic number and back.
//
// Geometry arrives flattened; validation casts it against (N, 3) through the
// ndarray package, so a wrong element count fails with a shape error naming
// the expected shape.
//
// Errors:
//
//   - ErrUnknownElement: a symbol not present in the periodic table.
//   - core.ErrShape / core.ErrValue / core.ErrMissingField via ValidationError
//     for geometry, multiplicity, and required-field failures.
package molecule
