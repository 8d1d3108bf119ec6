// Package core provides the shared record scaffolding for qcwire:
// computation drivers, model and provenance descriptors, compute errors,
// and the validation-error taxonomy every other package reports through.
//
// What:
//
//   - Driver: the computation kind a record answers (energy, gradient,
//     hessian, properties) with its derivative order.
//   - Model: method name plus optional basis-set name; open schema.
//   - Provenance: creator/version/routine of the producing program; open schema.
//   - ComputeError: typed failure payload carried by outcome records.
//   - ValidationError: the single construction-time failure type, classified
//     by sentinel so callers can branch with errors.Is.
//
// Open schemas (Provenance, Model) keep undeclared payload keys in a sideband
// map that survives decode/encode round-trips with digits intact.
//
// Errors:
//
//   - ErrShape: an array or row length does not match its declared shape.
//   - ErrReference: a name fails to resolve against its target mapping.
//   - ErrMissingField: a required field is absent or empty.
//   - ErrValue: a field value is outside its legal domain.
package core
