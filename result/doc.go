// Package result models the outcome record of a single computation: the
// molecule and model it ran against, the driver, the scalar or array it
// returned, an optional protocol-trimmed wavefunction, and the success/error
// union.
//
// What:
//
//   - Result: the validated outcome record. New applies the record's
//     wavefunction protocol during construction, so a returned Result
//     already holds the trimmed payload.
//   - ReturnValue: tagged union for return_result. A literal scalar, a flat
//     array, or a reference naming a retained wavefunction field.
//   - Properties: the common computed quantities (basis-function and atom
//     counts, SCF energies) with an open sideband for everything else.
//   - FailedOperation: the envelope a runner emits when a computation never
//     produced a Result; success must be false and an error is mandatory.
//
// A Result is internally linked: success=false requires an error payload
// and success=true forbids one, and a reference return_result must resolve
// against the record's own wavefunction after trimming.
//
// Errors: *core.ValidationError throughout, classified by the core
// sentinels.
package result
