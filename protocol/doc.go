// Package protocol defines the data-retention policies outcome records
// apply while they are built: how much optional heavy data (orbital
// matrices, trajectory snapshots) survives into the validated record.
//
// What:
//
//   - Wavefunction: none | all | orbitals_and_eigenvalues | return_results.
//     Retain maps (policy, restricted, provided fields) to the retained
//     named-field subset as one pure lookup, so record construction never
//     scatters protocol conditionals.
//   - Trajectory: all | initial_and_final | final | none. Select maps a
//     step count to the retained 0-based indices, preserving order.
//
// Defaults:
//
//   - An absent wavefunction protocol means none: the wavefunction payload
//     is dropped entirely.
//   - An absent trajectory protocol means all: every step survives.
//
// Restricted (closed-shell) wavefunctions share one orbital set between spin
// channels, so a restricted record drops every beta-channel ("*_b") field
// before the policy runs.
//
// Errors:
//
//   - core.ErrValue through *core.ValidationError for unknown policy
//     spellings.
package protocol
