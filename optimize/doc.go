// Package optimize models the outcome record of a geometry optimization:
// initial and final molecule, the per-step result trajectory, per-step
// energies, and the success/error union.
//
// The trajectory protocol is applied during construction, so a returned
// Optimization already holds only the selected steps. Energies are never
// trimmed; they stay as provided even when the trajectory shrinks.
//
// Errors: *core.ValidationError throughout, classified by the core
// sentinels.
package optimize
