// SPDX-License-Identifier: MIT
// Package core: validation-error taxonomy.
// Every construction-time failure in qcwire is a *ValidationError wrapping one
// of the classification sentinels below. Tests and callers branch with
// errors.Is; messages stay local and precise (which field, why).

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates an array or coefficient-row length that does not
	// match the shape implied by sibling fields.
	ErrShape = errors.New("core: shape mismatch")

	// ErrReference indicates a name that does not resolve against the
	// mapping it must point into.
	ErrReference = errors.New("core: unresolvable reference")

	// ErrMissingField indicates a required field that is absent or empty.
	ErrMissingField = errors.New("core: missing required field")

	// ErrValue indicates a field value outside its legal domain.
	ErrValue = errors.New("core: invalid value")
)

// ValidationError reports a single construction-time validation failure.
// Field is the dotted path of the offending field (for example
// "electron_shells[1].coefficients[0]"), Msg the human-readable reason,
// and Err the classification sentinel.
//
// Construction either fully succeeds or fails with a ValidationError;
// no record is ever returned half-validated.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

// Error renders "invalid <field>: <msg>".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// Unwrap exposes the classification sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

// Invalidf builds a ValidationError for field, classified by class, with an
// fmt-style message.
func Invalidf(field string, class error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field: field,
		Msg:   fmt.Sprintf(format, args...),
		Err:   class,
	}
}
