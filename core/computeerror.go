package core

import "strings"

// ComputeError describes why a computation failed. It carries a coarse
// machine-readable type ("input_error", "convergence_error", ...) and a
// human-readable message, plus free-form extras.
type ComputeError struct {
	ErrorType    string         `json:"error_type"`
	ErrorMessage string         `json:"error_message"`
	Extras       map[string]any `json:"extras,omitempty"`
}

// Validate requires both error_type and error_message.
func (e *ComputeError) Validate() error {
	if strings.TrimSpace(e.ErrorType) == "" {
		return Invalidf("error.error_type", ErrMissingField, "error_type is required")
	}
	if strings.TrimSpace(e.ErrorMessage) == "" {
		return Invalidf("error.error_message", ErrMissingField, "error_message is required")
	}
	return nil
}

// Error satisfies the error interface so a ComputeError can travel through
// ordinary Go error paths.
func (e *ComputeError) Error() string {
	return e.ErrorType + ": " + e.ErrorMessage
}

// Clone returns a deep copy sharing no mutable state with e.
func (e *ComputeError) Clone() *ComputeError {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Extras != nil {
		cp.Extras = make(map[string]any, len(e.Extras))
		for k, v := range e.Extras {
			cp.Extras[k] = v
		}
	}
	return &cp
}
