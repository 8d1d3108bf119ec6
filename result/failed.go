package result

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/katalvlaran/qcwire/core"
)

// FailedOperation is the envelope a runner emits when a computation never
// produced a Result: the verbatim input that was attempted plus the error
// that stopped it. Unlike Result it carries no schema envelope; consumers
// recognize it by context.
type FailedOperation struct {
	ID        string            `json:"id,omitempty"`
	InputData json.RawMessage   `json:"input_data,omitempty"`
	Success   bool              `json:"success"`
	Error     core.ComputeError `json:"error"`
	Extras    map[string]any    `json:"extras,omitempty"`
}

// NewFailedOperation validates f and returns a deep copy. Success must be
// false and the error payload complete.
func NewFailedOperation(f FailedOperation) (*FailedOperation, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if f.InputData != nil {
		f.InputData = append(json.RawMessage(nil), f.InputData...)
	}
	f.Error = *f.Error.Clone()
	f.Extras = copyMap(f.Extras)
	return &f, nil
}

func (f *FailedOperation) validate() error {
	if f.Success {
		return core.Invalidf("failed_operation.success", core.ErrValue,
			"success must be false on a failed operation")
	}
	return f.Error.Validate()
}

type failedAlias FailedOperation

// UnmarshalJSON decodes strictly and validates, mirroring NewFailedOperation.
func (f *FailedOperation) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var a failedAlias
	if err := dec.Decode(&a); err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			return err
		}
		return core.Invalidf("failed_operation", core.ErrValue, "%v", err)
	}
	v := FailedOperation(a)
	if err := v.validate(); err != nil {
		return err
	}
	*f = v
	return nil
}
