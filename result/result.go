// SPDX-License-Identifier: MIT

package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/katalvlaran/qcwire/core"
	"github.com/katalvlaran/qcwire/molecule"
	"github.com/katalvlaran/qcwire/protocol"
	"github.com/katalvlaran/qcwire/wavefunction"
)

const (
	// SchemaName is the interchange envelope name for result payloads.
	SchemaName = "qcschema_output"
	// SchemaVersion is the result payload revision this package speaks.
	SchemaVersion = 1
)

// Protocols selects how much optional heavy data a result retains. The zero
// value means "defaults" and is omitted from payloads.
type Protocols struct {
	Wavefunction protocol.Wavefunction `json:"wavefunction,omitempty"`
}

// Raw collects the fields of a result payload before validation. The
// wavefunction stays untrimmed until New applies the record's protocols.
type Raw struct {
	ID           string
	Molecule     molecule.Molecule
	Driver       core.Driver
	Model        core.Model
	Keywords     map[string]any
	Protocols    Protocols
	Properties   Properties
	ReturnResult ReturnValue
	Wavefunction *wavefunction.Raw
	Success      bool
	Error        *core.ComputeError
	Provenance   core.Provenance
	Extras       map[string]any
}

// Result is a validated outcome record. Construct through New or by decoding
// a payload; either way the embedded wavefunction is already trimmed to the
// record's protocol and every cross-field invariant holds.
type Result struct {
	SchemaName    string                   `json:"schema_name,omitempty"`
	SchemaVersion int                      `json:"schema_version,omitempty"`
	ID            string                   `json:"id,omitempty"`
	Molecule      molecule.Molecule        `json:"molecule"`
	Driver        core.Driver              `json:"driver"`
	Model         core.Model               `json:"model"`
	Keywords      map[string]any           `json:"keywords,omitempty"`
	Protocols     Protocols                `json:"protocols,omitzero"`
	Properties    Properties               `json:"properties,omitzero"`
	ReturnResult  ReturnValue              `json:"return_result,omitzero"`
	Wavefunction  *wavefunction.Properties `json:"wavefunction,omitempty"`
	Success       bool                     `json:"success"`
	Error         *core.ComputeError       `json:"error,omitempty"`
	Provenance    core.Provenance          `json:"provenance"`
	Extras        map[string]any           `json:"extras,omitempty"`
}

// New validates raw and returns the finished record. Validation order is
// fixed: molecule, driver, model, provenance, protocol spelling, wavefunction
// trimming, return_result resolution, then the success/error linkage. The
// input is deep-copied; the returned Result is treated as immutable.
//
// Errors: *core.ValidationError classified by the core sentinels, plus
// everything molecule, basis, and wavefunction validation can raise.
func New(raw Raw) (*Result, error) {
	mol, err := molecule.New(raw.Molecule)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(raw.Driver)) == "" {
		return nil, core.Invalidf("result.driver", core.ErrMissingField, "driver is required")
	}
	driver, err := core.ParseDriver(string(raw.Driver))
	if err != nil {
		return nil, err
	}
	if err := raw.Model.Validate(); err != nil {
		return nil, err
	}
	if err := raw.Provenance.Validate(); err != nil {
		return nil, err
	}

	policy, err := protocol.ParseWavefunction(string(raw.Protocols.Wavefunction))
	if err != nil {
		return nil, err
	}
	wfn, err := wavefunction.Build(raw.Wavefunction, policy)
	if err != nil {
		return nil, err
	}

	if ref, ok := raw.ReturnResult.Reference(); ok {
		if wfn == nil || !wfn.Has(ref) {
			return nil, core.Invalidf("result.return_result", core.ErrReference,
				"return quantity %q does not exist", ref)
		}
	}

	if raw.Success && raw.Error != nil {
		return nil, core.Invalidf("result.error", core.ErrValue,
			"success is true but an error payload is present")
	}
	if !raw.Success && raw.Error == nil {
		return nil, core.Invalidf("result.error", core.ErrMissingField,
			"a failed result must carry an error")
	}
	if raw.Error != nil {
		if err := raw.Error.Validate(); err != nil {
			return nil, err
		}
	}

	return &Result{
		SchemaName:    SchemaName,
		SchemaVersion: SchemaVersion,
		ID:            raw.ID,
		Molecule:      mol,
		Driver:        driver,
		Model:         raw.Model.Clone(),
		Keywords:      copyMap(raw.Keywords),
		Protocols:     raw.Protocols,
		Properties:    raw.Properties.clone(),
		ReturnResult:  raw.ReturnResult,
		Wavefunction:  wfn,
		Success:       raw.Success,
		Error:         raw.Error.Clone(),
		Provenance:    raw.Provenance.Clone(),
		Extras:        copyMap(raw.Extras),
	}, nil
}

// resultWire mirrors Result with the untrimmed wavefunction payload.
type resultWire struct {
	SchemaName    string             `json:"schema_name"`
	SchemaVersion int                `json:"schema_version"`
	ID            string             `json:"id"`
	Molecule      molecule.Molecule  `json:"molecule"`
	Driver        core.Driver        `json:"driver"`
	Model         core.Model         `json:"model"`
	Keywords      map[string]any     `json:"keywords"`
	Protocols     Protocols          `json:"protocols"`
	Properties    Properties         `json:"properties"`
	ReturnResult  ReturnValue        `json:"return_result"`
	Wavefunction  *wavefunction.Raw  `json:"wavefunction"`
	Success       bool               `json:"success"`
	Error         *core.ComputeError `json:"error"`
	Provenance    core.Provenance    `json:"provenance"`
	Extras        map[string]any     `json:"extras"`
}

// UnmarshalJSON decodes strictly and funnels through New, so a decoded
// Result carries the same guarantees as a constructed one. Re-decoding an
// encoded record reproduces it field for field: protocol trimming is
// idempotent on its own output.
func (r *Result) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var w resultWire
	if err := dec.Decode(&w); err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			return err
		}
		return core.Invalidf("result", core.ErrValue, "%v", err)
	}
	if w.SchemaName != "" && w.SchemaName != SchemaName {
		return core.Invalidf("result.schema_name", core.ErrValue,
			"unexpected schema_name %q, want %q", w.SchemaName, SchemaName)
	}
	if w.SchemaVersion != 0 && w.SchemaVersion != SchemaVersion {
		return core.Invalidf("result.schema_version", core.ErrValue,
			"unsupported schema_version %d", w.SchemaVersion)
	}

	built, err := New(Raw{
		ID:           w.ID,
		Molecule:     w.Molecule,
		Driver:       w.Driver,
		Model:        w.Model,
		Keywords:     w.Keywords,
		Protocols:    w.Protocols,
		Properties:   w.Properties,
		ReturnResult: w.ReturnResult,
		Wavefunction: w.Wavefunction,
		Success:      w.Success,
		Error:        w.Error,
		Provenance:   w.Provenance,
		Extras:       w.Extras,
	})
	if err != nil {
		return err
	}
	*r = *built
	return nil
}

// ResolveReturn flattens the record's return value: a literal scalar comes
// back as a one-element slice, a literal array as a copy, and a reference
// through the wavefunction storage it names.
//
// Errors: core.ErrMissingField when no return value was provided.
func (r *Result) ResolveReturn() ([]float64, error) {
	switch r.ReturnResult.Kind() {
	case ReturnScalar:
		v, _ := r.ReturnResult.Scalar()
		return []float64{v}, nil
	case ReturnArray:
		v, _ := r.ReturnResult.Array()
		return v, nil
	case ReturnReference:
		ref, _ := r.ReturnResult.Reference()
		return r.Wavefunction.Resolve(ref)
	}
	return nil, core.Invalidf("result.return_result", core.ErrMissingField,
		"no return value was provided")
}

// copyMap shallow-copies an extras-style map, preserving nil.
func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
