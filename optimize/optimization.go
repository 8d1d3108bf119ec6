// SPDX-License-Identifier: MIT

package optimize

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/qcwire/core"
	"github.com/katalvlaran/qcwire/molecule"
	"github.com/katalvlaran/qcwire/protocol"
	"github.com/katalvlaran/qcwire/result"
)

const (
	// SchemaName is the interchange envelope name for optimization payloads.
	SchemaName = "qcschema_optimization_output"
	// SchemaVersion is the optimization payload revision this package speaks.
	SchemaVersion = 1
)

// Protocols selects how much optional heavy data an optimization retains.
// The zero value means "defaults" and is omitted from payloads.
type Protocols struct {
	Trajectory protocol.Trajectory `json:"trajectory,omitempty"`
}

// InputSpecification is the per-step computation the optimizer was asked to
// run: a model, optionally a driver and keywords.
type InputSpecification struct {
	Driver   core.Driver    `json:"driver,omitempty"`
	Model    core.Model     `json:"model"`
	Keywords map[string]any `json:"keywords,omitempty"`
}

// Raw collects the fields of an optimization payload before validation.
// Trajectory steps are raw result payloads; New validates each and then
// applies the trajectory protocol.
type Raw struct {
	ID                 string
	InitialMolecule    molecule.Molecule
	FinalMolecule      molecule.Molecule
	Trajectory         []result.Raw
	Energies           []float64
	Protocols          Protocols
	InputSpecification *InputSpecification
	Success            bool
	Error              *core.ComputeError
	Provenance         core.Provenance
	Extras             map[string]any
}

// Optimization is a validated geometry-optimization record. Construct
// through New or by decoding a payload; the trajectory already reflects the
// record's protocol either way.
type Optimization struct {
	SchemaName         string              `json:"schema_name,omitempty"`
	SchemaVersion      int                 `json:"schema_version,omitempty"`
	ID                 string              `json:"id,omitempty"`
	InitialMolecule    molecule.Molecule   `json:"initial_molecule"`
	FinalMolecule      molecule.Molecule   `json:"final_molecule"`
	Trajectory         []result.Result     `json:"trajectory,omitempty"`
	Energies           []float64           `json:"energies,omitempty"`
	Protocols          Protocols           `json:"protocols,omitzero"`
	InputSpecification *InputSpecification `json:"input_specification,omitempty"`
	Success            bool                `json:"success"`
	Error              *core.ComputeError  `json:"error,omitempty"`
	Provenance         core.Provenance     `json:"provenance"`
	Extras             map[string]any      `json:"extras,omitempty"`
}

// New validates raw and returns the finished record: molecules first, then
// the protocol spelling, the input specification, every trajectory step, the
// step selection, and the success/error linkage. Energies are copied as
// provided; only the trajectory is trimmed.
//
// Errors: *core.ValidationError classified by the core sentinels, plus
// everything molecule and result validation can raise. Step failures carry
// the offending trajectory index in the field path.
func New(raw Raw) (*Optimization, error) {
	steps := make([]result.Result, 0, len(raw.Trajectory))
	for i, stepRaw := range raw.Trajectory {
		r, err := result.New(stepRaw)
		if err != nil {
			return nil, core.Invalidf(stepField(i), classOf(err), "%v", err)
		}
		steps = append(steps, *r)
	}
	return assemble(raw, steps)
}

// assemble finishes construction once trajectory steps are validated.
func assemble(raw Raw, steps []result.Result) (*Optimization, error) {
	initial, err := molecule.New(raw.InitialMolecule)
	if err != nil {
		return nil, err
	}
	final, err := molecule.New(raw.FinalMolecule)
	if err != nil {
		return nil, err
	}
	if err := raw.Provenance.Validate(); err != nil {
		return nil, err
	}

	policy, err := protocol.ParseTrajectory(string(raw.Protocols.Trajectory))
	if err != nil {
		return nil, err
	}

	spec := raw.InputSpecification
	if spec != nil {
		s := *spec
		if strings.TrimSpace(string(s.Driver)) != "" {
			d, err := core.ParseDriver(string(s.Driver))
			if err != nil {
				return nil, err
			}
			s.Driver = d
		}
		if err := s.Model.Validate(); err != nil {
			return nil, err
		}
		s.Model = s.Model.Clone()
		s.Keywords = copyMap(s.Keywords)
		spec = &s
	}

	if raw.Success && raw.Error != nil {
		return nil, core.Invalidf("optimization.error", core.ErrValue,
			"success is true but an error payload is present")
	}
	if !raw.Success && raw.Error == nil {
		return nil, core.Invalidf("optimization.error", core.ErrMissingField,
			"a failed optimization must carry an error")
	}
	if raw.Error != nil {
		if err := raw.Error.Validate(); err != nil {
			return nil, err
		}
	}

	var kept []result.Result
	if indices := policy.Select(len(steps)); len(indices) > 0 {
		kept = make([]result.Result, 0, len(indices))
		for _, i := range indices {
			kept = append(kept, steps[i])
		}
	}

	var energies []float64
	if raw.Energies != nil {
		energies = append([]float64(nil), raw.Energies...)
	}

	return &Optimization{
		SchemaName:         SchemaName,
		SchemaVersion:      SchemaVersion,
		ID:                 raw.ID,
		InitialMolecule:    initial,
		FinalMolecule:      final,
		Trajectory:         kept,
		Energies:           energies,
		Protocols:          raw.Protocols,
		InputSpecification: spec,
		Success:            raw.Success,
		Error:              raw.Error.Clone(),
		Provenance:         raw.Provenance.Clone(),
		Extras:             copyMap(raw.Extras),
	}, nil
}

// optimizationWire mirrors Optimization; trajectory entries revalidate
// through the result decoder.
type optimizationWire struct {
	SchemaName         string              `json:"schema_name"`
	SchemaVersion      int                 `json:"schema_version"`
	ID                 string              `json:"id"`
	InitialMolecule    molecule.Molecule   `json:"initial_molecule"`
	FinalMolecule      molecule.Molecule   `json:"final_molecule"`
	Trajectory         []result.Result     `json:"trajectory"`
	Energies           []float64           `json:"energies"`
	Protocols          Protocols           `json:"protocols"`
	InputSpecification *InputSpecification `json:"input_specification"`
	Success            bool                `json:"success"`
	Error              *core.ComputeError  `json:"error"`
	Provenance         core.Provenance     `json:"provenance"`
	Extras             map[string]any      `json:"extras"`
}

// UnmarshalJSON decodes strictly and funnels through the same assembly as
// New. Re-decoding an encoded record reproduces it field for field: step
// selection is idempotent on its own output.
func (o *Optimization) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var w optimizationWire
	if err := dec.Decode(&w); err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			return err
		}
		return core.Invalidf("optimization", core.ErrValue, "%v", err)
	}
	if w.SchemaName != "" && w.SchemaName != SchemaName {
		return core.Invalidf("optimization.schema_name", core.ErrValue,
			"unexpected schema_name %q, want %q", w.SchemaName, SchemaName)
	}
	if w.SchemaVersion != 0 && w.SchemaVersion != SchemaVersion {
		return core.Invalidf("optimization.schema_version", core.ErrValue,
			"unsupported schema_version %d", w.SchemaVersion)
	}

	built, err := assemble(Raw{
		ID:                 w.ID,
		InitialMolecule:    w.InitialMolecule,
		FinalMolecule:      w.FinalMolecule,
		Energies:           w.Energies,
		Protocols:          w.Protocols,
		InputSpecification: w.InputSpecification,
		Success:            w.Success,
		Error:              w.Error,
		Provenance:         w.Provenance,
		Extras:             w.Extras,
	}, w.Trajectory)
	if err != nil {
		return err
	}
	*o = *built
	return nil
}

// FinalEnergy returns the last per-step energy.
func (o *Optimization) FinalEnergy() (float64, bool) {
	if len(o.Energies) == 0 {
		return 0, false
	}
	return o.Energies[len(o.Energies)-1], true
}

// stepField renders the trajectory error path for step i.
func stepField(i int) string {
	return "optimization.trajectory[" + strconv.Itoa(i) + "]"
}

// classOf extracts the classification sentinel so wrapped step errors stay
// matchable with errors.Is.
func classOf(err error) error {
	var verr *core.ValidationError
	if errors.As(err, &verr) && verr.Err != nil {
		return verr.Err
	}
	return core.ErrValue
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
