package molecule

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/katalvlaran/qcwire/core"
	"github.com/katalvlaran/qcwire/ndarray"
)

const (
	// SchemaName is the interchange envelope name for molecule payloads.
	SchemaName = "qcschema_molecule"
	// SchemaVersion is the molecule payload revision this package speaks.
	SchemaVersion = 2
)

// Molecule describes a molecular system: one element symbol per atom and a
// flat row-major (N, 3) Cartesian geometry in Bohr. Molecules are validated
// by New and treated as immutable afterwards.
type Molecule struct {
	SchemaName            string         `json:"schema_name,omitempty"`
	SchemaVersion         int            `json:"schema_version,omitempty"`
	Name                  string         `json:"name,omitempty"`
	Symbols               []string       `json:"symbols"`
	Geometry              []float64      `json:"geometry"`
	MolecularCharge       float64        `json:"molecular_charge"`
	MolecularMultiplicity int            `json:"molecular_multiplicity,omitempty"`
	FixCOM                bool           `json:"fix_com,omitempty"`
	FixOrientation        bool           `json:"fix_orientation,omitempty"`
	Extras                map[string]any `json:"extras,omitempty"`
}

// New fills schema defaults (name/version, multiplicity 1), validates m, and
// returns a deep copy so later mutation of the input cannot reach the record.
//
// Errors: *core.ValidationError classified by core.ErrMissingField (no
// symbols), ErrUnknownElement wrapped as core.ErrValue (bad symbol),
// core.ErrShape (geometry not castable to (N, 3)), core.ErrValue
// (multiplicity < 1, foreign schema_name).
func New(m Molecule) (Molecule, error) {
	if m.SchemaName == "" {
		m.SchemaName = SchemaName
	}
	if m.SchemaVersion == 0 {
		m.SchemaVersion = SchemaVersion
	}
	if m.MolecularMultiplicity == 0 {
		m.MolecularMultiplicity = 1
	}
	if err := m.Validate(); err != nil {
		return Molecule{}, err
	}

	m.Symbols = append([]string(nil), m.Symbols...)
	m.Geometry = append([]float64(nil), m.Geometry...)
	if m.Extras != nil {
		extras := make(map[string]any, len(m.Extras))
		for k, v := range m.Extras {
			extras[k] = v
		}
		m.Extras = extras
	}

	return m, nil
}

// Validate checks every invariant New enforces, without copying or defaults.
func (m *Molecule) Validate() error {
	if m.SchemaName != "" && m.SchemaName != SchemaName {
		return core.Invalidf("molecule.schema_name", core.ErrValue,
			"unexpected schema_name %q, want %q", m.SchemaName, SchemaName)
	}
	if len(m.Symbols) == 0 {
		return core.Invalidf("molecule.symbols", core.ErrMissingField,
			"at least one atom is required")
	}
	for i, s := range m.Symbols {
		if _, err := Z(s); err != nil {
			return core.Invalidf(fieldIndex("molecule.symbols", i), core.ErrValue,
				"unknown element symbol %q", s)
		}
	}
	if _, err := ndarray.Reshape(m.Geometry, len(m.Symbols), 3); err != nil {
		return core.Invalidf("molecule.geometry", core.ErrShape, "%v", err)
	}
	if m.MolecularMultiplicity < 1 {
		return core.Invalidf("molecule.molecular_multiplicity", core.ErrValue,
			"multiplicity must be >= 1, got %d", m.MolecularMultiplicity)
	}
	return nil
}

// NAtoms returns the atom count.
func (m *Molecule) NAtoms() int { return len(m.Symbols) }

// AtomicNumbers resolves every symbol through the periodic table.
func (m *Molecule) AtomicNumbers() ([]int, error) {
	zs := make([]int, len(m.Symbols))
	for i, s := range m.Symbols {
		z, err := Z(s)
		if err != nil {
			return nil, err
		}
		zs[i] = z
	}
	return zs, nil
}

// moleculeAlias drops the method set for strict decoding.
type moleculeAlias Molecule

// UnmarshalJSON decodes strictly: undeclared keys are rejected rather than
// silently dropped, matching the closed molecule schema.
func (m *Molecule) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var a moleculeAlias
	if err := dec.Decode(&a); err != nil {
		return core.Invalidf("molecule", core.ErrValue, "%v", err)
	}
	*m = Molecule(a)
	return nil
}

// fieldIndex renders "base[i]" for error paths.
func fieldIndex(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
