package schema_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qcwire/core"
	"github.com/katalvlaran/qcwire/schema"
)

//---------------------------------------------------------------------------//
// Fixture payloads
//---------------------------------------------------------------------------//

const moleculeJSON = `{
	"schema_name": "qcschema_molecule",
	"symbols": ["O", "H", "H"],
	"geometry": [0, 0, 0, 0, 0, 2, 0, 2, 0],
	"molecular_charge": 0
}`

const basisJSON = `{
	"schema_name": "qcschema_basis",
	"name": "sto-3g(h)",
	"center_data": {
		"bs_sto3g_h": {
			"electron_shells": [{
				"harmonic_type": "spherical",
				"angular_momentum": [0],
				"exponents": [3.42525091, 0.62391373, 0.1688554],
				"coefficients": [[0.15432897, 0.53532814, 0.44463454]]
			}]
		}
	},
	"atom_map": ["bs_sto3g_h"]
}`

const resultJSON = `{
	"schema_name": "qcschema_output",
	"molecule": {"symbols": ["O", "H", "H"], "geometry": [0, 0, 0, 0, 0, 2, 0, 2, 0], "molecular_charge": 0},
	"driver": "energy",
	"model": {"method": "UFF"},
	"return_result": 5,
	"success": true,
	"provenance": {"creator": "qcwire"}
}`

const optimizationJSON = `{
	"schema_name": "qcschema_optimization_output",
	"initial_molecule": {"symbols": ["O", "H", "H"], "geometry": [0, 0, 0, 0, 0, 2, 0, 2, 0], "molecular_charge": 0},
	"final_molecule": {"symbols": ["O", "H", "H"], "geometry": [0, 0, 0, 0, 0, 2, 0, 2, 0], "molecular_charge": 0},
	"trajectory": [{
		"molecule": {"symbols": ["O", "H", "H"], "geometry": [0, 0, 0, 0, 0, 2, 0, 2, 0], "molecular_charge": 0},
		"driver": "energy",
		"model": {"method": "UFF"},
		"return_result": 5,
		"success": true,
		"provenance": {"creator": "qcwire"}
	}],
	"energies": [5],
	"success": true,
	"provenance": {"creator": "qcwire"}
}`

const moleculeYAML = `
schema_name: qcschema_molecule
symbols: ["O", "H", "H"]
geometry: [0, 0, 0, 0, 0, 2, 0, 2, 0]
molecular_charge: 0
`

//---------------------------------------------------------------------------//
// Detection
//---------------------------------------------------------------------------//

func TestDetect_Table(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    schema.Kind
		wantErr error
	}{
		{"molecule", moleculeJSON, schema.KindMolecule, nil},
		{"basis", basisJSON, schema.KindBasisSet, nil},
		{"result", resultJSON, schema.KindResult, nil},
		{"optimization", optimizationJSON, schema.KindOptimization, nil},
		{"missing envelope", `{"symbols": ["H"]}`, "", core.ErrMissingField},
		{"unknown family", `{"schema_name": "qcschema_teapot"}`, "", core.ErrValue},
		{"not an object", `[1, 2]`, "", core.ErrValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schema.Detect([]byte(tc.payload))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Detect error = %v, want class %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Detect = %q, want %q", got, tc.want)
			}
		})
	}
}

//---------------------------------------------------------------------------//
// Round trip
//---------------------------------------------------------------------------//

// TestRoundTrip_Idempotent decodes, re-encodes, and decodes again: the second
// decode must match the first field for field, and the canonical encodes must
// be byte-identical.
func TestRoundTrip_Idempotent(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"molecule", moleculeJSON},
		{"basis", basisJSON},
		{"result", resultJSON},
		{"optimization", optimizationJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, err := schema.DecodeJSON([]byte(tc.payload))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			encoded, err := schema.Encode(first)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			second, err := schema.DecodeJSON(encoded)
			if err != nil {
				t.Fatalf("re-decode failed: %v", err)
			}
			if diff := cmp.Diff(first.Record(), second.Record()); diff != "" {
				t.Fatalf("records diverged after a round trip:\n%s", diff)
			}

			again, err := schema.Encode(second)
			if err != nil {
				t.Fatalf("re-encode failed: %v", err)
			}
			if !bytes.Equal(encoded, again) {
				t.Fatalf("canonical encode is not stable:\n%s\n%s", encoded, again)
			}
		})
	}
}

//---------------------------------------------------------------------------//
// YAML bridge
//---------------------------------------------------------------------------//

func TestDecodeYAML_MatchesJSON(t *testing.T) {
	fromYAML, err := schema.DecodeYAML([]byte(moleculeYAML))
	if err != nil {
		t.Fatalf("yaml decode failed: %v", err)
	}
	if fromYAML.Kind != schema.KindMolecule {
		t.Fatalf("yaml decode kind = %q", fromYAML.Kind)
	}
	if got := fromYAML.Molecule.NAtoms(); got != 3 {
		t.Fatalf("NAtoms = %d, want 3", got)
	}

	fromJSON, err := schema.DecodeJSON([]byte(moleculeJSON))
	if err != nil {
		t.Fatalf("json decode failed: %v", err)
	}
	a, err := schema.Encode(fromYAML)
	if err != nil {
		t.Fatalf("encode yaml-side failed: %v", err)
	}
	b, err := schema.Encode(fromJSON)
	if err != nil {
		t.Fatalf("encode json-side failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("yaml and json decodes encode differently:\n%s\n%s", a, b)
	}
}

func TestDecodeYAML_Malformed(t *testing.T) {
	if _, err := schema.DecodeYAML([]byte("a: [1,")); !errors.Is(err, core.ErrValue) {
		t.Fatalf("malformed yaml error = %v, want core.ErrValue class", err)
	}
}

//---------------------------------------------------------------------------//
// Validation pass-through
//---------------------------------------------------------------------------//

func TestDecodeJSON_PropagatesValidation(t *testing.T) {
	badGeometry := `{
		"schema_name": "qcschema_molecule",
		"symbols": ["O", "H", "H"],
		"geometry": [0, 0, 0],
		"molecular_charge": 0
	}`
	_, err := schema.DecodeJSON([]byte(badGeometry))
	if !errors.Is(err, core.ErrShape) {
		t.Fatalf("bad geometry error = %v, want core.ErrShape class", err)
	}

	unknownCenter := `{
		"schema_name": "qcschema_basis",
		"name": "broken",
		"center_data": {},
		"atom_map": ["missing"]
	}`
	_, err = schema.DecodeJSON([]byte(unknownCenter))
	if !errors.Is(err, core.ErrReference) {
		t.Fatalf("unknown center error = %v, want core.ErrReference class", err)
	}
}
