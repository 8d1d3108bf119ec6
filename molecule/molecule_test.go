package molecule_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/qcwire/core"
	"github.com/katalvlaran/qcwire/molecule"
)

// water returns the three-atom fixture used across the record tests.
func water() molecule.Molecule {
	return molecule.Molecule{
		Symbols: []string{"O", "H", "H"},
		Geometry: []float64{
			0, 0, 0,
			0, 0, 2,
			0, 2, 0,
		},
	}
}

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_DefaultsAndCopy verifies default filling and input isolation.
func TestNew_DefaultsAndCopy(t *testing.T) {
	in := water()
	m, err := molecule.New(in)
	if err != nil {
		t.Fatalf("New() error = %v; want nil", err)
	}
	if m.SchemaName != molecule.SchemaName || m.SchemaVersion != molecule.SchemaVersion {
		t.Errorf("schema envelope = %q v%d; want %q v%d",
			m.SchemaName, m.SchemaVersion, molecule.SchemaName, molecule.SchemaVersion)
	}
	if m.MolecularMultiplicity != 1 {
		t.Errorf("default multiplicity = %d; want 1", m.MolecularMultiplicity)
	}
	if m.NAtoms() != 3 {
		t.Errorf("NAtoms() = %d; want 3", m.NAtoms())
	}

	in.Symbols[0] = "N" // mutate the input after construction
	if m.Symbols[0] != "O" {
		t.Errorf("record shares symbol storage with input")
	}
}

// TestNew_Errors walks the rejection table.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*molecule.Molecule)
		class error
	}{
		{"NoAtoms", func(m *molecule.Molecule) { m.Symbols = nil; m.Geometry = nil }, core.ErrMissingField},
		{"UnknownSymbol", func(m *molecule.Molecule) { m.Symbols[1] = "Xq" }, core.ErrValue},
		{"ShortGeometry", func(m *molecule.Molecule) { m.Geometry = m.Geometry[:7] }, core.ErrShape},
		{"NegativeMultiplicity", func(m *molecule.Molecule) { m.MolecularMultiplicity = -2 }, core.ErrValue},
		{"ForeignSchema", func(m *molecule.Molecule) { m.SchemaName = "qcschema_output" }, core.ErrValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := water()
			tc.edit(&in)
			if _, err := molecule.New(in); !errors.Is(err, tc.class) {
				t.Errorf("New() error = %v; want class %v", err, tc.class)
			}
		})
	}
}

// TestNew_GeometryShapeMessage pins the shape wording callers grep for.
func TestNew_GeometryShapeMessage(t *testing.T) {
	in := water()
	in.Geometry = in.Geometry[:5]
	_, err := molecule.New(in)
	if err == nil {
		t.Fatal("New() error = nil; want shape error")
	}
	const want = "not castable to shape (3, 3)"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error %q does not contain %q", got, want)
	}
}

//----------------------------------------------------------------------------//
// Lookup and Decode Tests
//----------------------------------------------------------------------------//

// TestPeriodicLookups covers Z/Symbol in both directions and case folding.
func TestPeriodicLookups(t *testing.T) {
	cases := []struct {
		symbol string
		z      int
	}{
		{"H", 1}, {"O", 8}, {"zr", 40}, {"OG", 118},
	}
	for _, tc := range cases {
		z, err := molecule.Z(tc.symbol)
		if err != nil {
			t.Fatalf("Z(%q) error = %v", tc.symbol, err)
		}
		if z != tc.z {
			t.Errorf("Z(%q) = %d; want %d", tc.symbol, z, tc.z)
		}
	}
	if _, err := molecule.Z("Xx"); !errors.Is(err, molecule.ErrUnknownElement) {
		t.Errorf("Z(Xx) error = %v; want ErrUnknownElement", err)
	}
	if s, err := molecule.Symbol(40); err != nil || s != "Zr" {
		t.Errorf("Symbol(40) = %q, %v; want Zr, nil", s, err)
	}
	if _, err := molecule.Symbol(0); !errors.Is(err, molecule.ErrUnknownElement) {
		t.Errorf("Symbol(0) error = %v; want ErrUnknownElement", err)
	}
}

// TestAtomicNumbers resolves the fixture symbols.
func TestAtomicNumbers(t *testing.T) {
	m, err := molecule.New(water())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	zs, err := m.AtomicNumbers()
	if err != nil {
		t.Fatalf("AtomicNumbers() error = %v", err)
	}
	want := []int{8, 1, 1}
	for i, z := range want {
		if zs[i] != z {
			t.Errorf("AtomicNumbers()[%d] = %d; want %d", i, zs[i], z)
		}
	}
}

// TestUnmarshal_Strict verifies undeclared keys are rejected, not dropped.
func TestUnmarshal_Strict(t *testing.T) {
	good := []byte(`{"symbols":["H"],"geometry":[0,0,0],"molecular_charge":0}`)
	var m molecule.Molecule
	if err := json.Unmarshal(good, &m); err != nil {
		t.Fatalf("Unmarshal(good) error = %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	bad := []byte(`{"symbols":["H"],"geometry":[0,0,0],"surprise":1}`)
	if err := json.Unmarshal(bad, &m); err == nil {
		t.Error("Unmarshal(bad) error = nil; want unknown-field rejection")
	}
}
