package basis

import (
	"bytes"
	"encoding/json"

	"github.com/katalvlaran/qcwire/core"
)

// ElectronShell is one shell of Gaussian basis functions: a shared exponent
// list plus contraction-coefficient rows. A fused shell lists several angular
// momenta over the one exponent set and carries exactly one row per momentum;
// a single-momentum shell may carry several rows (general contraction).
type ElectronShell struct {
	HarmonicType    Harmonic    `json:"harmonic_type"`
	AngularMomentum []int       `json:"angular_momentum"`
	Exponents       []float64   `json:"exponents"`
	Coefficients    [][]float64 `json:"coefficients"`
}

// NewElectronShell validates s and returns a deep copy, so later mutation of
// the input slices cannot reach the record.
//
// Errors: *core.ValidationError classified by core.ErrValue (bad enum,
// non-positive exponent, negative momentum), core.ErrMissingField (empty
// sequences), core.ErrShape (row length mismatch), ErrFusedShell.
func NewElectronShell(s ElectronShell) (ElectronShell, error) {
	if err := s.Validate(); err != nil {
		return ElectronShell{}, err
	}
	return s.clone(), nil
}

// Validate checks every shell invariant with error paths rooted at
// "electron_shell".
func (s *ElectronShell) Validate() error { return s.validateAt("electron_shell") }

func (s *ElectronShell) validateAt(base string) error {
	switch s.HarmonicType {
	case Spherical, Cartesian:
	default:
		return core.Invalidf(base+".harmonic_type", core.ErrValue,
			"unknown harmonic_type %q", s.HarmonicType)
	}
	if len(s.AngularMomentum) == 0 {
		return core.Invalidf(base+".angular_momentum", core.ErrMissingField,
			"at least one angular momentum is required")
	}
	for i, l := range s.AngularMomentum {
		if l < 0 {
			return core.Invalidf(fieldIndex(base+".angular_momentum", i), core.ErrValue,
				"angular momentum must be non-negative, got %d", l)
		}
	}
	if len(s.Exponents) == 0 {
		return core.Invalidf(base+".exponents", core.ErrMissingField,
			"at least one exponent is required")
	}
	for i, e := range s.Exponents {
		if !(e > 0) {
			return core.Invalidf(fieldIndex(base+".exponents", i), core.ErrValue,
				"exponents must be positive, got %g", e)
		}
	}
	if len(s.Coefficients) == 0 {
		return core.Invalidf(base+".coefficients", core.ErrMissingField,
			"at least one coefficient row is required")
	}
	for i, row := range s.Coefficients {
		if len(row) != len(s.Exponents) {
			return core.Invalidf(fieldIndex(base+".coefficients", i), core.ErrShape,
				"row length %d does not match the exponents length %d",
				len(row), len(s.Exponents))
		}
	}
	// A fused shell expands into one independent shell per momentum, so it
	// needs exactly one row per momentum to be unambiguous.
	if len(s.AngularMomentum) > 1 && len(s.Coefficients) != len(s.AngularMomentum) {
		return core.Invalidf(base+".coefficients", ErrFusedShell,
			"fused shell over %d angular momenta requires %d coefficient rows, got %d",
			len(s.AngularMomentum), len(s.AngularMomentum), len(s.Coefficients))
	}
	return nil
}

// NFunctions reports how many basis functions the shell spans: 2l+1 per
// momentum for spherical shells, (l+1)(l+2)/2 for cartesian.
// Complexity: O(len(AngularMomentum)).
func (s *ElectronShell) NFunctions() int {
	n := 0
	for _, l := range s.AngularMomentum {
		if s.HarmonicType == Spherical {
			n += 2*l + 1
		} else {
			n += (l + 1) * (l + 2) / 2
		}
	}
	return n
}

// IsContracted reports whether the shell is a general contraction: several
// coefficient rows over one angular momentum. Fused shells are not
// contractions in this sense.
func (s *ElectronShell) IsContracted() bool {
	return len(s.Coefficients) != 1 && len(s.AngularMomentum) == 1
}

func (s ElectronShell) clone() ElectronShell {
	s.AngularMomentum = append([]int(nil), s.AngularMomentum...)
	s.Exponents = append([]float64(nil), s.Exponents...)
	rows := make([][]float64, len(s.Coefficients))
	for i, row := range s.Coefficients {
		rows[i] = append([]float64(nil), row...)
	}
	s.Coefficients = rows
	return s
}

type electronShellAlias ElectronShell

// UnmarshalJSON decodes strictly, rejecting undeclared keys.
func (s *ElectronShell) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var a electronShellAlias
	if err := dec.Decode(&a); err != nil {
		return core.Invalidf("electron_shell", core.ErrValue, "%v", err)
	}
	*s = ElectronShell(a)
	return nil
}
