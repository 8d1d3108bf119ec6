// Package basis defines core types, enums, and sentinel errors for the
// basis subpackage of github.com/katalvlaran/qcwire.
package basis

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/qcwire/core"
)

// ErrFusedShell indicates a fused shell whose coefficient rows cannot be
// expanded one-per-momentum.
var ErrFusedShell = errors.New("basis: invalid fused shell")

// Harmonic selects the angular representation of a shell.
type Harmonic string

const (
	// Spherical shells span 2l+1 functions per angular momentum.
	Spherical Harmonic = "spherical"
	// Cartesian shells span (l+1)(l+2)/2 functions per angular momentum.
	Cartesian Harmonic = "cartesian"
)

// ParseHarmonic normalizes s (whitespace trimmed) into a Harmonic.
func ParseHarmonic(s string) (Harmonic, error) {
	h := Harmonic(strings.TrimSpace(s))
	switch h {
	case Spherical, Cartesian:
		return h, nil
	}
	return "", core.Invalidf("harmonic_type", core.ErrValue, "unknown harmonic_type %q", s)
}

// ECPType selects the effective-core-potential operator kind.
type ECPType string

const (
	// ECPScalar marks a scalar relativistic potential term.
	ECPScalar ECPType = "scalar"
	// ECPSpinOrbit marks a spin-orbit potential term.
	ECPSpinOrbit ECPType = "spinorbit"
)

// ParseECPType normalizes s (whitespace trimmed) into an ECPType.
func ParseECPType(s string) (ECPType, error) {
	t := ECPType(strings.TrimSpace(s))
	switch t {
	case ECPScalar, ECPSpinOrbit:
		return t, nil
	}
	return "", core.Invalidf("ecp_type", core.ErrValue, "unknown ecp_type %q", s)
}

// fieldIndex renders "base[i]" for error paths.
func fieldIndex(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
