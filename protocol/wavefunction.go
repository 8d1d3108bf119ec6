package protocol

import (
	"encoding/json"
	"strings"

	"github.com/katalvlaran/qcwire/core"
)

// Wavefunction selects how much of a raw wavefunction payload an outcome
// record keeps.
type Wavefunction string

const (
	// WavefunctionNone drops the wavefunction payload entirely. Default.
	WavefunctionNone Wavefunction = "none"
	// WavefunctionAll keeps every provided field, pointered or not.
	WavefunctionAll Wavefunction = "all"
	// WavefunctionOrbitalsAndEigenvalues keeps only orbital and eigenvalue
	// fields the payload provides.
	WavefunctionOrbitalsAndEigenvalues Wavefunction = "orbitals_and_eigenvalues"
	// WavefunctionReturnResults keeps the provided pointer fields and
	// exactly the storage they reference.
	WavefunctionReturnResults Wavefunction = "return_results"
)

// orbitalsAndEigenvalues is the candidate set for the narrowing policy.
var orbitalsAndEigenvalues = map[string]bool{
	"orbitals_a":    true,
	"orbitals_b":    true,
	"eigenvalues_a": true,
	"eigenvalues_b": true,
}

// ParseWavefunction normalizes s (whitespace trimmed) into a Wavefunction.
// The empty string parses to WavefunctionNone, the absent-protocol default.
func ParseWavefunction(s string) (Wavefunction, error) {
	w := Wavefunction(strings.TrimSpace(s))
	switch w {
	case "":
		return WavefunctionNone, nil
	case WavefunctionNone, WavefunctionAll, WavefunctionOrbitalsAndEigenvalues, WavefunctionReturnResults:
		return w, nil
	}
	return "", core.Invalidf("protocols.wavefunction", core.ErrValue,
		"unknown wavefunction protocol %q", s)
}

// Retain applies the policy table: provided lists the named pointer fields
// present in the raw payload, and the result is the retained subset in the
// same order. The restricted filter runs first, dropping beta-channel
// fields. The zero value behaves as WavefunctionNone.
func (w Wavefunction) Retain(restricted bool, provided []string) []string {
	if restricted {
		provided = AlphaOnly(provided)
	}
	switch w {
	case WavefunctionAll, WavefunctionReturnResults:
		return append([]string(nil), provided...)
	case WavefunctionOrbitalsAndEigenvalues:
		keep := make([]string, 0, len(provided))
		for _, name := range provided {
			if orbitalsAndEigenvalues[name] {
				keep = append(keep, name)
			}
		}
		return keep
	default:
		return nil
	}
}

// KeepUnlinkedStorage reports whether the policy also carries storage fields
// no retained pointer references. Only "all" does; the narrower policies
// keep exactly the referenced storage.
func (w Wavefunction) KeepUnlinkedStorage() bool { return w == WavefunctionAll }

// AlphaOnly filters beta-channel names ("*_b") out, preserving order.
func AlphaOnly(names []string) []string {
	keep := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasSuffix(name, "_b") {
			keep = append(keep, name)
		}
	}
	return keep
}

// UnmarshalJSON accepts the wire spelling and validates it.
func (w *Wavefunction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return core.Invalidf("protocols.wavefunction", core.ErrValue,
			"wavefunction protocol must be a string: %v", err)
	}
	parsed, err := ParseWavefunction(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
