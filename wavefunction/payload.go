package wavefunction

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/katalvlaran/qcwire/basis"
	"github.com/katalvlaran/qcwire/core"
)

// kind classifies a quantity's storage layout.
type kind int

const (
	kindMatrix kind = iota
	kindVector
)

// quantities is the closed registry of named wavefunction quantities in wire
// order. Matrices carry nbf*nbf elements row-major, vectors nbf. The storage
// counterpart of each quantity is its name with the "scf_" prefix.
var quantities = []struct {
	name string
	kind kind
}{
	{"orbitals_a", kindMatrix},
	{"orbitals_b", kindMatrix},
	{"density_a", kindMatrix},
	{"density_b", kindMatrix},
	{"fock_a", kindMatrix},
	{"fock_b", kindMatrix},
	{"eigenvalues_a", kindVector},
	{"eigenvalues_b", kindVector},
	{"occupations_a", kindVector},
	{"occupations_b", kindVector},
}

const storagePrefix = "scf_"

// StorageName returns the "scf_"-prefixed storage counterpart of a pointer
// field name.
func StorageName(pointer string) string { return storagePrefix + pointer }

// quantityKind looks a pointer field name up in the registry.
func quantityKind(pointer string) (kind, bool) {
	for _, q := range quantities {
		if q.name == pointer {
			return q.kind, true
		}
	}
	return 0, false
}

// storageKind looks a storage field name up by stripping the prefix.
func storageKind(name string) (kind, bool) {
	pointer, ok := strings.CutPrefix(name, storagePrefix)
	if !ok {
		return 0, false
	}
	return quantityKind(pointer)
}

// Raw is an untrimmed wavefunction payload as a caller provides it. Storage
// maps "scf_"-prefixed field names to flat numeric arrays; Pointers maps
// quantity names to the storage field each designates. Restricted is a
// pointer so an absent flag is distinguishable from false. Raw carries no
// guarantees; Build turns it into a validated Properties record.
type Raw struct {
	Basis      *basis.Set
	Restricted *bool
	Storage    map[string][]float64
	Pointers   map[string]string
}

// UnmarshalJSON decodes strictly: every key must be basis, restricted, a
// registry quantity, or its storage counterpart. Keys are visited in sorted
// order so the first reported violation is deterministic.
func (r *Raw) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return core.Invalidf("wavefunction", core.ErrValue, "%v", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var out Raw
	for _, name := range names {
		raw := fields[name]
		switch {
		case name == "basis":
			out.Basis = new(basis.Set)
			if err := json.Unmarshal(raw, out.Basis); err != nil {
				return err
			}
		case name == "restricted":
			var b bool
			if err := json.Unmarshal(raw, &b); err != nil {
				return core.Invalidf("wavefunction.restricted", core.ErrValue,
					"restricted must be a boolean: %v", err)
			}
			out.Restricted = &b
		default:
			if _, ok := quantityKind(name); ok {
				var s string
				if err := json.Unmarshal(raw, &s); err != nil {
					return core.Invalidf("wavefunction."+name, core.ErrValue,
						"pointer field %s must be a string: %v", name, err)
				}
				if out.Pointers == nil {
					out.Pointers = make(map[string]string)
				}
				out.Pointers[name] = s
				continue
			}
			if _, ok := storageKind(name); ok {
				var v []float64
				if err := json.Unmarshal(raw, &v); err != nil {
					return core.Invalidf("wavefunction."+name, core.ErrValue,
						"storage field %s must be a flat numeric array: %v", name, err)
				}
				if out.Storage == nil {
					out.Storage = make(map[string][]float64)
				}
				out.Storage[name] = v
				continue
			}
			return core.Invalidf("wavefunction."+name, core.ErrValue,
				"unknown wavefunction field %q", name)
		}
	}

	*r = out
	return nil
}

// provided returns the pointer fields present, in registry order.
func (r *Raw) provided() []string {
	if len(r.Pointers) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Pointers))
	for _, q := range quantities {
		if _, ok := r.Pointers[q.name]; ok {
			names = append(names, q.name)
		}
	}
	return names
}

// checkNames rejects payload keys outside the registry. Decode already does
// this for wire payloads; Build repeats it so hand-built Raw values get the
// same guarantee.
func (r *Raw) checkNames() error {
	pointers := make([]string, 0, len(r.Pointers))
	for name := range r.Pointers {
		pointers = append(pointers, name)
	}
	sort.Strings(pointers)
	for _, name := range pointers {
		if _, ok := quantityKind(name); !ok {
			return core.Invalidf("wavefunction."+name, core.ErrValue,
				"unknown wavefunction field %q", name)
		}
	}

	storage := make([]string, 0, len(r.Storage))
	for name := range r.Storage {
		storage = append(storage, name)
	}
	sort.Strings(storage)
	for _, name := range storage {
		if _, ok := storageKind(name); !ok {
			return core.Invalidf("wavefunction."+name, core.ErrValue,
				"unknown wavefunction field %q", name)
		}
	}
	return nil
}
