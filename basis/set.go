// SPDX-License-Identifier: MIT

package basis

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/katalvlaran/qcwire/core"
)

const (
	// SchemaName is the interchange envelope name for basis-set payloads.
	SchemaName = "qcschema_basis"
	// SchemaVersion is the basis-set payload revision this package speaks.
	SchemaVersion = 1
)

// Set is a named basis set: centers keyed by name plus an atom map listing,
// per atom of a companion molecule, which center that atom uses. NBF holds
// the total basis-function count over the atom map and is filled during
// construction.
type Set struct {
	SchemaName    string            `json:"schema_name,omitempty"`
	SchemaVersion int               `json:"schema_version,omitempty"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	CenterData    map[string]Center `json:"center_data"`
	AtomMap       []string          `json:"atom_map"`
	NBF           int               `json:"nbf,omitempty"`
}

// NewSet assembles and validates a basis set: every center validates, every
// atom-map entry must name a center, and NBF is computed over the atom map.
// Inputs are deep-copied; the returned Set is treated as immutable.
//
// Errors: *core.ValidationError classified by core.ErrMissingField (empty
// name or atom map), core.ErrReference (atom-map entry with no such center),
// plus everything Center validation can raise.
// Complexity: O(total shell momenta + len(atomMap)).
func NewSet(name string, centerData map[string]Center, atomMap []string) (*Set, error) {
	s := &Set{
		SchemaName:    SchemaName,
		SchemaVersion: SchemaVersion,
		Name:          name,
		CenterData:    centerData,
		AtomMap:       atomMap,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	centers := make(map[string]Center, len(centerData))
	for k, c := range centerData {
		centers[k] = c.clone()
	}
	s.CenterData = centers
	s.AtomMap = append([]string(nil), atomMap...)
	s.NBF = s.countFunctions()

	return s, nil
}

// validate checks the set invariants. Center names are visited in sorted
// order so the first reported violation is deterministic.
func (s *Set) validate() error {
	if s.SchemaName != "" && s.SchemaName != SchemaName {
		return core.Invalidf("basis_set.schema_name", core.ErrValue,
			"unexpected schema_name %q, want %q", s.SchemaName, SchemaName)
	}
	if s.SchemaVersion != 0 && s.SchemaVersion != SchemaVersion {
		return core.Invalidf("basis_set.schema_version", core.ErrValue,
			"unsupported schema_version %d", s.SchemaVersion)
	}
	if s.Name == "" {
		return core.Invalidf("basis_set.name", core.ErrMissingField, "name is required")
	}
	if len(s.AtomMap) == 0 {
		return core.Invalidf("basis_set.atom_map", core.ErrMissingField,
			"atom_map must name at least one center")
	}

	names := make([]string, 0, len(s.CenterData))
	for name := range s.CenterData {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := s.CenterData[name]
		if err := c.validateAt("basis_set.center_data[" + name + "]"); err != nil {
			return err
		}
	}

	for i, name := range s.AtomMap {
		if _, ok := s.CenterData[name]; !ok {
			return core.Invalidf(fieldIndex("basis_set.atom_map", i), core.ErrReference,
				"no such center %q in center_data", name)
		}
	}
	return nil
}

// Clone returns a deep copy sharing no mutable state with s.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	cp := *s
	if s.CenterData != nil {
		cp.CenterData = make(map[string]Center, len(s.CenterData))
		for k, c := range s.CenterData {
			cp.CenterData[k] = c.clone()
		}
	}
	if s.AtomMap != nil {
		cp.AtomMap = append([]string(nil), s.AtomMap...)
	}
	return &cp
}

// countFunctions sums each mapped center's function count over the atom map.
// Repeated centers are counted once per occurrence but computed once.
func (s *Set) countFunctions() int {
	perCenter := make(map[string]int, len(s.CenterData))
	total := 0
	for _, name := range s.AtomMap {
		n, ok := perCenter[name]
		if !ok {
			c := s.CenterData[name]
			n = c.NFunctions()
			perCenter[name] = n
		}
		total += n
	}
	return total
}

type setAlias Set

// UnmarshalJSON decodes strictly and runs full validation, so a Set obtained
// from a payload is as trustworthy as one built through NewSet. A supplied
// nbf value must agree with the computed count.
func (s *Set) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var a setAlias
	if err := dec.Decode(&a); err != nil {
		return core.Invalidf("basis_set", core.ErrValue, "%v", err)
	}

	v := Set(a)
	if err := v.validate(); err != nil {
		return err
	}
	computed := v.countFunctions()
	if v.NBF != 0 && v.NBF != computed {
		return core.Invalidf("basis_set.nbf", core.ErrValue,
			"supplied nbf %d does not match the computed count %d", v.NBF, computed)
	}
	v.NBF = computed
	if v.SchemaName == "" {
		v.SchemaName = SchemaName
	}
	if v.SchemaVersion == 0 {
		v.SchemaVersion = SchemaVersion
	}

	*s = v
	return nil
}
