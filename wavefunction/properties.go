// SPDX-License-Identifier: MIT

package wavefunction

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/katalvlaran/qcwire/basis"
	"github.com/katalvlaran/qcwire/core"
	"github.com/katalvlaran/qcwire/ndarray"
	"github.com/katalvlaran/qcwire/protocol"
)

// Properties is a validated, protocol-trimmed wavefunction record. Its field
// set is exactly the retained pointer fields, their storage counterparts,
// plus basis and restricted. Properties are immutable after Build; accessors
// copy values out.
type Properties struct {
	basis      *basis.Set
	restricted bool
	pointers   map[string]string
	matrices   map[string]*ndarray.Matrix
	vectors    map[string][]float64
}

// Build applies a retention policy to a raw payload and returns the trimmed
// record, or nil when the policy retains nothing (protocol "none", an absent
// payload, or an empty post-trim field set).
//
// Checks run in a fixed order: required restricted flag, registry membership
// of every field name, the policy's spin filter and selection, pointer
// resolution, then shape validation of the kept storage against the basis
// dimension. Storage a retained pointer names must exist; every kept matrix
// must cast to (nbf, nbf) and every kept vector to (nbf,).
//
// Errors: *core.ValidationError classified by core.ErrMissingField,
// core.ErrValue, core.ErrReference, or core.ErrShape.
func Build(raw *Raw, policy protocol.Wavefunction) (*Properties, error) {
	if raw == nil {
		return nil, nil
	}
	if raw.Restricted == nil {
		return nil, core.Invalidf("wavefunction.restricted", core.ErrMissingField,
			"restricted is required")
	}
	if err := raw.checkNames(); err != nil {
		return nil, err
	}
	if policy == protocol.WavefunctionNone || policy == "" {
		return nil, nil
	}
	if raw.Basis == nil {
		return nil, core.Invalidf("wavefunction.basis", core.ErrMissingField,
			"basis is required")
	}

	restricted := *raw.Restricted
	retained := policy.Retain(restricted, raw.provided())

	keep := make([]string, 0, len(retained)+len(raw.Storage))
	seen := make(map[string]bool, len(raw.Storage))
	for _, name := range retained {
		target := raw.Pointers[name]
		if _, ok := raw.Storage[target]; !ok {
			return nil, core.Invalidf("wavefunction."+name, core.ErrReference,
				"return quantity %q does not exist", target)
		}
		if !seen[target] {
			seen[target] = true
			keep = append(keep, target)
		}
	}
	if policy.KeepUnlinkedStorage() {
		for _, q := range quantities {
			name := StorageName(q.name)
			if _, ok := raw.Storage[name]; !ok {
				continue
			}
			if restricted && strings.HasSuffix(name, "_b") {
				continue
			}
			if !seen[name] {
				seen[name] = true
				keep = append(keep, name)
			}
		}
	}
	if len(retained) == 0 && len(keep) == 0 {
		return nil, nil
	}

	nbf := raw.Basis.NBF
	p := &Properties{
		basis:      raw.Basis.Clone(),
		restricted: restricted,
		pointers:   make(map[string]string, len(retained)),
		matrices:   make(map[string]*ndarray.Matrix),
		vectors:    make(map[string][]float64),
	}
	for _, name := range retained {
		p.pointers[name] = raw.Pointers[name]
	}
	for _, name := range keep {
		k, _ := storageKind(name)
		switch k {
		case kindMatrix:
			m, err := ndarray.Reshape(raw.Storage[name], nbf, nbf)
			if err != nil {
				return nil, core.Invalidf("wavefunction."+name, core.ErrShape, "%v", err)
			}
			p.matrices[name] = m
		case kindVector:
			v, err := ndarray.AsVector(raw.Storage[name], nbf)
			if err != nil {
				return nil, core.Invalidf("wavefunction."+name, core.ErrShape, "%v", err)
			}
			p.vectors[name] = v
		}
	}

	return p, nil
}

// Basis returns the record's basis set.
func (p *Properties) Basis() *basis.Set { return p.basis }

// Restricted reports whether the wavefunction is closed-shell.
func (p *Properties) Restricted() bool { return p.restricted }

// Fields returns the retained field names (pointers and storage, excluding
// basis and restricted) in sorted order, matching the canonical JSON order.
func (p *Properties) Fields() []string {
	names := make([]string, 0, len(p.pointers)+len(p.matrices)+len(p.vectors))
	for name := range p.pointers {
		names = append(names, name)
	}
	for name := range p.matrices {
		names = append(names, name)
	}
	for name := range p.vectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the record retained the named field.
func (p *Properties) Has(name string) bool {
	if _, ok := p.pointers[name]; ok {
		return true
	}
	if _, ok := p.matrices[name]; ok {
		return true
	}
	_, ok := p.vectors[name]
	return ok
}

// Pointer returns the storage name a retained pointer field designates.
func (p *Properties) Pointer(name string) (string, bool) {
	target, ok := p.pointers[name]
	return target, ok
}

// Matrix returns the named retained matrix storage.
func (p *Properties) Matrix(name string) (*ndarray.Matrix, bool) {
	m, ok := p.matrices[name]
	return m, ok
}

// Vector returns a copy of the named retained vector storage.
func (p *Properties) Vector(name string) ([]float64, bool) {
	v, ok := p.vectors[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), v...), true
}

// Resolve flattens the named field to its numeric contents: a pointer field
// resolves through its storage target, a storage field resolves directly.
//
// Errors: core.ErrReference when the name is not retained.
func (p *Properties) Resolve(name string) ([]float64, error) {
	if target, ok := p.pointers[name]; ok {
		name = target
	}
	if m, ok := p.matrices[name]; ok {
		return m.Flatten(), nil
	}
	if v, ok := p.vectors[name]; ok {
		return append([]float64(nil), v...), nil
	}
	return nil, core.Invalidf("wavefunction."+name, core.ErrReference,
		"return quantity %q does not exist", name)
}

// Equal reports field-for-field equality. go-cmp picks this method up when
// diffing records that embed wavefunctions.
func (p *Properties) Equal(o *Properties) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.restricted != o.restricted {
		return false
	}
	if !reflect.DeepEqual(p.basis, o.basis) {
		return false
	}
	if !reflect.DeepEqual(p.pointers, o.pointers) {
		return false
	}
	if !reflect.DeepEqual(p.vectors, o.vectors) {
		return false
	}
	if len(p.matrices) != len(o.matrices) {
		return false
	}
	for name, m := range p.matrices {
		if !m.Equal(o.matrices[name]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the trimmed payload with basis, restricted, and every
// retained field. encoding/json sorts the keys, keeping the canonical form
// deterministic.
func (p *Properties) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 2+len(p.pointers)+len(p.matrices)+len(p.vectors))
	out["basis"] = p.basis
	out["restricted"] = p.restricted
	for name, target := range p.pointers {
		out[name] = target
	}
	for name, m := range p.matrices {
		out[name] = m
	}
	for name, v := range p.vectors {
		out[name] = v
	}
	return json.Marshal(out)
}
