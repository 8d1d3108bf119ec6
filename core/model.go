package core

import (
	"encoding/json"
	"strings"
)

// Model identifies a level of theory: a method name plus, for methods that
// need one, a basis-set name. Basis distinguishes "unspecified" (nil) from an
// explicit empty string, which some programs emit for basis-free methods.
// The schema is open: undeclared keys are kept in Extra.
type Model struct {
	Method string         `json:"method"`
	Basis  *string        `json:"basis,omitempty"`
	Extra  map[string]any `json:"-"`
}

// Validate checks the declared fields. Method is required.
func (m *Model) Validate() error {
	if strings.TrimSpace(m.Method) == "" {
		return Invalidf("model.method", ErrMissingField, "method is required")
	}
	return nil
}

// Clone returns a deep copy sharing no mutable state with m.
func (m Model) Clone() Model {
	cp := m
	if m.Basis != nil {
		b := *m.Basis
		cp.Basis = &b
	}
	if m.Extra != nil {
		cp.Extra = make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			cp.Extra[k] = v
		}
	}
	return cp
}

type modelAlias Model

// UnmarshalJSON decodes the declared fields and captures every undeclared key
// into Extra. A JSON null basis decodes to a nil pointer.
func (m *Model) UnmarshalJSON(data []byte) error {
	var a modelAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return Invalidf("model", ErrValue, "model must be an object: %v", err)
	}
	extra, err := DecodeSideband(data, "method", "basis")
	if err != nil {
		return Invalidf("model", ErrValue, "%v", err)
	}
	a.Extra = extra
	*m = Model(a)
	return nil
}

// MarshalJSON writes the declared fields plus the captured sideband.
func (m Model) MarshalJSON() ([]byte, error) {
	return MergeSideband(modelAlias(m), m.Extra)
}
