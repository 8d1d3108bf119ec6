package core

import (
	"encoding/json"
	"strings"
)

// Provenance records which program produced a payload. The schema is open:
// undeclared keys land in Extra on decode and are written back on encode.
type Provenance struct {
	Creator string         `json:"creator"`
	Version string         `json:"version,omitempty"`
	Routine string         `json:"routine,omitempty"`
	Extra   map[string]any `json:"-"`
}

// Validate checks the declared fields. Creator is required.
func (p *Provenance) Validate() error {
	if strings.TrimSpace(p.Creator) == "" {
		return Invalidf("provenance.creator", ErrMissingField, "creator is required")
	}
	return nil
}

// Clone returns a deep copy sharing no mutable state with p.
func (p Provenance) Clone() Provenance {
	cp := p
	if p.Extra != nil {
		cp.Extra = make(map[string]any, len(p.Extra))
		for k, v := range p.Extra {
			cp.Extra[k] = v
		}
	}
	return cp
}

// provenanceAlias drops the method set so decoding does not recurse.
type provenanceAlias Provenance

// UnmarshalJSON decodes the declared fields and captures every undeclared key
// into Extra.
func (p *Provenance) UnmarshalJSON(data []byte) error {
	var a provenanceAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return Invalidf("provenance", ErrValue, "provenance must be an object: %v", err)
	}
	extra, err := DecodeSideband(data, "creator", "version", "routine")
	if err != nil {
		return Invalidf("provenance", ErrValue, "%v", err)
	}
	a.Extra = extra
	*p = Provenance(a)
	return nil
}

// MarshalJSON writes the declared fields plus the captured sideband.
func (p Provenance) MarshalJSON() ([]byte, error) {
	return MergeSideband(provenanceAlias(p), p.Extra)
}
