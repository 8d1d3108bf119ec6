package result

import (
	"encoding/json"

	"github.com/katalvlaran/qcwire/core"
)

// Properties carries the common computed quantities of a result. The schema
// is open in the same way Provenance and Model are: declared fields are
// typed, every other key survives in Extra verbatim. Absent quantities stay
// nil so zero values remain expressible.
type Properties struct {
	CalcinfoNBasis         *int     `json:"calcinfo_nbasis,omitempty"`
	CalcinfoNAtom          *int     `json:"calcinfo_natom,omitempty"`
	NuclearRepulsionEnergy *float64 `json:"nuclear_repulsion_energy,omitempty"`
	ReturnEnergy           *float64 `json:"return_energy,omitempty"`
	SCFTotalEnergy         *float64 `json:"scf_total_energy,omitempty"`
	SCFIterations          *int     `json:"scf_iterations,omitempty"`

	Extra map[string]any `json:"-"`
}

// propertiesDeclared lists the typed keys for sideband capture.
var propertiesDeclared = []string{
	"calcinfo_nbasis",
	"calcinfo_natom",
	"nuclear_repulsion_energy",
	"return_energy",
	"scf_total_energy",
	"scf_iterations",
}

type propertiesAlias Properties

// UnmarshalJSON decodes the declared fields and captures every undeclared
// key into Extra.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var a propertiesAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return core.Invalidf("properties", core.ErrValue,
			"properties must be an object: %v", err)
	}
	extra, err := core.DecodeSideband(data, propertiesDeclared...)
	if err != nil {
		return core.Invalidf("properties", core.ErrValue, "%v", err)
	}
	a.Extra = extra
	*p = Properties(a)
	return nil
}

// MarshalJSON writes the declared fields plus the captured sideband.
func (p Properties) MarshalJSON() ([]byte, error) {
	return core.MergeSideband(propertiesAlias(p), p.Extra)
}

// clone deep-copies p so records never alias caller state.
func (p Properties) clone() Properties {
	cp := p
	cp.CalcinfoNBasis = copyInt(p.CalcinfoNBasis)
	cp.CalcinfoNAtom = copyInt(p.CalcinfoNAtom)
	cp.NuclearRepulsionEnergy = copyFloat(p.NuclearRepulsionEnergy)
	cp.ReturnEnergy = copyFloat(p.ReturnEnergy)
	cp.SCFTotalEnergy = copyFloat(p.SCFTotalEnergy)
	cp.SCFIterations = copyInt(p.SCFIterations)
	if p.Extra != nil {
		cp.Extra = make(map[string]any, len(p.Extra))
		for k, v := range p.Extra {
			cp.Extra[k] = v
		}
	}
	return cp
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
