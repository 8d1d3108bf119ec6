package basis

import (
	"bytes"
	"encoding/json"

	"github.com/katalvlaran/qcwire/core"
)

// Center is the basis one atom kind carries: its electron shells in function
// order plus, for heavy elements, the effective-core-potential terms and the
// count of core electrons they replace.
//
// Having ecp_potentials without ecp_electrons is suspicious but legal; the
// caller owns that consistency.
type Center struct {
	ElectronShells []ElectronShell `json:"electron_shells"`
	ECPElectrons   int             `json:"ecp_electrons,omitempty"`
	ECPPotentials  []ECPPotential  `json:"ecp_potentials,omitempty"`
}

// NewCenter validates c and returns a deep copy.
func NewCenter(c Center) (Center, error) {
	if err := c.Validate(); err != nil {
		return Center{}, err
	}
	return c.clone(), nil
}

// Validate checks the center and everything it nests, with error paths rooted
// at "center".
func (c *Center) Validate() error { return c.validateAt("center") }

func (c *Center) validateAt(base string) error {
	if c.ECPElectrons < 0 {
		return core.Invalidf(base+".ecp_electrons", core.ErrValue,
			"ecp_electrons must be non-negative, got %d", c.ECPElectrons)
	}
	for i := range c.ElectronShells {
		if err := c.ElectronShells[i].validateAt(fieldIndex(base+".electron_shells", i)); err != nil {
			return err
		}
	}
	for i := range c.ECPPotentials {
		if err := c.ECPPotentials[i].validateAt(fieldIndex(base+".ecp_potentials", i)); err != nil {
			return err
		}
	}
	return nil
}

// NFunctions sums the basis-function count over the center's shells.
// Complexity: O(total momenta).
func (c *Center) NFunctions() int {
	n := 0
	for i := range c.ElectronShells {
		n += c.ElectronShells[i].NFunctions()
	}
	return n
}

func (c Center) clone() Center {
	if c.ElectronShells != nil {
		shells := make([]ElectronShell, len(c.ElectronShells))
		for i, s := range c.ElectronShells {
			shells[i] = s.clone()
		}
		c.ElectronShells = shells
	}
	if c.ECPPotentials != nil {
		pots := make([]ECPPotential, len(c.ECPPotentials))
		for i, p := range c.ECPPotentials {
			pots[i] = p.clone()
		}
		c.ECPPotentials = pots
	}
	return c
}

type centerAlias Center

// UnmarshalJSON decodes strictly, rejecting undeclared keys.
func (c *Center) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var a centerAlias
	if err := dec.Decode(&a); err != nil {
		return core.Invalidf("center", core.ErrValue, "%v", err)
	}
	*c = Center(a)
	return nil
}
