package basis

import (
	"bytes"
	"encoding/json"

	"github.com/katalvlaran/qcwire/core"
)

// ECPPotential is one effective-core-potential term: powers of r and Gaussian
// exponents of equal length, plus contraction-coefficient rows over them.
// Fused terms follow the same one-row-per-momentum rule as electron shells.
type ECPPotential struct {
	ECPType           ECPType     `json:"ecp_type"`
	AngularMomentum   []int       `json:"angular_momentum"`
	RExponents        []int       `json:"r_exponents"`
	GaussianExponents []float64   `json:"gaussian_exponents"`
	Coefficients      [][]float64 `json:"coefficients"`
}

// NewECPPotential validates p and returns a deep copy.
//
// Errors: *core.ValidationError classified by core.ErrValue,
// core.ErrMissingField, core.ErrShape, ErrFusedShell.
func NewECPPotential(p ECPPotential) (ECPPotential, error) {
	if err := p.Validate(); err != nil {
		return ECPPotential{}, err
	}
	return p.clone(), nil
}

// Validate checks every potential invariant with error paths rooted at
// "ecp_potential".
func (p *ECPPotential) Validate() error { return p.validateAt("ecp_potential") }

func (p *ECPPotential) validateAt(base string) error {
	switch p.ECPType {
	case ECPScalar, ECPSpinOrbit:
	default:
		return core.Invalidf(base+".ecp_type", core.ErrValue,
			"unknown ecp_type %q", p.ECPType)
	}
	if len(p.AngularMomentum) == 0 {
		return core.Invalidf(base+".angular_momentum", core.ErrMissingField,
			"at least one angular momentum is required")
	}
	for i, l := range p.AngularMomentum {
		if l < 0 {
			return core.Invalidf(fieldIndex(base+".angular_momentum", i), core.ErrValue,
				"angular momentum must be non-negative, got %d", l)
		}
	}
	if len(p.RExponents) == 0 {
		return core.Invalidf(base+".r_exponents", core.ErrMissingField,
			"at least one r exponent is required")
	}
	if len(p.GaussianExponents) != len(p.RExponents) {
		return core.Invalidf(base+".gaussian_exponents", core.ErrShape,
			"length %d does not match the r_exponents length %d",
			len(p.GaussianExponents), len(p.RExponents))
	}
	if len(p.Coefficients) == 0 {
		return core.Invalidf(base+".coefficients", core.ErrMissingField,
			"at least one coefficient row is required")
	}
	for i, row := range p.Coefficients {
		if len(row) != len(p.RExponents) {
			return core.Invalidf(fieldIndex(base+".coefficients", i), core.ErrShape,
				"row length %d does not match the r_exponents length %d",
				len(row), len(p.RExponents))
		}
	}
	if len(p.AngularMomentum) > 1 && len(p.Coefficients) != len(p.AngularMomentum) {
		return core.Invalidf(base+".coefficients", ErrFusedShell,
			"fused shell over %d angular momenta requires %d coefficient rows, got %d",
			len(p.AngularMomentum), len(p.AngularMomentum), len(p.Coefficients))
	}
	return nil
}

func (p ECPPotential) clone() ECPPotential {
	p.AngularMomentum = append([]int(nil), p.AngularMomentum...)
	p.RExponents = append([]int(nil), p.RExponents...)
	p.GaussianExponents = append([]float64(nil), p.GaussianExponents...)
	rows := make([][]float64, len(p.Coefficients))
	for i, row := range p.Coefficients {
		rows[i] = append([]float64(nil), row...)
	}
	p.Coefficients = rows
	return p
}

type ecpPotentialAlias ECPPotential

// UnmarshalJSON decodes strictly, rejecting undeclared keys.
func (p *ECPPotential) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var a ecpPotentialAlias
	if err := dec.Decode(&a); err != nil {
		return core.Invalidf("ecp_potential", core.ErrValue, "%v", err)
	}
	*p = ECPPotential(a)
	return nil
}
