package core

import (
	"encoding/json"
	"strings"
)

// Driver names the computation a result record answers.
type Driver string

const (
	// DriverEnergy requests a single total energy.
	DriverEnergy Driver = "energy"
	// DriverGradient requests first derivatives of the energy.
	DriverGradient Driver = "gradient"
	// DriverHessian requests second derivatives of the energy.
	DriverHessian Driver = "hessian"
	// DriverProperties requests a property dictionary with no derivatives.
	DriverProperties Driver = "properties"
)

// ParseDriver normalizes s (surrounding whitespace trimmed) into a Driver.
// Unknown spellings fail with ErrValue.
func ParseDriver(s string) (Driver, error) {
	d := Driver(strings.TrimSpace(s))
	switch d {
	case DriverEnergy, DriverGradient, DriverHessian, DriverProperties:
		return d, nil
	}
	return "", Invalidf("driver", ErrValue, "unknown driver %q", s)
}

// DerivativeOrder reports the energy-derivative order the driver requests:
// 0 for energy and properties, 1 for gradient, 2 for hessian.
func (d Driver) DerivativeOrder() int {
	switch d {
	case DriverGradient:
		return 1
	case DriverHessian:
		return 2
	default:
		return 0
	}
}

// UnmarshalJSON accepts the wire spelling and validates it.
func (d *Driver) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return Invalidf("driver", ErrValue, "driver must be a string: %v", err)
	}
	parsed, err := ParseDriver(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
