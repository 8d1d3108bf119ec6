// SPDX-License-Identifier: MIT

package result

import (
	"encoding/json"

	"github.com/katalvlaran/qcwire/core"
)

// ReturnKind discriminates the return_result union.
type ReturnKind int

const (
	// ReturnAbsent is the zero kind: no return_result was provided.
	ReturnAbsent ReturnKind = iota
	// ReturnScalar holds one float64.
	ReturnScalar
	// ReturnArray holds a flat float64 array.
	ReturnArray
	// ReturnReference names a wavefunction field holding the value.
	ReturnReference
)

// ReturnValue is the return_result union: a literal scalar, a literal flat
// array, or a string reference into the record's wavefunction. The zero
// value means absent and is omitted from payloads.
type ReturnValue struct {
	kind   ReturnKind
	scalar float64
	array  []float64
	ref    string
}

// Scalar wraps a literal float64 return value.
func Scalar(v float64) ReturnValue {
	return ReturnValue{kind: ReturnScalar, scalar: v}
}

// Array wraps a literal flat array return value, copying the input.
func Array(v []float64) ReturnValue {
	return ReturnValue{kind: ReturnArray, array: append([]float64(nil), v...)}
}

// Reference wraps a field name to resolve through the wavefunction.
func Reference(name string) ReturnValue {
	return ReturnValue{kind: ReturnReference, ref: name}
}

// Kind reports which arm of the union is set.
func (v ReturnValue) Kind() ReturnKind { return v.kind }

// IsZero reports whether no return value was provided. encoding/json uses it
// for the omitzero tag option.
func (v ReturnValue) IsZero() bool { return v.kind == ReturnAbsent }

// Scalar returns the literal scalar arm.
func (v ReturnValue) Scalar() (float64, bool) {
	return v.scalar, v.kind == ReturnScalar
}

// Array returns a copy of the literal array arm.
func (v ReturnValue) Array() ([]float64, bool) {
	if v.kind != ReturnArray {
		return nil, false
	}
	return append([]float64(nil), v.array...), true
}

// Reference returns the referenced field name.
func (v ReturnValue) Reference() (string, bool) {
	return v.ref, v.kind == ReturnReference
}

// Equal reports union equality; go-cmp picks it up when diffing records.
func (v ReturnValue) Equal(o ReturnValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ReturnScalar:
		return v.scalar == o.scalar
	case ReturnArray:
		if len(v.array) != len(o.array) {
			return false
		}
		for i, x := range v.array {
			if o.array[i] != x {
				return false
			}
		}
		return true
	case ReturnReference:
		return v.ref == o.ref
	default:
		return true
	}
}

// MarshalJSON writes the active arm: number, array, string, or null.
func (v ReturnValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ReturnScalar:
		return json.Marshal(v.scalar)
	case ReturnArray:
		return json.Marshal(v.array)
	case ReturnReference:
		return json.Marshal(v.ref)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON infers the arm from the JSON shape: a number is a scalar, an
// array of numbers a literal array, a string a reference, null absent.
func (v *ReturnValue) UnmarshalJSON(data []byte) error {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return core.Invalidf("return_result", core.ErrValue, "%v", err)
	}
	switch probe.(type) {
	case nil:
		*v = ReturnValue{}
		return nil
	case float64:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return core.Invalidf("return_result", core.ErrValue, "%v", err)
		}
		*v = Scalar(f)
		return nil
	case string:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return core.Invalidf("return_result", core.ErrValue, "%v", err)
		}
		*v = Reference(s)
		return nil
	case []any:
		var a []float64
		if err := json.Unmarshal(data, &a); err != nil {
			return core.Invalidf("return_result", core.ErrValue,
				"array return_result must hold numbers: %v", err)
		}
		*v = ReturnValue{kind: ReturnArray, array: a}
		return nil
	}
	return core.Invalidf("return_result", core.ErrValue,
		"return_result must be a number, an array, or a field name")
}
