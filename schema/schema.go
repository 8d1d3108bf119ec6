// SPDX-License-Identifier: MIT

package schema

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qcwire/basis"
	"github.com/katalvlaran/qcwire/core"
	"github.com/katalvlaran/qcwire/molecule"
	"github.com/katalvlaran/qcwire/optimize"
	"github.com/katalvlaran/qcwire/result"
)

// Kind identifies a payload family by its schema_name.
type Kind string

const (
	// KindMolecule routes qcschema_molecule payloads.
	KindMolecule = Kind(molecule.SchemaName)
	// KindBasisSet routes qcschema_basis payloads.
	KindBasisSet = Kind(basis.SchemaName)
	// KindResult routes qcschema_output payloads.
	KindResult = Kind(result.SchemaName)
	// KindOptimization routes qcschema_optimization_output payloads.
	KindOptimization = Kind(optimize.SchemaName)
)

// Payload is the union of every routable record; exactly the arm matching
// Kind is set.
type Payload struct {
	Kind         Kind
	Molecule     *molecule.Molecule
	Basis        *basis.Set
	Result       *result.Result
	Optimization *optimize.Optimization
}

// envelope is the minimal probe for routing.
type envelope struct {
	SchemaName string `json:"schema_name"`
}

// Detect reads the schema_name envelope without validating the payload.
//
// Errors: core.ErrMissingField when schema_name is absent, core.ErrValue
// when it names no known family or the bytes are not a JSON object.
func Detect(data []byte) (Kind, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", core.Invalidf("payload", core.ErrValue, "%v", err)
	}
	switch Kind(env.SchemaName) {
	case "":
		return "", core.Invalidf("payload.schema_name", core.ErrMissingField,
			"schema_name is required to route a payload")
	case KindMolecule, KindBasisSet, KindResult, KindOptimization:
		return Kind(env.SchemaName), nil
	}
	return "", core.Invalidf("payload.schema_name", core.ErrValue,
		"unknown schema_name %q", env.SchemaName)
}

// DecodeJSON routes data by its envelope and decodes it strictly through
// the matching record decoder. The returned payload is fully validated.
func DecodeJSON(data []byte) (*Payload, error) {
	kind, err := Detect(data)
	if err != nil {
		return nil, err
	}

	p := &Payload{Kind: kind}
	switch kind {
	case KindMolecule:
		var m molecule.Molecule
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		validated, err := molecule.New(m)
		if err != nil {
			return nil, err
		}
		p.Molecule = &validated
	case KindBasisSet:
		p.Basis = new(basis.Set)
		if err := json.Unmarshal(data, p.Basis); err != nil {
			return nil, err
		}
	case KindResult:
		p.Result = new(result.Result)
		if err := json.Unmarshal(data, p.Result); err != nil {
			return nil, err
		}
	case KindOptimization:
		p.Optimization = new(optimize.Optimization)
		if err := json.Unmarshal(data, p.Optimization); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DecodeYAML converts a YAML document to JSON and decodes it through
// DecodeJSON, so both surfaces share one validation path.
func DecodeYAML(data []byte) (*Payload, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, core.Invalidf("payload", core.ErrValue, "yaml: %v", err)
	}
	bridged, err := json.Marshal(doc)
	if err != nil {
		return nil, core.Invalidf("payload", core.ErrValue,
			"yaml document is not representable as a JSON payload: %v", err)
	}
	return DecodeJSON(bridged)
}

// Record returns the active arm, or nil when the arm is unset.
func (p *Payload) Record() any {
	if p == nil {
		return nil
	}
	switch {
	case p.Kind == KindMolecule && p.Molecule != nil:
		return p.Molecule
	case p.Kind == KindBasisSet && p.Basis != nil:
		return p.Basis
	case p.Kind == KindResult && p.Result != nil:
		return p.Result
	case p.Kind == KindOptimization && p.Optimization != nil:
		return p.Optimization
	}
	return nil
}

// Encode writes the canonical JSON form of the payload's record: compact,
// with deterministic key order. Encoding the same record twice yields
// byte-identical output.
func Encode(p *Payload) ([]byte, error) {
	rec := p.Record()
	if rec == nil {
		var kind Kind
		if p != nil {
			kind = p.Kind
		}
		return nil, core.Invalidf("payload", core.ErrMissingField,
			"no record behind kind %q", kind)
	}
	return json.Marshal(rec)
}
