package core_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/qcwire/core"
)

//----------------------------------------------------------------------------//
// Open-Schema (Sideband) Tests
//----------------------------------------------------------------------------//

// TestProvenance_SidebandRoundTrip verifies that undeclared keys survive a
// decode/encode cycle with digits intact.
func TestProvenance_SidebandRoundTrip(t *testing.T) {
	in := []byte(`{"creator":"qcengine","version":"1.2","routine":"run_json",` +
		`"memory":1.25,"wall_time":17,"hostname":"node042"}`)

	var p core.Provenance
	if err := json.Unmarshal(in, &p); err != nil {
		t.Fatalf("Unmarshal error = %v; want nil", err)
	}
	if p.Creator != "qcengine" || p.Version != "1.2" || p.Routine != "run_json" {
		t.Fatalf("declared fields = %+v; want qcengine/1.2/run_json", p)
	}
	if len(p.Extra) != 3 {
		t.Fatalf("len(Extra) = %d; want 3 (%v)", len(p.Extra), p.Extra)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error = %v; want nil", err)
	}
	var got, want map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("re-Unmarshal error = %v", err)
	}
	if err := json.Unmarshal(in, &want); err != nil {
		t.Fatalf("fixture Unmarshal error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("round-trip key count = %d; want %d", len(got), len(want))
	}
	for k := range want {
		if _, ok := got[k]; !ok {
			t.Errorf("round-trip lost key %q", k)
		}
	}
	// Digits must be carried verbatim, not re-rendered through float64.
	if want := `"wall_time":17`; !strings.Contains(string(out), want) {
		t.Errorf("output %s does not carry %s", out, want)
	}
}

// TestProvenance_CreatorRequired verifies the required-field check.
func TestProvenance_CreatorRequired(t *testing.T) {
	p := core.Provenance{Version: "0.1"}
	if err := p.Validate(); !errors.Is(err, core.ErrMissingField) {
		t.Errorf("Validate() error = %v; want ErrMissingField", err)
	}
}

// TestModel_BasisAbsentVsEmpty distinguishes a nil basis from an explicit "".
func TestModel_BasisAbsentVsEmpty(t *testing.T) {
	var withNull, withEmpty, absent core.Model
	if err := json.Unmarshal([]byte(`{"method":"UFF","basis":null}`), &withNull); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if err := json.Unmarshal([]byte(`{"method":"HF","basis":""}`), &withEmpty); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if err := json.Unmarshal([]byte(`{"method":"B3LYP"}`), &absent); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if withNull.Basis != nil {
		t.Errorf("null basis decoded non-nil: %v", *withNull.Basis)
	}
	if withEmpty.Basis == nil || *withEmpty.Basis != "" {
		t.Errorf("empty basis = %v; want pointer to \"\"", withEmpty.Basis)
	}
	if absent.Basis != nil {
		t.Errorf("absent basis decoded non-nil: %v", *absent.Basis)
	}
	if err := absent.Validate(); err != nil {
		t.Errorf("Validate() error = %v; want nil", err)
	}
}

// TestModel_MethodRequired verifies the required-field check.
func TestModel_MethodRequired(t *testing.T) {
	m := core.Model{}
	if err := m.Validate(); !errors.Is(err, core.ErrMissingField) {
		t.Errorf("Validate() error = %v; want ErrMissingField", err)
	}
}

// TestModel_SidebandCollision verifies that a sideband key equal to a declared
// field never silently overwrites it on encode.
func TestModel_SidebandCollision(t *testing.T) {
	m := core.Model{Method: "HF", Extra: map[string]any{"method": "MP2"}}
	if _, err := json.Marshal(m); err == nil {
		t.Errorf("Marshal with colliding sideband key succeeded; want error")
	}
}

//----------------------------------------------------------------------------//
// ComputeError Tests
//----------------------------------------------------------------------------//

// TestComputeError_ValidateAndError exercises required fields and the error
// interface rendering.
func TestComputeError_ValidateAndError(t *testing.T) {
	ce := &core.ComputeError{ErrorType: "input_error", ErrorMessage: "bad driver"}
	if err := ce.Validate(); err != nil {
		t.Fatalf("Validate() error = %v; want nil", err)
	}
	if got, want := ce.Error(), "input_error: bad driver"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}

	for _, broken := range []*core.ComputeError{
		{ErrorMessage: "no type"},
		{ErrorType: "no message"},
	} {
		if err := broken.Validate(); !errors.Is(err, core.ErrMissingField) {
			t.Errorf("Validate(%+v) error = %v; want ErrMissingField", broken, err)
		}
	}
}
