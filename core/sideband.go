package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeSideband decodes a JSON object and returns the entries whose keys are
// not in declared, or nil when there are none. Numbers come back as
// json.Number so their digits survive re-encoding untouched.
func DecodeSideband(data []byte, declared ...string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var all map[string]any
	if err := dec.Decode(&all); err != nil {
		return nil, fmt.Errorf("core: decode sideband: %w", err)
	}
	for _, k := range declared {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// MergeSideband marshals v (a struct carrying the declared fields) and splices
// extra into the same JSON object. encoding/json renders the merged map with
// sorted keys, which keeps the canonical form deterministic.
func MergeSideband(v any, extra map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}
	dec := json.NewDecoder(bytes.NewReader(base))
	dec.UseNumber()
	merged := make(map[string]any)
	if err := dec.Decode(&merged); err != nil {
		return nil, fmt.Errorf("core: merge sideband: %w", err)
	}
	for k, val := range extra {
		if _, dup := merged[k]; dup {
			return nil, fmt.Errorf("core: sideband key %q collides with a declared field", k)
		}
		merged[k] = val
	}
	return json.Marshal(merged)
}
