package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// Metadata is the JSON object mirrored for a record.
type Metadata map[string]any

// Record is a single entry yielded by a catalog provider.
type Record struct {
	// ID is the provider identifier, stable across time.
	ID string
	// Title is used for reporting only.
	Title string
	// Metadata is the document persisted locally.
	Metadata Metadata
}

// Canonical returns a deep copy of m in decoded-JSON form: objects become
// map[string]any, arrays []any and numbers json.Number.
func Canonical(m Metadata) (Metadata, error) {
	if m == nil {
		return Metadata{}, nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	out, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decode parses a JSON object with exact number handling.
// Anything other than a single JSON object is rejected.
func Decode(data []byte) (Metadata, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("invalid json: document is not an object")
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data after object")
	}

	return Metadata(payload), nil
}

// Equal reports whether a and b hold the same fields with the same values.
// A nil mapping equals an empty one. Numbers compare by value, so 1, 1.0
// and 1e0 are equal.
func Equal(a, b Metadata) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return cmp.Equal(map[string]any(a), map[string]any(b), numberComparer)
}

var numberComparer = cmp.Comparer(func(x, y json.Number) bool {
	if x == y {
		return true
	}
	rx, okx := new(big.Rat).SetString(string(x))
	ry, oky := new(big.Rat).SetString(string(y))
	return okx && oky && rx.Cmp(ry) == 0
})

// Merge returns local updated with every top-level key of remote.
// Neither argument is modified.
func Merge(local, remote Metadata) Metadata {
	merged := make(Metadata, len(local)+len(remote))
	for k, v := range local {
		merged[k] = v
	}
	for k, v := range remote {
		merged[k] = v
	}
	return merged
}
