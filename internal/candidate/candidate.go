// Package candidate wraps decoded blockchain records and derives the
// quantities filters match against. Candidates are read-only: the raw record
// never changes after construction, so derived values are computed once and
// cached per instance.
package candidate

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrFieldNotFound reports a lookup for a field the record does not carry.
var ErrFieldNotFound = errors.New("candidate: field not found")

// ErrMalformedRecord reports raw data that cannot be interpreted, e.g. a
// negative computed fee on a non-coinbase transaction.
var ErrMalformedRecord = errors.New("candidate: malformed record")

// Candidate is one decoded blockchain object (block, transaction or mempool
// entry) exposing raw and derived fields by name.
type Candidate interface {
	// Field resolves a derived attribute or raw key by name.
	Field(name string) (any, error)
	// Raw returns the underlying record. Callers must not modify it.
	Raw() map[string]any
	// String returns a stable JSON serialization of the raw record.
	String() string
}

// Record is the base candidate: a plain map-backed record with no derived
// attributes beyond raw key lookup.
type Record struct {
	raw map[string]any
}

// NewRecord wraps a decoded record.
func NewRecord(raw map[string]any) *Record {
	return &Record{raw: raw}
}

// Field returns the raw value stored under name.
func (r *Record) Field(name string) (any, error) {
	if v, ok := r.raw[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// Raw returns the underlying record.
func (r *Record) Raw() map[string]any {
	return r.raw
}

func (r *Record) String() string {
	data, err := json.Marshal(r.raw)
	if err != nil {
		return fmt.Sprintf("%v", r.raw)
	}
	return string(data)
}

const dateLayout = "2006-01-02 15:04"

func formatUnix(ts float64) string {
	return time.Unix(int64(ts), 0).UTC().Format(dateLayout)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func asObjects(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	objs := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}
