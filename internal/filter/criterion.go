// Package filter implements composable match criteria over candidate
// fields. Criteria are plain tagged values, never parsed through any kind
// of expression evaluation.
package filter

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
)

// Criterion is a pure accept/reject decision over one value.
type Criterion interface {
	Match(v any) bool
}

// Greater matches numeric values >= Value (or > Value when Strict).
type Greater struct {
	Value  float64
	Strict bool
}

func (c Greater) Match(v any) bool {
	f, ok := toFloat(v)
	if !ok {
		return false
	}
	if c.Strict {
		return f > c.Value
	}
	return f >= c.Value
}

// Lesser matches numeric values <= Value (or < Value when Strict).
type Lesser struct {
	Value  float64
	Strict bool
}

func (c Lesser) Match(v any) bool {
	f, ok := toFloat(v)
	if !ok {
		return false
	}
	if c.Strict {
		return f < c.Value
	}
	return f <= c.Value
}

// Between matches numeric values in [Min, Max] (exclusive when Strict).
type Between struct {
	Min    float64
	Max    float64
	Strict bool
}

func (c Between) Match(v any) bool {
	f, ok := toFloat(v)
	if !ok {
		return false
	}
	if c.Strict {
		return f > c.Min && f < c.Max
	}
	return f >= c.Min && f <= c.Max
}

// Equal matches values equal to Value. Numbers compare numerically
// regardless of their Go type.
type Equal struct {
	Value any
}

func (c Equal) Match(v any) bool {
	return looseEqual(v, c.Value)
}

// Different matches values not equal to Value.
type Different struct {
	Value any
}

func (c Different) Match(v any) bool {
	return !looseEqual(v, c.Value)
}

// Include matches candidates that contain Value: substring for strings,
// element membership for slices.
type Include struct {
	Value any
}

func (c Include) Match(v any) bool {
	return contains(v, c.Value)
}

// Appear matches candidates that appear inside Value, the mirror of
// Include.
type Appear struct {
	Value any
}

func (c Appear) Match(v any) bool {
	return contains(c.Value, v)
}

// Satisfy matches when the provided function accepts the value. The value
// may be a field or, when the filter names no resolvable field, the whole
// candidate.
type Satisfy struct {
	Func func(any) bool
}

func (c Satisfy) Match(v any) bool {
	if c.Func == nil {
		return false
	}
	return c.Func(v)
}

// Regex matches string values against a compiled pattern.
type Regex struct {
	Pattern *regexp.Regexp
}

// NewRegex compiles expr into a Regex criterion.
func NewRegex(expr string) (Regex, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Regex{}, err
	}
	return Regex{Pattern: re}, nil
}

func (c Regex) Match(v any) bool {
	s, ok := v.(string)
	if !ok || c.Pattern == nil {
		return false
	}
	return c.Pattern.MatchString(s)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func looseEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func contains(container, item any) bool {
	switch c := container.(type) {
	case string:
		s, ok := item.(string)
		return ok && strings.Contains(c, s)
	case []string:
		for _, e := range c {
			if looseEqual(e, item) {
				return true
			}
		}
	case []float64:
		for _, e := range c {
			if looseEqual(e, item) {
				return true
			}
		}
	case []any:
		for _, e := range c {
			if looseEqual(e, item) {
				return true
			}
		}
	case candidate.Candidate:
		// Searching inside a whole candidate means searching its
		// serialized form, mirroring substring search on raw records.
		s, ok := item.(string)
		return ok && strings.Contains(c.String(), s)
	}
	return false
}
