package filter

import (
	"errors"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
)

// Filter maps field identifiers to criteria. A filter matches a candidate
// when every criterion accepts its field's value. When a candidate does not
// carry the identifier, the criterion is applied to the whole candidate
// instead, which lets Satisfy criteria inspect arbitrary combinations of
// fields.
type Filter map[string]Criterion

// Match reports whether the candidate satisfies all criteria in the filter.
// Only a missing field falls back to whole-candidate matching; any other
// field error, such as a malformed record, is returned to the caller.
func (f Filter) Match(c candidate.Candidate) (bool, error) {
	for field, criterion := range f {
		v, err := c.Field(field)
		if err != nil {
			if !errors.Is(err, candidate.ErrFieldNotFound) {
				return false, err
			}
			v = c
		}
		if !criterion.Match(v) {
			return false, nil
		}
	}
	return true, nil
}
