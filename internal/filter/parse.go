package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Filter from a comma-separated list of comparison clauses,
// e.g. "n_eq>3,den<=0.001" or "addresses~bc1q.*". Supported operators:
// >=, <=, !=, >, <, =, ~ (regex). Ordering comparisons require numeric
// values; = and != accept numbers, booleans, and strings.
func Parse(expr string) (Filter, error) {
	f := make(Filter)
	for _, clause := range strings.Split(expr, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		field, criterion, err := parseClause(clause)
		if err != nil {
			return nil, err
		}
		if _, dup := f[field]; dup {
			return nil, fmt.Errorf("parse filter %q: duplicate field %q", expr, field)
		}
		f[field] = criterion
	}
	if len(f) == 0 {
		return nil, fmt.Errorf("parse filter %q: no clauses", expr)
	}
	return f, nil
}

var operators = []string{">=", "<=", "!=", ">", "<", "=", "~"}

func parseClause(clause string) (string, Criterion, error) {
	for _, op := range operators {
		idx := strings.Index(clause, op)
		if idx <= 0 {
			continue
		}
		field := strings.TrimSpace(clause[:idx])
		value := strings.TrimSpace(clause[idx+len(op):])
		if value == "" {
			return "", nil, fmt.Errorf("parse clause %q: missing value", clause)
		}
		criterion, err := buildCriterion(op, value)
		if err != nil {
			return "", nil, fmt.Errorf("parse clause %q: %w", clause, err)
		}
		return field, criterion, nil
	}
	return "", nil, fmt.Errorf("parse clause %q: no operator found", clause)
}

func buildCriterion(op, value string) (Criterion, error) {
	switch op {
	case ">", ">=", "<", "<=":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("operator %q needs a numeric value: %w", op, err)
		}
		switch op {
		case ">":
			return Greater{Value: n, Strict: true}, nil
		case ">=":
			return Greater{Value: n}, nil
		case "<":
			return Lesser{Value: n, Strict: true}, nil
		default:
			return Lesser{Value: n}, nil
		}
	case "=":
		return Equal{Value: literal(value)}, nil
	case "!=":
		return Different{Value: literal(value)}, nil
	case "~":
		return NewRegex(value)
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}

func literal(value string) any {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return strings.Trim(value, `"'`)
}
