package filter

import (
	"testing"
)

func TestCriteria(t *testing.T) {
	tests := []struct {
		name      string
		criterion Criterion
		value     any
		want      bool
	}{
		{"greater inclusive hit on boundary", Greater{Value: 5}, 5, true},
		{"greater inclusive above", Greater{Value: 5}, 7.0, true},
		{"greater inclusive below", Greater{Value: 5}, 4, false},
		{"greater strict rejects boundary", Greater{Value: 5, Strict: true}, 5, false},
		{"greater rejects non-numeric", Greater{Value: 5}, "five", false},

		{"lesser inclusive hit on boundary", Lesser{Value: 5}, 5.0, true},
		{"lesser inclusive below", Lesser{Value: 5}, 4, true},
		{"lesser inclusive above", Lesser{Value: 5}, 7, false},
		{"lesser strict rejects boundary", Lesser{Value: 5, Strict: true}, 5, false},

		{"between inside", Between{Min: 5, Max: 10}, 7, true},
		{"between boundary inclusive", Between{Min: 5, Max: 10}, 5, true},
		{"between boundary strict", Between{Min: 5, Max: 10, Strict: true}, 5, false},
		{"between outside", Between{Min: 5, Max: 10}, 4, false},

		{"equal strings", Equal{Value: "hello"}, "hello", true},
		{"equal numeric cross-type", Equal{Value: 2}, 2.0, true},
		{"equal mismatch", Equal{Value: "hello"}, "hello world", false},
		{"different", Different{Value: "hello"}, "hello world", true},
		{"different equal rejects", Different{Value: 2}, 2.0, false},

		{"include substring", Include{Value: "Hello"}, "Hello world", true},
		{"include case sensitive", Include{Value: "hello"}, "Hello world", false},
		{"include slice member", Include{Value: "bc1q"}, []string{"bc1q", "3abc"}, true},
		{"include any-slice numeric", Include{Value: 0.1}, []any{0.5, 0.1}, true},

		{"appear substring", Appear{Value: "Hello world"}, "Hello", true},
		{"appear miss", Appear{Value: "Hello world"}, "hello", false},

		{"satisfy true", Satisfy{Func: func(v any) bool { n, _ := toFloat(v); return n+1 == 1 }}, 0, true},
		{"satisfy false", Satisfy{Func: func(v any) bool { n, _ := toFloat(v); return n+1 == 1 }}, 1, false},
		{"satisfy nil func", Satisfy{}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criterion.Match(tt.value); got != tt.want {
				t.Fatalf("Match(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRegexCriterion(t *testing.T) {
	re, err := NewRegex(`^bc1q`)
	if err != nil {
		t.Fatalf("NewRegex() error = %v", err)
	}
	if !re.Match("bc1qxyz") {
		t.Fatal("Match(bc1qxyz) = false, want true")
	}
	if re.Match("3abc") {
		t.Fatal("Match(3abc) = true, want false")
	}
	if re.Match(42) {
		t.Fatal("Match(42) = true, want false")
	}

	if _, err := NewRegex(`([`); err == nil {
		t.Fatal("NewRegex(invalid) error = nil, want error")
	}
}
