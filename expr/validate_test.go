package expr_test

import (
	"errors"
	"testing"

	"github.com/brunokim/truth-table/expr"
)

func TestValidate(t *testing.T) {
	valid := []string{
		"a",
		"0",
		"~a",
		"~~a",
		"a~b",
		"a~~b",
		"(a^b)>c",
		" a ^ b ",
		"~(a)",
		"((p&q)<(q&p))",
	}
	for _, s := range valid {
		if err := expr.Validate(s); err != nil {
			t.Errorf("Validate(%q): got err: %v", s, err)
		}
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		expression string
		pos        int
	}{
		{"", 0},
		{"   ", 0},
		{"(a", 0},
		{"a)", 1},
		{"a$b", 1},
		{"a^", 2},
		{"^a", 0},
		{"ab", 1},
		{"a(b)", 1},
		{"()", 1},
		{"A", 0},
		{"~", 1},
	}
	for _, test := range tests {
		err := expr.Validate(test.expression)
		var invalid *expr.InvalidExpressionError
		if !errors.As(err, &invalid) {
			t.Errorf("Validate(%q): got err %v, want *InvalidExpressionError", test.expression, err)
			continue
		}
		if invalid.Pos != test.pos {
			t.Errorf("Validate(%q): got pos %d, want %d (%v)", test.expression, invalid.Pos, test.pos, err)
		}
	}
}
