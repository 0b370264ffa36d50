package expr_test

import (
	"testing"

	"github.com/brunokim/truth-table/expr"

	"github.com/google/go-cmp/cmp"
)

func TestVariables(t *testing.T) {
	tests := []struct {
		expression string
		want       []byte
	}{
		{"1^0", nil},
		{"p^q", []byte("pq")},
		{"q^p^q", []byte("pq")},
		{"(z>a)~~m", []byte("amz")},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, expr.Variables(test.expression)); diff != "" {
			t.Errorf("Variables(%q) (-want, +got)%s", test.expression, diff)
		}
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		expression string
		vars, bits string
		want       string
	}{
		{"a^(b>a)", "ab", "10", "1^(0>1)"},
		{"a^c", "a", "0", "0^c"},
		{"~p", "p", "1", "~1"},
		{"1&0", "", "", "1&0"},
	}
	for _, test := range tests {
		got := expr.Substitute(test.expression, []byte(test.vars), []byte(test.bits))
		if got != test.want {
			t.Errorf("Substitute(%q, %q, %q) = %q, want %q", test.expression, test.vars, test.bits, got, test.want)
		}
	}
}
