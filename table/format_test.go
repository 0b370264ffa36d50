package table_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/brunokim/truth-table/table"
	"github.com/brunokim/truth-table/test_helpers"

	"github.com/google/go-cmp/cmp"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func mustCompute(t *testing.T, expression string) *table.Table {
	t.Helper()
	tbl, err := table.Compute(expression)
	if err != nil {
		t.Fatalf("Compute(%q): got err: %v", expression, err)
	}
	return tbl
}

func TestFormat(t *testing.T) {
	tbl := mustCompute(t, "p^q")
	want := test_helpers.Dedent(`
    p q             p^q
    1 1               1
    1 0               0
    0 1               0
    0 0               0`) + "\n"
	b := new(strings.Builder)
	if err := table.Format(b, tbl); err != nil {
		t.Fatalf("got err: %v", err)
	}
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
	if diff := cmp.Diff(want, tbl.String()); diff != "" {
		t.Errorf("String() (-want, +got)%s", diff)
	}
}

func TestFormat_NoVariables(t *testing.T) {
	tbl := mustCompute(t, "0^1")
	want := "            0^1\n" +
		"              0\n"
	if diff := cmp.Diff(want, tbl.String()); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestFormat_WithSize(t *testing.T) {
	tbl := mustCompute(t, "~a")
	want := test_helpers.Dedent(`
    row_size: 2 col_size: 2
    a              ~a
    1               0
    0               1`) + "\n"
	b := new(strings.Builder)
	if err := table.Format(b, tbl, table.WithSize()); err != nil {
		t.Fatalf("got err: %v", err)
	}
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestFormat_WithColors(t *testing.T) {
	tbl := mustCompute(t, "a^")
	b := new(strings.Builder)
	if err := table.Format(b, tbl, table.WithColors()); err != nil {
		t.Fatalf("got err: %v", err)
	}
	got := b.String()
	if !ansiEscape.MatchString(got) {
		t.Errorf("expected color escapes in %q", got)
	}
	if diff := cmp.Diff(tbl.String(), ansiEscape.ReplaceAllString(got, "")); diff != "" {
		t.Errorf("colored output differs from plain (-plain, +stripped)%s", diff)
	}
}
