// Package table builds the truth table of a boolean expression.
//
// The table has one column per distinct variable, in alphabetical order, and a
// final column with the value of the expression. Rows enumerate every
// assignment with the first variable changing slowest, starting from all ones:
//
//	p q p^q
//	1 1   1
//	1 0   0
//	0 1   0
//	0 0   0
package table

import (
	"github.com/brunokim/truth-table/errors"
	"github.com/brunokim/truth-table/expr"
	"github.com/brunokim/truth-table/letters"
)

var (
	// ErrEmptyExpression is returned when computing the table of "".
	ErrEmptyExpression = expr.ErrEmptyExpression
	// ErrTooManyVariables is returned by CheckLimit.
	ErrTooManyVariables = errors.New("too many variables")
)

// CheckLimit returns an error if expression has more than limit distinct
// variables. A table with n variables holds 2^n rows of n+1 cells, so callers
// taking untrusted input should check before calling Compute.
func CheckLimit(expression string, limit int) error {
	if n := letters.Count(expression).Distinct(); n > limit {
		return errors.New("%d variables, limit is %d: %v", n, limit, ErrTooManyVariables)
	}
	return nil
}

// Table is a fully evaluated truth table.
//
// Header holds the variable names followed by the expression. Each row of Grid
// holds one byte per header entry, either '0', '1' or expr.ErrorChar.
type Table struct {
	Header []string
	Grid   [][]byte

	vars []byte
}

// Rows returns the number of assignments, 2^n for n variables.
func (t *Table) Rows() int { return len(t.Grid) }

// Cols returns the number of columns, n+1 for n variables.
func (t *Table) Cols() int { return len(t.Header) }

// Expression returns the original expression, the label of the last column.
func (t *Table) Expression() string { return t.Header[len(t.Header)-1] }

// Variables returns the variable names, in column order.
func (t *Table) Variables() []string { return t.Header[:len(t.Header)-1] }

// Result returns the value of the expression at row.
func (t *Table) Result(row int) byte { return t.Grid[row][len(t.Header)-1] }

// Compute evaluates expression for every assignment of its variables.
//
// The expression is not validated. A row whose evaluation fails holds
// expr.ErrorChar as its result, and the remaining rows are still evaluated.
func Compute(expression string) (*Table, error) {
	t, err := newTable(expression)
	if err != nil {
		return nil, err
	}
	for i := range t.Grid {
		t.evalRow(i)
	}
	return t, nil
}

// newTable allocates the table and fills the header and variable columns.
func newTable(expression string) (*Table, error) {
	if len(expression) == 0 {
		return nil, ErrEmptyExpression
	}
	counter := letters.Count(expression)
	n := counter.Distinct()
	vars := counter.Letters()
	rows := 1 << n
	t := &Table{
		Header: make([]string, n+1),
		Grid:   make([][]byte, rows),
		vars:   vars,
	}
	for i, v := range vars {
		t.Header[i] = string(v)
	}
	t.Header[n] = expression
	cells := make([]byte, rows*(n+1))
	for j := range t.Grid {
		t.Grid[j], cells = cells[:n+1:n+1], cells[n+1:]
	}
	// Each column toggles with half the period of the previous one.
	period := rows
	for i := 0; i < n; i++ {
		period /= 2
		bit := byte('0')
		for j := 0; j < rows; j++ {
			if j%period == 0 {
				bit = toggle(bit)
			}
			t.Grid[j][i] = bit
		}
	}
	return t, nil
}

func toggle(bit byte) byte {
	if bit == '0' {
		return '1'
	}
	return '0'
}

// evalRow writes the result of row j. It only touches the last cell of the row.
func (t *Table) evalRow(j int) {
	n := len(t.vars)
	infix := expr.Substitute(t.Expression(), t.vars, t.Grid[j][:n])
	// On failure result is ErrorChar, which is the row's record of the error.
	result, _ := expr.Eval(infix)
	t.Grid[j][n] = result
}

// Assignment returns the variable bits of a row in a table with n variables,
// the same as the first n cells of that row.
func Assignment(n, row int) []byte {
	bits := make([]byte, n)
	for i := range bits {
		if (row>>(n-1-i))&1 == 0 {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return bits
}
