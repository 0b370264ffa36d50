package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/brunokim/truth-table/expr"

	"github.com/fatih/color"
)

// resultWidth is the width of the right-aligned result column.
const resultWidth = 15

type formatOptions struct {
	size   bool
	colors map[byte]*color.Color
}

// FormatOption customizes Format.
type FormatOption func(*formatOptions)

// WithSize prints a "row_size: R col_size: C" line before the header.
func WithSize() FormatOption {
	return func(opts *formatOptions) { opts.size = true }
}

// WithColors prints true cells in green, false in red and errors in yellow,
// even if the output is not a terminal.
func WithColors() FormatOption {
	return func(opts *formatOptions) {
		opts.colors = map[byte]*color.Color{
			'1':            color.New(color.FgGreen),
			'0':            color.New(color.FgRed),
			expr.ErrorChar: color.New(color.FgYellow),
		}
		for _, c := range opts.colors {
			c.EnableColor()
		}
	}
}

func (opts *formatOptions) cell(ch byte) string {
	if c, ok := opts.colors[ch]; ok {
		return c.Sprint(string(ch))
	}
	return string(ch)
}

// Format writes t as aligned text. Variable columns are separated by a space and
// the result column is right-aligned in a fixed-width field.
func Format(w io.Writer, t *Table, opts ...FormatOption) error {
	o := &formatOptions{}
	for _, opt := range opts {
		opt(o)
	}
	b := new(strings.Builder)
	if o.size {
		fmt.Fprintf(b, "row_size: %d col_size: %d\n", t.Rows(), t.Cols())
	}
	n := t.Cols() - 1
	for _, v := range t.Variables() {
		fmt.Fprintf(b, "%s ", v)
	}
	fmt.Fprintf(b, "%*s\n", resultWidth, t.Expression())
	for _, row := range t.Grid {
		for _, ch := range row[:n] {
			b.WriteString(o.cell(ch))
			b.WriteByte(' ')
		}
		b.WriteString(strings.Repeat(" ", resultWidth-1))
		b.WriteString(o.cell(row[n]))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the table as Format does without options.
func (t *Table) String() string {
	b := new(strings.Builder)
	Format(b, t)
	return b.String()
}
