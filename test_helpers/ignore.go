package test_helpers

import (
	"github.com/brunokim/truth-table/table"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	IgnoreUnexported = cmp.Options{
		cmpopts.IgnoreUnexported(table.Table{}),
	}
)

// Grid builds table rows from strings, one byte per cell.
func Grid(rows ...string) [][]byte {
	grid := make([][]byte, len(rows))
	for i, row := range rows {
		grid[i] = []byte(row)
	}
	return grid
}
