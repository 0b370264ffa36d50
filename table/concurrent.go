package table

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ComputeConcurrent builds the same table as Compute, evaluating rows in up to
// workers goroutines. Each goroutine owns a contiguous range of rows, and rows
// only write their own result cell.
//
// If ctx is done before all rows are evaluated, the context error is returned.
func ComputeConcurrent(ctx context.Context, expression string, workers int) (*Table, error) {
	t, err := newTable(expression)
	if err != nil {
		return nil, err
	}
	rows := t.Rows()
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < rows; start += chunk {
		start, end := start, min(start+chunk, rows)
		g.Go(func() error {
			for j := start; j < end; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				t.evalRow(j)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
