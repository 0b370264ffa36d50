package fuzz

import (
	"github.com/brunokim/truth-table/expr"
	"github.com/brunokim/truth-table/table"
)

func Fuzz(data []byte) int {
	text := string(data)
	if err := expr.Validate(text); err != nil {
		return 0
	}
	if err := table.CheckLimit(text, 12); err != nil {
		return 0
	}
	n := len(expr.Variables(text))
	t, err := table.Compute(text)
	if err != nil {
		panic(err)
	}
	if t.Rows() != 1<<n || t.Cols() != n+1 {
		panic("table shape doesn't match its variables")
	}
	for j := 0; j < t.Rows(); j++ {
		if t.Result(j) == expr.ErrorChar {
			panic("valid expression failed to evaluate: " + text)
		}
	}
	return 1
}
