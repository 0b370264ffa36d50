// Package solver enumerates the assignments that satisfy an expression.
package solver

import (
	"sort"
	"strings"
	"sync"

	"github.com/brunokim/truth-table/errors"
	"github.com/brunokim/truth-table/expr"
	"github.com/brunokim/truth-table/table"
)

// Solver evaluates one expression over all assignments of its variables.
type Solver struct {
	expression string
	vars       []byte
}

// Solution binds each variable name to its value.
type Solution map[string]bool

func (s Solution) String() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		if s[name] {
			b.WriteString(" = 1")
		} else {
			b.WriteString(" = 0")
		}
	}
	return b.String()
}

// New returns a solver for expression. The expression is not validated.
func New(expression string) (*Solver, error) {
	if len(expression) == 0 {
		return nil, expr.ErrEmptyExpression
	}
	return &Solver{expression, expr.Variables(expression)}, nil
}

// Result is either a satisfying assignment or the error that ended a query.
type Result struct {
	Solution Solution
	Err      error
}

// eval returns the value of the expression at a table row, and the variable bits
// of that row.
func (solver *Solver) eval(row int) (byte, []byte, error) {
	bits := table.Assignment(len(solver.vars), row)
	result, err := expr.Eval(expr.Substitute(solver.expression, solver.vars, bits))
	if err != nil {
		return result, bits, errors.New("row %d: %v", row, err)
	}
	if result == expr.ErrorChar {
		return result, bits, errors.New("row %d: cannot evaluate %q", row, solver.expression)
	}
	return result, bits, nil
}

func (solver *Solver) solution(bits []byte) Solution {
	sol := make(Solution, len(bits))
	for i, v := range solver.vars {
		sol[string(v)] = bits[i] == '1'
	}
	return sol
}

// Query streams the satisfying assignments in table order. The stream is
// closed after the last one, after a result carrying an error, or once the
// returned function is called.
func (solver *Solver) Query() (<-chan Result, func()) {
	stream := make(chan Result)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() { once.Do(func() { close(done) }) }
	go func() {
		defer close(stream)
		send := func(r Result) bool {
			select {
			case stream <- r:
				return true
			case <-done:
				return false
			}
		}
		rows := 1 << len(solver.vars)
		for row := 0; row < rows; row++ {
			select {
			case <-done:
				return
			default:
			}
			result, bits, err := solver.eval(row)
			if err != nil {
				send(Result{Err: err})
				return
			}
			if result == '1' && !send(Result{Solution: solver.solution(bits)}) {
				return
			}
		}
	}()
	return stream, cancel
}

// Count returns how many assignments satisfy the expression.
func (solver *Solver) Count() (int, error) {
	n := 0
	rows := 1 << len(solver.vars)
	for row := 0; row < rows; row++ {
		result, _, err := solver.eval(row)
		if err != nil {
			return 0, err
		}
		if result == '1' {
			n++
		}
	}
	return n, nil
}

// Satisfiable returns whether some assignment satisfies the expression.
func (solver *Solver) Satisfiable() (bool, error) {
	n, err := solver.Count()
	return n > 0, err
}

// Tautology returns whether every assignment satisfies the expression.
func (solver *Solver) Tautology() (bool, error) {
	n, err := solver.Count()
	return n == 1<<len(solver.vars), err
}
