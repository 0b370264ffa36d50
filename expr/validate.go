package expr

import (
	"fmt"
)

// InvalidExpressionError describes the first problem found by Validate.
type InvalidExpressionError struct {
	Expression string
	Pos        int
	Msg        string
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("invalid expression %q at %d: %s", e.Expression, e.Pos, e.Msg)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// Validate checks that expression is well formed: only known symbols and
// whitespace, balanced parentheses, and every operator with its operands.
func Validate(expression string) error {
	invalid := func(pos int, msg string, args ...interface{}) error {
		return &InvalidExpressionError{expression, pos, fmt.Sprintf(msg, args...)}
	}
	var open []int
	wantOperand := true
	empty := true
	for i := 0; i < len(expression); i++ {
		ch := expression[i]
		if isSpace(ch) {
			continue
		}
		empty = false
		switch {
		case IsOperand(ch), IsVariable(ch):
			if !wantOperand {
				return invalid(i, "unexpected operand %q", ch)
			}
			wantOperand = false
		case ch == '(':
			if !wantOperand {
				return invalid(i, "unexpected '('")
			}
			open = append(open, i)
		case ch == ')':
			if wantOperand {
				return invalid(i, "unexpected ')'")
			}
			if len(open) == 0 {
				return invalid(i, "unbalanced ')'")
			}
			open = open[:len(open)-1]
		case ch == Not:
			// Prefix negation keeps waiting for an operand.
			wantOperand = true
		case IsOperator(ch):
			if wantOperand {
				return invalid(i, "operator %q lacks left operand", ch)
			}
			wantOperand = true
		default:
			return invalid(i, "unknown symbol %q", ch)
		}
	}
	if empty {
		return invalid(0, "empty expression")
	}
	if wantOperand {
		return invalid(len(expression), "expected operand, found end of expression")
	}
	if len(open) > 0 {
		return invalid(open[len(open)-1], "unbalanced '('")
	}
	return nil
}
