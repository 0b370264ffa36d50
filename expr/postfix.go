package expr

import (
	"strings"
)

// ToPostfix converts an infix expression to postfix notation, using the
// shunting-yard algorithm.
//
// Operators pop the stack while the top has a lower or equal level, so operators
// of the same level associate to the left. Bytes that are not literals,
// operators or parentheses are dropped. Parentheses are not checked: an
// unmatched ')' only empties the stack, and an unmatched '(' is discarded.
func ToPostfix(infix string) string {
	var b strings.Builder
	b.Grow(len(infix))
	var ops []byte
	for i := 0; i < len(infix); i++ {
		ch := infix[i]
		switch {
		case IsOperand(ch):
			b.WriteByte(ch)
		case ch == '(':
			ops = append(ops, ch)
		case ch == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				b.WriteByte(ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1]
			}
		case IsOperator(ch):
			for len(ops) > 0 && ops[len(ops)-1] != '(' && Precedence(ch) >= Precedence(ops[len(ops)-1]) {
				b.WriteByte(ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, ch)
		}
	}
	for len(ops) > 0 {
		if top := ops[len(ops)-1]; top != '(' {
			b.WriteByte(top)
		}
		ops = ops[:len(ops)-1]
	}
	return b.String()
}
