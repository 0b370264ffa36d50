package expr

import (
	"strings"
)

// FixUnary rewrites every negation of an infix expression as a binary
// operation, inserting a '0' left operand before it, so that "~x" becomes
// "0~x" and evaluates as 0 == x.
//
// A '~' is a negation when it starts the expression or follows '(' or another
// operator. After an operand or ')' it is the binary equivalence and is left
// untouched.
func FixUnary(infix string) string {
	var b strings.Builder
	b.Grow(len(infix) + strings.Count(infix, string(Not)))
	unary := true
	for i := 0; i < len(infix); i++ {
		ch := infix[i]
		switch {
		case ch == Not:
			if unary {
				b.WriteByte('0')
			}
			unary = true
		case IsOperator(ch), ch == '(':
			unary = true
		case IsOperand(ch), IsVariable(ch), ch == ')':
			unary = false
		}
		b.WriteByte(ch)
	}
	return b.String()
}
