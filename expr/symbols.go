package expr

import (
	"github.com/brunokim/truth-table/letters"
)

// Operator symbols.
const (
	Not     byte = '~'
	Or      byte = '&'
	And     byte = '^'
	Equiv   byte = '<'
	Implies byte = '>'
)

// ErrorChar is the result of an evaluation that couldn't be carried out.
const ErrorChar byte = '?'

var (
	operators  = [...]byte{Not, Or, And, Equiv, Implies}
	precedence = [...]int{2, 3, 3, 4, 4}
)

// IsOperand returns whether ch is one of the literals '0' or '1'.
func IsOperand(ch byte) bool {
	return ch == '0' || ch == '1'
}

// IsVariable returns whether ch is a variable name.
func IsVariable(ch byte) bool {
	return letters.Is(ch)
}

// IsOperator returns whether ch is one of the operator symbols.
func IsOperator(ch byte) bool {
	return Precedence(ch) >= 0
}

// Precedence returns the level of an operator, or -1 if ch is not an operator.
// Lower levels bind tighter.
func Precedence(ch byte) int {
	for i, op := range operators {
		if op == ch {
			return precedence[i]
		}
	}
	return -1
}

func toChar(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// Apply computes the truth function of op over two literals.
// It returns ErrorChar for an unknown operator or a non-literal operand.
func Apply(op, left, right byte) byte {
	if !IsOperand(left) || !IsOperand(right) {
		return ErrorChar
	}
	val1, val2 := left == '1', right == '1'
	switch op {
	case And:
		return toChar(val1 && val2)
	case Or:
		return toChar(val1 || val2)
	case Equiv, Not:
		return toChar(val1 == val2)
	case Implies:
		return toChar(!val1 || val2)
	}
	return ErrorChar
}
