package expr

import (
	"github.com/brunokim/truth-table/errors"
)

var (
	// ErrEmptyExpression is returned when there is nothing to evaluate.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrStackUnderflow is returned when an operator lacks an operand.
	ErrStackUnderflow = errors.New("operand stack underflow")
)

// EvalPostfix reduces a postfix expression to a single literal.
//
// The first value popped for an operator is its right operand. Bytes that are
// neither literals nor operators are skipped. If more than one value remains on
// the stack the topmost is returned. On error the result is ErrorChar.
func EvalPostfix(postfix string) (byte, error) {
	stack := make([]byte, 0, len(postfix))
	for i := 0; i < len(postfix); i++ {
		token := postfix[i]
		switch {
		case IsOperand(token):
			stack = append(stack, token)
		case IsOperator(token):
			if len(stack) < 2 {
				return ErrorChar, errors.New("operator %q at %d: %v", token, i, ErrStackUnderflow)
			}
			right, left := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, Apply(token, left, right))
		}
	}
	if len(stack) == 0 {
		return ErrorChar, ErrEmptyExpression
	}
	return stack[len(stack)-1], nil
}

// EvalInfix converts infix to postfix and evaluates it. Negations must have
// been rewritten with FixUnary.
func EvalInfix(infix string) (byte, error) {
	return EvalPostfix(ToPostfix(infix))
}

// Eval evaluates an expression made only of literals, operators and parentheses.
func Eval(infix string) (byte, error) {
	return EvalInfix(FixUnary(infix))
}
