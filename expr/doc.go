// Package expr evaluates boolean expressions written in infix notation.
//
// Expressions are sequences of single-byte symbols: the literals 0 and 1, the
// variables a-z, parentheses and five operators, grouped from the tightest
// binding level to the loosest:
//
//	~     negation (prefix) or equivalence (infix)
//	^ &   conjunction ("and"), disjunction ("or")
//	< >   equivalence, implication
//
// Operators of the same level associate to the left. Evaluation runs in three
// steps: FixUnary rewrites every prefix ~ as the binary "0~", ToPostfix
// reorders the expression with the shunting-yard algorithm, and EvalPostfix
// reduces it with an operand stack. Variables must be substituted by literals
// beforehand, see Substitute.
//
// None of these functions check that the expression is well formed. Use
// Validate to reject unbalanced parentheses and unknown symbols up front.
package expr
