package expr_test

import (
	"fmt"

	"github.com/brunokim/truth-table/expr"
)

func ExampleToPostfix() {
	fmt.Println(expr.ToPostfix("(1>0)^1"))
	fmt.Println(expr.ToPostfix("1>0^1"))
	// Output: 10>1^
	// 101^>
}

func ExampleEval() {
	infix := expr.Substitute("~p>(p^q)", []byte("pq"), []byte("01"))
	fixed := expr.FixUnary(infix)
	fmt.Println(infix, fixed, expr.ToPostfix(fixed))
	result, err := expr.Eval(infix)
	fmt.Printf("%c %v\n", result, err)
	// Output: ~0>(0^1) 0~0>(0^1) 00~01^>
	// 0 <nil>
}
