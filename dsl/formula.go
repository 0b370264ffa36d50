// Package dsl builds expressions in table notation from Go calls.
//
// Every binary operation is wrapped in parentheses, so the result doesn't
// depend on operator levels.
package dsl

import (
	"strings"

	"github.com/brunokim/truth-table/expr"
)

func Var(name byte) string {
	return string(name)
}

func True() string { return "1" }
func False() string { return "0" }

func Not(f string) string {
	return string(expr.Not) + "(" + f + ")"
}

func binary(op byte, fs []string) string {
	switch len(fs) {
	case 0:
		return ""
	case 1:
		return fs[0]
	}
	return "(" + strings.Join(fs, string(op)) + ")"
}

// And joins all subformulas with a conjunction.
func And(fs ...string) string { return binary(expr.And, fs) }

// Or joins all subformulas with a disjunction.
func Or(fs ...string) string { return binary(expr.Or, fs) }

func Equiv(a, b string) string { return binary(expr.Equiv, []string{a, b}) }

func Implies(a, b string) string { return binary(expr.Implies, []string{a, b}) }
