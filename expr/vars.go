package expr

import (
	"github.com/brunokim/truth-table/letters"
)

// Variables returns the distinct variables of expression in alphabetical order.
func Variables(expression string) []byte {
	return letters.Count(expression).Letters()
}

// Substitute replaces every occurrence of vars[i] in expression with bits[i].
// The slices must have the same length.
func Substitute(expression string, vars, bits []byte) string {
	var index [letters.Size]int
	for i, v := range vars {
		if letters.Is(v) {
			index[v-'a'] = i + 1
		}
	}
	bs := []byte(expression)
	for k, ch := range bs {
		if !letters.Is(ch) {
			continue
		}
		if i := index[ch-'a']; i > 0 {
			bs[k] = bits[i-1]
		}
	}
	return string(bs)
}
