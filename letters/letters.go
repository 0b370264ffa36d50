// Package letters counts occurrences of the lowercase variables a-z.
package letters

// Size is the number of distinct variable letters.
const Size = 26

// Is returns whether ch is a lowercase ASCII letter.
func Is(ch byte) bool {
	return 'a' <= ch && ch <= 'z'
}

// Counter records how often each letter appears, indexed by offset from 'a'.
type Counter [Size]int

// Count scans s once and counts its letters. Other bytes are ignored.
func Count(s string) Counter {
	var c Counter
	for i := 0; i < len(s); i++ {
		if Is(s[i]) {
			c[s[i]-'a']++
		}
	}
	return c
}

// Distinct returns the number of letters that appear at least once.
func (c Counter) Distinct() int {
	n := 0
	for _, cnt := range c {
		if cnt > 0 {
			n++
		}
	}
	return n
}

// Letters lists the letters that appear, in alphabetical order.
func (c Counter) Letters() []byte {
	var ls []byte
	for i, cnt := range c {
		if cnt > 0 {
			ls = append(ls, byte('a'+i))
		}
	}
	return ls
}
