// Package charclass classifies bytes by whether they may appear unescaped
// in assembler symbol text.
package charclass

const (
	safe    = 1 << iota // allowed in an encoded identifier
	tagSafe             // allowed verbatim in a mangled struct tag
)

var table = func() [256]uint8 {
	var t [256]uint8
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = safe | tagSafe
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = safe | tagSafe
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = safe | tagSafe
	}
	t['_'] = safe | tagSafe
	t['.'] = safe
	return t
}()

// IsSafe reports whether b is an ASCII letter, digit, underscore or dot.
func IsSafe(b byte) bool {
	return table[b]&safe != 0
}

// IsTagSafe reports whether b is an ASCII letter, digit or underscore.
// Dot is excluded so that mangled tags never contain two adjacent dots.
func IsTagSafe(b byte) bool {
	return table[b]&tagSafe != 0
}
