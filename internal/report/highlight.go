package report

import "strings"

// markers lists each escape prefix with the number of hex digits after it.
var markers = []struct {
	prefix string
	digits int
}{
	{"..U", 8},
	{"..u", 4},
	{".x", 2},
}

// Highlight returns s with every escape marker and its hex digits passed
// through paint.
func Highlight(s string, paint func(a ...any) string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		n := markerLen(s[i:])
		if n == 0 {
			b.WriteByte(s[i])
			i++

			continue
		}

		b.WriteString(paint(s[i : i+n]))
		i += n
	}

	return b.String()
}

func markerLen(s string) int {
	for _, m := range markers {
		n := len(m.prefix) + m.digits
		if len(s) >= n && strings.HasPrefix(s, m.prefix) && isLowerHex(s[len(m.prefix):n]) {
			return n
		}
	}

	return 0
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
