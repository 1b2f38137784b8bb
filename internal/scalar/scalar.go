// Package scalar extracts Unicode scalar values from byte strings one at a
// time.
//
// Decode is lenient: it never fails and always consumes at least one byte,
// deriving the sequence length from the number of leading 1 bits of the
// lead byte when the input is not well-formed UTF-8. DecodeStrict rejects
// such input instead.
package scalar

import (
	"errors"
	"fmt"
	"math/bits"
	"unicode/utf8"
)

// ErrMalformed is returned by DecodeStrict for bytes that do not form a
// well-formed UTF-8 sequence.
var ErrMalformed = errors.New("malformed UTF-8 sequence")

// Scalar is one decoded code point and the number of source bytes it
// occupied.
type Scalar struct {
	Rune rune
	Len  int
}

// MultiByte reports whether the scalar was decoded from more than one byte.
func (s Scalar) MultiByte() bool {
	return s.Len > 1
}

// SeqLen returns the number of leading 1 bits of lead, which is the length
// of the UTF-8 sequence it introduces. ASCII bytes return 0.
func SeqLen(lead byte) int {
	return bits.LeadingZeros8(^lead)
}

// Decode returns the scalar starting at s[off]. off must be within s.
func Decode(s string, off int) Scalar {
	b := s[off]
	if b < utf8.RuneSelf {
		return Scalar{Rune: rune(b), Len: 1}
	}

	if r, n := utf8.DecodeRuneInString(s[off:]); r != utf8.RuneError || n > 1 {
		return Scalar{Rune: r, Len: n}
	}

	return decodeLeadingOnes(s, off)
}

// decodeLeadingOnes decodes whatever bit pattern is present: overlong
// forms, surrogates and stray continuation bytes are not rejected. A
// sequence cut short by the end of s consumes only the bytes present.
func decodeLeadingOnes(s string, off int) Scalar {
	lead := s[off]
	n := SeqLen(lead)

	end := min(off+n, len(s))

	// 0x7f>>n == (1<<(7-n))-1 for n <= 7, and 0 for n == 8.
	v := uint32(lead & (0x7f >> n))
	for i := off + 1; i < end; i++ {
		v = v<<6 | uint32(s[i]&0x3f)
	}

	return Scalar{Rune: rune(v), Len: end - off}
}

// DecodeStrict returns the scalar starting at s[off], or ErrMalformed if
// the bytes there are not a well-formed UTF-8 sequence.
func DecodeStrict(s string, off int) (Scalar, error) {
	b := s[off]
	if b < utf8.RuneSelf {
		return Scalar{Rune: rune(b), Len: 1}, nil
	}

	r, n := utf8.DecodeRuneInString(s[off:])
	if r == utf8.RuneError && n <= 1 {
		return Scalar{}, fmt.Errorf("%w at offset %d (byte %#02x)", ErrMalformed, off, b)
	}

	return Scalar{Rune: r, Len: n}, nil
}
