package encodeid

import (
	"asmname/internal/charclass"
	"asmname/internal/scalar"
)

// MangleStructTag escapes the single-byte characters of a struct field tag.
// ASCII letters, digits and underscore are kept; every other single byte,
// dot included, becomes .x followed by two lowercase hex digits. Multi-byte
// characters are copied as they are and left for Encode. A lead byte whose
// sequence is interrupted by a non-continuation byte is escaped like any
// other single byte, so the result never holds two adjacent dots.
func MangleStructTag(tag string) string {
	return mangleStructTag(tag, false)
}

// MangleStructTag is like the package-level MangleStructTag, except that a
// strict encoder escapes each byte of a malformed UTF-8 sequence as .xNN
// rather than copying it.
func (e *Encoder) MangleStructTag(tag string) string {
	return mangleStructTag(tag, e.strict)
}

// EncodeStructTag mangles tag and then selectively encodes the result.
func (e *Encoder) EncodeStructTag(tag string) (Result, error) {
	return e.SelectiveEncode(e.MangleStructTag(tag))
}

func mangleStructTag(tag string, strict bool) string {
	buf := make([]byte, 0, len(tag))
	for off := 0; off < len(tag); {
		n := 1
		if strict {
			if sc, err := scalar.DecodeStrict(tag, off); err == nil {
				n = sc.Len
			}
		} else if sc := scalar.Decode(tag, off); continuations(tag[off+1 : off+sc.Len]) {
			n = sc.Len
		}

		switch {
		case n > 1:
			buf = append(buf, tag[off:off+n]...)
		case charclass.IsTagSafe(tag[off]):
			buf = append(buf, tag[off])
		default:
			buf = append(buf, ".x"...)
			buf = appendHex(buf, uint32(tag[off]), 2)
		}

		off += n
	}

	return string(buf)
}

// continuations reports whether every byte of s is a UTF-8 continuation
// byte (0x80-0xbf).
func continuations(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i]&0xc0 != 0x80 {
			return false
		}
	}

	return true
}
