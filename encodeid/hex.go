package encodeid

const hexDigits = "0123456789abcdef"

// appendHex appends the low digits*4 bits of v to dst as exactly digits
// lowercase hex digits.
func appendHex(dst []byte, v uint32, digits int) []byte {
	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(v>>uint(shift))&0xf])
	}

	return dst
}
