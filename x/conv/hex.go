// Package conv formats register addresses and values without pulling in fmt.
package conv

const hexd = "0123456789ABCDEF"

// Hex8 renders b as "0x" followed by two uppercase hex digits.
func Hex8(b byte) string {
	buf := [4]byte{'0', 'x', hexd[b>>4], hexd[b&0xF]}
	return string(buf[:])
}

// AppendHex8 appends the Hex8 form of b to dst.
func AppendHex8(dst []byte, b byte) []byte {
	return append(dst, '0', 'x', hexd[b>>4], hexd[b&0xF])
}

// Dec8 renders b in base 10.
func Dec8(b byte) string {
	if b == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for b > 0 {
		i--
		buf[i] = byte('0' + b%10)
		b /= 10
	}
	return string(buf[i:])
}
