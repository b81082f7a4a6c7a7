// Package bitx holds small generic helpers for contiguous bit spans inside
// fixed-width register values.
package bitx

import "golang.org/x/exp/constraints"

// Mask returns a right-aligned mask of width ones. Widths at or beyond the
// bit size of T yield all ones.
func Mask[T constraints.Unsigned](width uint8) T {
	var all T = ^T(0)
	if uint(width) >= bitsOf[T]() {
		return all
	}
	return (T(1) << width) - 1
}

// Span returns the mask for width bits starting at offset.
func Span[T constraints.Unsigned](offset, width uint8) T {
	return Mask[T](width) << offset
}

// Extract returns the width-bit value stored at offset in v.
func Extract[T constraints.Unsigned](v T, offset, width uint8) T {
	return (v >> offset) & Mask[T](width)
}

// Insert replaces the width-bit span at offset in v with x. Bits of x above
// width are discarded; bits of v outside the span are kept.
func Insert[T constraints.Unsigned](v T, offset, width uint8, x T) T {
	span := Span[T](offset, width)
	return (v &^ span) | ((x << offset) & span)
}

// Fits reports whether x can be stored in width bits without truncation.
func Fits[T constraints.Unsigned](x T, width uint8) bool {
	return x&^Mask[T](width) == 0
}

// Overlaps reports whether two spans share any bit.
func Overlaps[T constraints.Unsigned](a, b T) bool { return a&b != 0 }

func bitsOf[T constraints.Unsigned]() uint {
	var n uint
	for v := ^T(0); v != 0; v >>= 1 {
		n++
	}
	return n
}
