package transcode

import "unicode/utf8"

// The styled alphabets live almost entirely above the Basic Multilingual
// Plane, where a scalar value does not fit one 16-bit code unit and is
// carried as a high/low surrogate pair instead. Transports that count
// UTF-16 code units (message length caps, entity offsets) therefore see
// two units per styled letter.

const (
	surrSelf = 0x10000 // first scalar value needing a pair
	surrHigh = 0xD800
	surrLow  = 0xDC00
)

// NeedsSurrogatePair reports whether r occupies two UTF-16 code units.
func NeedsSurrogatePair(r rune) bool { return r >= surrSelf }

// SurrogatePair splits a supplementary-plane scalar value into its UTF-16
// high and low surrogate code units. Values below U+10000 are their own
// single unit; for those the low half is zero.
func SurrogatePair(r rune) (hi, lo uint16) {
	if r < surrSelf {
		return uint16(r), 0
	}
	v := r - surrSelf
	return uint16(surrHigh + (v >> 10)), uint16(surrLow + (v & 0x3FF))
}

// UTF16Len counts the UTF-16 code units needed to carry s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if NeedsSurrogatePair(r) {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// ScalarCount counts the Unicode scalar values in s.
func ScalarCount(s string) int {
	return utf8.RuneCountInString(s)
}
