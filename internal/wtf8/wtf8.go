// Package wtf8 converts between 16-bit native strings and a byte encoding
// that is a superset of UTF-8.
//
// Windows command lines are sequences of 16-bit code units that are usually,
// but not necessarily, well-formed UTF-16. Converting them through the
// standard UTF-16 decoder replaces unpaired surrogates with U+FFFD and loses
// information. This package instead encodes an unpaired surrogate as the
// three bytes its code point would take in UTF-8, so that any code unit
// sequence round-trips exactly. Well-formed input encodes to plain UTF-8.
package wtf8

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	surrMin = 0xD800
	surrMax = 0xDFFF
)

// EncodeUTF16 converts a native 16-bit string to its byte encoding. Paired
// surrogates become the code point they stand for; an unpaired surrogate
// becomes three bytes carrying its own value.
func EncodeUTF16(units []uint16) string {
	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < surrMin || u > surrMax:
			b.WriteRune(rune(u))
		case u < 0xDC00 && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= surrMax:
			b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		default:
			// Unpaired surrogate: the generalized three-byte form.
			b.WriteByte(0xE0 | byte(u>>12))
			b.WriteByte(0x80 | byte(u>>6)&0x3F)
			b.WriteByte(0x80 | byte(u)&0x3F)
		}
	}
	return b.String()
}

// DecodeUTF16 converts a byte-encoded string back to 16-bit code units.
// Three-byte surrogate sequences written by EncodeUTF16 come back as the
// unpaired surrogate they encode; any other byte sequence that is not valid
// UTF-8 decodes to U+FFFD per byte.
func DecodeUTF16(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if u, ok := surrogateAt(s, i); ok {
			units = append(units, u)
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units
}

// surrogateAt reports whether a three-byte encoded surrogate starts at i.
// The standard decoder rejects these, so they are matched by hand: 0xED
// followed by a continuation byte in A0..BF covers exactly D800..DFFF.
func surrogateAt(s string, i int) (uint16, bool) {
	if i+3 > len(s) || s[i] != 0xED {
		return 0, false
	}
	b1, b2 := s[i+1], s[i+2]
	if b1 < 0xA0 || b1 > 0xBF || b2 < 0x80 || b2 > 0xBF {
		return 0, false
	}
	return 0xD000 | uint16(b1&0x3F)<<6 | uint16(b2&0x3F), true
}
