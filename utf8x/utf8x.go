package utf8x

import "unicode/utf8"

// RuneError is returned by Decode for invalid sequences, matching
// unicode/utf8.RuneError (U+FFFD).
const RuneError = utf8.RuneError

// LengthOfLeadingByte reports how many bytes a UTF-8 sequence starting
// with b is supposed to occupy, based purely on the leading byte's high
// bits. It returns 0 for a continuation byte (0x80-0xBF, not a valid
// sequence start) and 1 for any byte it doesn't recognize as a
// multi-byte lead, so callers can always make progress one byte at a
// time on garbage input.
//
// The extended parameter also recognizes the legacy 5- and 6-byte lead
// patterns (0xF8-0xFB, 0xFC-0xFD) withdrawn by RFC 3629.
func LengthOfLeadingByte(b byte, extended bool) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	case extended && b&0xFC == 0xF8:
		return 5
	case extended && b&0xFE == 0xFC:
		return 6
	case b&0xC0 == 0x80:
		return 0
	default:
		return 1
	}
}

// Decode reads one code point from the front of buf. It returns the
// decoded rune, the number of bytes consumed, and ok=false if buf does
// not begin with a complete, valid sequence (either truncated or
// malformed) -- callers distinguish "need more bytes" (n set to the
// full expected length of the leading byte, all of buf consumed) from
// "malformed" (n == 1, drop one byte and resync) by comparing n against
// len(buf).
func Decode(buf []byte) (r rune, n int, ok bool) {
	if len(buf) == 0 {
		return RuneError, 0, false
	}

	want := LengthOfLeadingByte(buf[0], true)
	if want <= 1 {
		if buf[0] < 0x80 {
			return rune(buf[0]), 1, true
		}
		return RuneError, 1, false
	}

	if want <= 4 {
		rr, size := utf8.DecodeRune(buf)
		if rr != utf8.RuneError || size > 1 {
			return rr, size, true
		}
		if len(buf) < want {
			return RuneError, want, false // truncated, need more input
		}
		return RuneError, 1, false
	}

	// Extended 5/6 byte legacy forms: unicode/utf8 has no support for
	// these, decode by hand.
	if len(buf) < want {
		return RuneError, want, false
	}
	var cp, minCP rune
	var firstMask byte
	switch want {
	case 5:
		firstMask = 0x03
		minCP = 0x200000
	case 6:
		firstMask = 0x01
		minCP = 0x4000000
	}
	cp = rune(buf[0] & firstMask)
	for i := 1; i < want; i++ {
		b := buf[i]
		if b&0xC0 != 0x80 {
			return RuneError, 1, false
		}
		cp = cp<<6 | rune(b&0x3F)
	}
	if cp > 0x7FFFFFFF || cp < minCP {
		return RuneError, 1, false
	}
	return cp, want, true
}

// Validate reports whether buf is entirely well-formed UTF-8, accepting
// the extended 5/6-byte legacy forms in addition to the strict RFC 3629
// subset.
func Validate(buf []byte) bool {
	for len(buf) > 0 {
		_, n, ok := Decode(buf)
		if !ok {
			return false
		}
		buf = buf[n:]
	}
	return true
}

// Encode appends the UTF-8 encoding of r to dst and returns the
// extended slice. Code points in the standard range (<= 0x10FFFF) use
// unicode/utf8.AppendRune; larger values, only reachable via the
// legacy extended forms, are encoded by hand in the 5/6-byte layout.
func Encode(dst []byte, r rune) []byte {
	if r < 0 || r > 0x7FFFFFFF {
		r = utf8.RuneError
	}
	if r <= 0x10FFFF {
		return utf8.AppendRune(dst, r)
	}
	if r <= 0x3FFFFFF {
		return append(dst,
			0xF8|byte(r>>24),
			0x80|byte(r>>18)&0x3F,
			0x80|byte(r>>12)&0x3F,
			0x80|byte(r>>6)&0x3F,
			0x80|byte(r)&0x3F,
		)
	}
	return append(dst,
		0xFC|byte(r>>30),
		0x80|byte(r>>24)&0x3F,
		0x80|byte(r>>18)&0x3F,
		0x80|byte(r>>12)&0x3F,
		0x80|byte(r>>6)&0x3F,
		0x80|byte(r)&0x3F,
	)
}

// UTF16Split reports the UTF-16 surrogate pair (hi, lo) needed to
// represent r when r lies outside the Basic Multilingual Plane.
// For r within the BMP, ok is false and callers should use rune(r)
// directly as a single 16-bit unit.
func UTF16Split(r rune) (hi, lo uint16, ok bool) {
	if r < 0x10000 || r > 0x10FFFF {
		return 0, 0, false
	}
	r -= 0x10000
	hi = uint16(0xD800 + (r >> 10))
	lo = uint16(0xDC00 + (r & 0x3FF))
	return hi, lo, true
}
