package utf8x

import "testing"

func TestLengthOfLeadingByte(t *testing.T) {
	cases := []struct {
		b        byte
		extended bool
		want     int
	}{
		{'a', false, 1},
		{0xC2, false, 2},
		{0xE2, false, 3},
		{0xF0, false, 4},
		{0xF8, false, 1}, // not extended: treated as a stray byte
		{0xF8, true, 5},
		{0xFC, true, 6},
		{0x80, false, 0}, // bare continuation byte
	}
	for _, c := range cases {
		if got := LengthOfLeadingByte(c.b, c.extended); got != c.want {
			t.Errorf("LengthOfLeadingByte(%#x, %v) = %d, want %d", c.b, c.extended, got, c.want)
		}
	}
}

func TestDecodeASCII(t *testing.T) {
	r, n, ok := Decode([]byte("a"))
	if !ok || r != 'a' || n != 1 {
		t.Errorf("Decode(a) = %q, %d, %v", r, n, ok)
	}
}

func TestDecodeMultiByte(t *testing.T) {
	// "中" U+4E2D
	buf := []byte{0xE4, 0xB8, 0xAD}
	r, n, ok := Decode(buf)
	if !ok || r != 0x4E2D || n != 3 {
		t.Errorf("Decode(中) = %U, %d, %v", r, n, ok)
	}
}

func TestDecodeTruncatedWantsMoreBytes(t *testing.T) {
	buf := []byte{0xE4, 0xB8} // missing final continuation byte
	r, n, ok := Decode(buf)
	if ok || n != 3 {
		t.Errorf("Decode(truncated) = %U, %d, %v; want n=3, ok=false", r, n, ok)
	}
}

func TestDecodeMalformedResyncsOneByte(t *testing.T) {
	buf := []byte{0xFF, 'a'}
	r, n, ok := Decode(buf)
	if ok || n != 1 || r != RuneError {
		t.Errorf("Decode(malformed) = %U, %d, %v; want RuneError, 1, false", r, n, ok)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, r := range []rune{'a', 0x4E2D, 0x1F600} {
		buf := Encode(nil, r)
		got, n, ok := Decode(buf)
		if !ok || got != r || n != len(buf) {
			t.Errorf("round trip %U: got %U, n=%d, ok=%v", r, got, n, ok)
		}
	}
}

func TestValidate(t *testing.T) {
	if !Validate([]byte("hello 中文")) {
		t.Errorf("Validate(valid utf8) = false")
	}
	if Validate([]byte{0xFF, 0xFE}) {
		t.Errorf("Validate(invalid) = true")
	}
}

func TestUTF16Split(t *testing.T) {
	hi, lo, ok := UTF16Split(0x1F600) // outside BMP
	if !ok || hi != 0xD83D || lo != 0xDE00 {
		t.Errorf("UTF16Split(0x1F600) = %x, %x, %v", hi, lo, ok)
	}
	if _, _, ok := UTF16Split('a'); ok {
		t.Errorf("UTF16Split('a') ok = true, want false (BMP)")
	}
}
