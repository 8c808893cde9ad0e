package cwidth

import "testing"

func TestTableBasicASCII(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', ' ', '~'} {
		if w := Default.Width(r); w != 1 {
			t.Errorf("Width(%q) = %d, want 1", r, w)
		}
	}
}

func TestTableControlAndZeroWidth(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{0x0300, 0}, // combining grave accent
		{0x200D, 0}, // zero width joiner
		{0xFE0F, 0}, // variation selector-16
	}
	for _, c := range cases {
		if w := Default.Width(c.r); w != c.want {
			t.Errorf("Width(%U) = %d, want %d", c.r, w, c.want)
		}
	}
}

func TestTableWideCJK(t *testing.T) {
	cases := []rune{0x4E2D, 0x65E5, 0xAC00} // CJK ideographs, Hangul
	for _, r := range cases {
		if w := Default.Width(r); w != 2 {
			t.Errorf("Width(%U) = %d, want 2", r, w)
		}
	}
}

func TestTableOutOfRange(t *testing.T) {
	if w := Default.Width(-1); w != 1 {
		t.Errorf("Width(-1) = %d, want 1", w)
	}
	if w := Default.Width(0x110000); w != 1 {
		t.Errorf("Width(0x110000) = %d, want 1", w)
	}
}

func TestKonsoleProfilesDiffer(t *testing.T) {
	// Box drawing should be wide under Konsole2018, narrow again under
	// Konsole2022, which reverted that block to single width.
	r := rune(0x2500)
	if w := Konsole2018.Width(r); w != 2 {
		t.Errorf("Konsole2018.Width(%U) = %d, want 2", r, w)
	}
	if w := Konsole2022.Width(r); w != 1 {
		t.Errorf("Konsole2022.Width(%U) = %d, want 1", r, w)
	}
}

func TestNewTableFromFuncClipsInvalidWidths(t *testing.T) {
	tbl := NewTableFromFunc(func(r rune) int {
		if r == 'x' {
			return -5
		}
		return 1
	}, false)
	if w := tbl.Width('x'); w != 1 {
		t.Errorf("Width('x') = %d, want clipped to 1", w)
	}
}
