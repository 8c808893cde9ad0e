package cwidth

import "sort"

// shift is the number of low bits of a code point held back from the
// offset index and instead binary-searched within a run. 14 low bits
// means each offset-array entry covers a 16384-codepoint plane, enough
// to span all of Unicode (0x10FFFF) in 69 entries.
const shift = 14

// ambiguousRaw is the raw width value a source function can report for
// a code point whose on-screen width depends on terminal/locale
// convention (the "ambiguous width" East Asian Width class, and
// emoji-presentation candidates). A Table never returns this value from
// Width; it is resolved to 1 or 2 by AmbiguousIsWide at build time.
const ambiguousRaw = 3

// Table is a two-level packed lookup from Unicode code point to column
// width (0, 1 or 2). Build one with NewTableFromFunc; the zero Table is
// not usable.
type Table struct {
	offsets []int32
	data    []uint32 // packed (codepoint<<2)|width, sorted within each run
}

// NewTableFromFunc compiles widthOf into a packed Table. widthOf may
// return ambiguousRaw (3) for code points whose width is contextual;
// ambiguousIsWide decides whether those resolve to 2 (wide, as CJK
// locales and most modern terminals treat emoji-presentation
// characters) or 1 (narrow, the POSIX/East-Asian-Width "Narrow"
// default).
//
// widthOf is called once per code point in [0, 0x110000) -- callers
// should keep it cheap or memoize externally for repeated table builds.
func NewTableFromFunc(widthOf func(rune) int, ambiguousIsWide bool) *Table {
	const maxPlane = 0x110000 >> shift // number of offset-array entries
	t := &Table{
		offsets: make([]int32, maxPlane+1),
	}

	for plane := 0; plane <= maxPlane; plane++ {
		t.offsets[plane] = int32(len(t.data))
		if plane == maxPlane {
			break
		}
		base := rune(plane << shift)
		var run []uint32
		for low := 0; low < (1 << shift); low++ {
			cp := base + rune(low)
			w := widthOf(cp)
			if w == ambiguousRaw {
				if ambiguousIsWide {
					w = 2
				} else {
					w = 1
				}
			}
			if w < 0 || w > 2 {
				w = 1
			}
			if len(run) > 0 {
				prevW := run[len(run)-1] & 0x3
				if int(prevW) == w {
					continue // collapse runs of identical width, same as the reference table
				}
			}
			run = append(run, (uint32(cp)<<2)|uint32(w))
		}
		t.data = append(t.data, run...)
	}

	return t
}

// Width reports the column width of cp: 0, 1 or 2. Code points beyond
// 0x10FFFF report 1, matching the reference implementation's treatment
// of out-of-range values as narrow.
func (t *Table) Width(cp rune) int {
	if cp < 0 || cp > 0x10FFFF {
		return 1
	}
	plane := int(cp) >> shift
	low := t.offsets[plane]
	high := t.offsets[plane+1]
	run := t.data[low:high]
	if len(run) == 0 {
		return 1
	}

	// Each entry in run is the packed (codepoint<<2)|width of the FIRST
	// code point at which that width begins; find the last entry whose
	// code point is <= cp.
	key := uint32(cp) << 2
	i := sort.Search(len(run), func(i int) bool {
		return (run[i] &^ 0x3) > key
	})
	if i == 0 {
		return 1
	}
	return int(run[i-1] & 0x3)
}
