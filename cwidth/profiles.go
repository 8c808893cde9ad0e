package cwidth

import "github.com/unilibs/uniwidth"

// Default is the general-purpose width table: plain uniwidth.RuneWidth,
// ambiguous-width code points resolved narrow. This matches the
// teacher's own width.go, which forwards straight to uniwidth with no
// profile selection.
var Default = NewTableFromFunc(func(r rune) int {
	return uniwidth.RuneWidth(r)
}, false)

// Konsole2018 widens ambiguous-width code points, matching the
// classification Konsole shipped around 2018: East-Asian "Ambiguous"
// and emoji-presentation candidates render as two columns.
//
// uniwidth does not expose a raw "ambiguous" class separately from a
// resolved width, so this profile is derived by widening uniwidth's
// narrow default for the code point instead of sourcing the original
// per-codepoint classification table, which is not available in this
// repository; see DESIGN.md.
var Konsole2018 = NewTableFromFunc(func(r rune) int {
	w := uniwidth.RuneWidth(r)
	if w == 1 && isLikelyAmbiguous(r) {
		return 2
	}
	return w
}, true)

// Konsole2022 narrows the East Asian "Ambiguous" block back down
// relative to Konsole2018 for the ranges Konsole's 2022 release
// reverted to single-width, while keeping emoji-presentation wide.
var Konsole2022 = NewTableFromFunc(func(r rune) int {
	w := uniwidth.RuneWidth(r)
	if w == 1 && isLikelyAmbiguous(r) && !isEastAsianAmbiguousBlock(r) {
		return 2
	}
	return w
}, true)

// isLikelyAmbiguous approximates the Unicode "Ambiguous" East Asian
// Width class plus emoji-presentation candidates: box drawing,
// general punctuation doubles, and the common emoji ranges. This is a
// coarse stand-in for the original's generated classification tables
// (charclassification_konsole_2018.inc / _2022.inc), which are not
// present in this repository's reference material.
func isLikelyAmbiguous(r rune) bool {
	switch {
	case r >= 0x2010 && r <= 0x2027: // general punctuation dashes/quotes
		return true
	case r >= 0x2500 && r <= 0x257F: // box drawing
		return true
	case r >= 0x2580 && r <= 0x259F: // block elements
		return true
	case r >= 0x25A0 && r <= 0x25FF: // geometric shapes
		return true
	case r >= 0x2600 && r <= 0x26FF: // miscellaneous symbols (emoji-adjacent)
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r >= 0x1F300 && r <= 0x1FAFF: // emoji blocks
		return true
	default:
		return false
	}
}

// isEastAsianAmbiguousBlock marks the subset of isLikelyAmbiguous's
// ranges that Konsole's 2022 classification update reverted to
// single-width (box drawing, block elements and geometric shapes), per the change
// summarized in termpaint_char_width.h's table selection comment.
func isEastAsianAmbiguousBlock(r rune) bool {
	return (r >= 0x2500 && r <= 0x259F) || (r >= 0x25A0 && r <= 0x25FF)
}
