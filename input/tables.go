package input

// csiFinalAtoms maps a CSI sequence's final byte, with no numeric
// parameter (or parameter 1, its default), to the key it names. Keyed
// the way the reference tcell input parser's csiAllKeys table is
// keyed: by final byte.
var csiFinalAtoms = map[byte]Atom{
	'A': AtomArrowUp,
	'B': AtomArrowDown,
	'C': AtomArrowRight,
	'D': AtomArrowLeft,
	'H': AtomHome,
	'F': AtomEnd,
	'E': AtomNumpad5, // DEC "begin" key, keypad 5 with numlock off
	'Z': AtomTab,     // CSI Z = back-tab; modifier applied by caller (Shift)
}

// ss3Atoms maps an SS3 (ESC O <final>) sequence's final byte to the key
// it names: application-keypad arrow/Home/End/F1-F4 and the numeric
// keypad digits, grounded on the reference parser's ss3Keys table.
var ss3Atoms = map[byte]Atom{
	'A': AtomArrowUp,
	'B': AtomArrowDown,
	'C': AtomArrowRight,
	'D': AtomArrowLeft,
	'H': AtomHome,
	'F': AtomEnd,
	'P': AtomF1,
	'Q': AtomF2,
	'R': AtomF3,
	'S': AtomF4,
	'M': AtomNumpadEnter,
	'j': AtomNumpadMultiply,
	'k': AtomNumpadAdd,
	'm': AtomNumpadSubtract,
	'n': AtomNumpadDecimal,
	'o': AtomNumpadDivide,
	'p': AtomNumpad0,
	'q': AtomNumpad1,
	'r': AtomNumpad2,
	's': AtomNumpad3,
	't': AtomNumpad4,
	'u': AtomNumpad5,
	'v': AtomNumpad6,
	'w': AtomNumpad7,
	'x': AtomNumpad8,
	'y': AtomNumpad9,
}

// csiTildeAtoms maps the leading numeric parameter of a "CSI n ~"
// sequence to the key it names, grounded on the DEC/xterm convention
// the reference parser's csiAllKeys table encodes under final byte '~'.
var csiTildeAtoms = map[int]Atom{
	1:  AtomHome,
	2:  AtomInsert,
	3:  AtomDelete,
	4:  AtomEnd,
	5:  AtomPageUp,
	6:  AtomPageDown,
	7:  AtomHome,
	8:  AtomEnd,
	11: AtomF1,
	12: AtomF2,
	13: AtomF3,
	14: AtomF4,
	15: AtomF5,
	17: AtomF6,
	18: AtomF7,
	19: AtomF8,
	20: AtomF9,
	21: AtomF10,
	23: AtomF11,
	24: AtomF12,
	25: AtomF13,
	26: AtomF14,
	28: AtomF15,
	29: AtomF16,
	31: AtomF17,
	32: AtomF18,
	33: AtomF19,
	34: AtomF20,
	200: AtomPasteBegin,
	201: AtomPasteEnd,
}

// linuxConsoleFKeys maps the Linux console's legacy "ESC [ [ <letter>"
// function key framing (no tilde, distinct from the xterm table above).
var linuxConsoleFKeys = map[byte]Atom{
	'A': AtomF1,
	'B': AtomF2,
	'C': AtomF3,
	'D': AtomF4,
	'E': AtomF5,
}

// calcModifier decodes the xterm modifier parameter convention: the
// wire value is the modifier bitmask plus one, bit0=Shift, bit1=Alt,
// bit2=Ctrl, bit3=Meta. A value of 0 or 1 means no modifiers.
func calcModifier(n int) Modifiers {
	if n <= 1 {
		return 0
	}
	n--
	var mod Modifiers
	if n&1 != 0 {
		mod |= Shift
	}
	if n&2 != 0 {
		mod |= Alt
	}
	if n&4 != 0 {
		mod |= Ctrl
	}
	if n&8 != 0 {
		mod |= Meta
	}
	return mod
}
