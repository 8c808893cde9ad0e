package input

// Atom names a non-printable key, named after the W3C UI Events `code`
// vocabulary, the same naming source the reference input decoder's
// atom table cites.
type Atom string

const (
	AtomEnter       Atom = "Enter"
	AtomSpace       Atom = "Space"
	AtomTab         Atom = "Tab"
	AtomBackspace   Atom = "Backspace"
	AtomContextMenu Atom = "ContextMenu"
	AtomDelete      Atom = "Delete"
	AtomEnd         Atom = "End"
	AtomHome        Atom = "Home"
	AtomInsert      Atom = "Insert"
	AtomPageDown    Atom = "PageDown"
	AtomPageUp      Atom = "PageUp"
	AtomArrowDown   Atom = "ArrowDown"
	AtomArrowLeft   Atom = "ArrowLeft"
	AtomArrowRight  Atom = "ArrowRight"
	AtomArrowUp     Atom = "ArrowUp"

	AtomNumpadDivide   Atom = "NumpadDivide"
	AtomNumpadMultiply Atom = "NumpadMultiply"
	AtomNumpadSubtract Atom = "NumpadSubtract"
	AtomNumpadAdd      Atom = "NumpadAdd"
	AtomNumpadEnter    Atom = "NumpadEnter"
	AtomNumpadDecimal  Atom = "NumpadDecimal"
	AtomNumpad0        Atom = "Numpad0"
	AtomNumpad1        Atom = "Numpad1"
	AtomNumpad2        Atom = "Numpad2"
	AtomNumpad3        Atom = "Numpad3"
	AtomNumpad4        Atom = "Numpad4"
	AtomNumpad5        Atom = "Numpad5"
	AtomNumpad6        Atom = "Numpad6"
	AtomNumpad7        Atom = "Numpad7"
	AtomNumpad8        Atom = "Numpad8"
	AtomNumpad9        Atom = "Numpad9"

	AtomEscape Atom = "Escape"

	AtomF1  Atom = "F1"
	AtomF2  Atom = "F2"
	AtomF3  Atom = "F3"
	AtomF4  Atom = "F4"
	AtomF5  Atom = "F5"
	AtomF6  Atom = "F6"
	AtomF7  Atom = "F7"
	AtomF8  Atom = "F8"
	AtomF9  Atom = "F9"
	AtomF10 Atom = "F10"
	AtomF11 Atom = "F11"
	AtomF12 Atom = "F12"
	AtomF13 Atom = "F13"
	AtomF14 Atom = "F14"
	AtomF15 Atom = "F15"
	AtomF16 Atom = "F16"
	AtomF17 Atom = "F17"
	AtomF18 Atom = "F18"
	AtomF19 Atom = "F19"
	AtomF20 Atom = "F20"

	AtomFocusIn    Atom = "FocusIn"
	AtomFocusOut   Atom = "FocusOut"
	AtomPasteBegin Atom = "PasteBegin"
	AtomPasteEnd   Atom = "PasteEnd"

	// AtomIResync names the "CSI 0 n" resync acknowledgement reply,
	// matching the reference decoder's i_resync atom.
	AtomIResync Atom = "i_resync"
)
