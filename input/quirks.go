package input

// Quirk identifies a terminal-specific framing variation that can be
// switched on with Decoder.ActivateQuirk. Quirks are checked before the
// master lookup tables, exactly as the reference decoder's quirk
// entries take priority over its key_mapping_table.
type Quirk int

const (
	// QuirkBackspaceSwap swaps the meaning of 0x08 (BS) and 0x7F (DEL)
	// for the Backspace key, matching terminals configured the
	// opposite way from this decoder's default (DEL = Backspace, BS =
	// Ctrl+Backspace).
	QuirkBackspaceSwap Quirk = iota
	// QuirkC1ForCtrlShift recognizes bare C1 control bytes (0x80-0x9F)
	// as Ctrl+Shift+<letter> combinations, which some terminals
	// synthesize instead of the 7-bit ESC-prefixed equivalent.
	QuirkC1ForCtrlShift
)
