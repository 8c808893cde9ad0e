package input

// Modifiers is a bitmask of keyboard modifiers active alongside a key,
// character, or mouse event.
type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Alt
	Ctrl
	Meta
)

// MouseAction classifies a MouseEvent.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
	MouseWheelUp
	MouseWheelDown
)

// Event is implemented by every event type the decoder emits. A port
// should use this kind of true tagged variant rather than a single
// struct with an embedded kind discriminator, so a type switch over
// Event is exhaustive-checkable.
type Event interface {
	event()
}

// KeyEvent reports a non-printable key press, identified by Atom
// (arrow keys, function keys, Enter, Escape, ...).
type KeyEvent struct {
	Atom      Atom
	Modifiers Modifiers
}

func (KeyEvent) event() {}

// CharEvent reports one grapheme of printable text, already UTF-8
// decoded, optionally chorded with modifiers (the modifyOtherKeys
// protocol can report Ctrl/Shift held alongside an otherwise-printable
// character, e.g. Shift+Ctrl+Tab arriving as "\x1B[27;6;9~").
type CharEvent struct {
	Text      string
	Modifiers Modifiers
}

func (CharEvent) event() {}

// CursorPositionEvent reports a terminal's reply to a cursor position
// request (CSI row ; col R, or the "safe" form CSI ? row ; col R), 0-based.
// Safe is set when the reply used the "?"-prefixed safe form.
type CursorPositionEvent struct {
	Row, Col int
	Safe     bool
}

func (CursorPositionEvent) event() {}

// MouseEvent reports a mouse button, wheel, or motion report. Row and
// Col are 0-based cell coordinates.
type MouseEvent struct {
	Action    MouseAction
	Button    int // 0-2 for left/middle/right; -1 if not applicable (move with no button down)
	Row, Col  int
	Modifiers Modifiers
	Raw       int // undecoded button/flag value as carried on the wire, before the offset and bit decoding above
}

func (MouseEvent) event() {}

// PasteEvent reports bracketed-paste text. It is only emitted when the
// decoder has paste handling enabled (see WithPasteHandling); otherwise
// the paste markers surface as plain KeyEvent{Atom: AtomPasteBegin/End}
// pairs with the pasted bytes decoded as ordinary Char/Key events in
// between.
type PasteEvent struct {
	Text string
}

func (PasteEvent) event() {}

// MiscEvent reports a standalone signal with no further payload: focus
// in/out, or the i_resync acknowledgement.
type MiscEvent struct {
	Atom Atom
}

func (MiscEvent) event() {}

// ModeReportEvent reports a terminal mode query reply (DECRPM, "CSI ?
// mode ; value $y").
type ModeReportEvent struct {
	Mode      int
	Private   bool
	Value     int
}

func (ModeReportEvent) event() {}

// PaletteColorReportEvent reports an OSC 4 "get color" reply for one
// palette slot. Index is -1 for the urxvt "no index" form (OSC 4;desc),
// which names a color by description rather than palette slot. Raw
// carries the undecoded color descriptor string alongside the parsed
// RGB value, since some descriptors (color names, "rgbi:" specs) do not
// reduce to an RGB triple at all.
type PaletteColorReportEvent struct {
	Index   int
	R, G, B uint16
	Raw     string
}

func (PaletteColorReportEvent) event() {}

// ColorSlotReportEvent reports an OSC 10/11/12/13/14/17/19/705-708
// color-slot query reply ("get foreground/background/cursor/... color").
type ColorSlotReportEvent struct {
	Slot    string // "foreground", "background", "cursor", "pointer-foreground", "pointer-background", "selection-background", "selection-foreground", "ext-705".."ext-708"
	R, G, B uint16
}

func (ColorSlotReportEvent) event() {}

// RawEvent carries a recognized-but-unclassified escape sequence
// through to the caller, for protocol extensions this decoder does not
// interpret itself (device attribute replies, XTGETTCAP, ...).
type RawEvent struct {
	Data []byte
}

func (RawEvent) event() {}

// OverflowEvent is emitted when more than 1024 bytes of framing
// accumulate without completing a recognizable sequence. The decoder
// discards its pending buffer and resynchronizes on the next byte.
type OverflowEvent struct{}

func (OverflowEvent) event() {}

// InvalidUTF8Event is emitted when a malformed UTF-8 byte sequence is
// encountered outside of any escape framing.
type InvalidUTF8Event struct {
	Bytes []byte
}

func (InvalidUTF8Event) event() {}
