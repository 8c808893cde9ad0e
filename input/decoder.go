package input

import (
	"strconv"
	"strings"

	"github.com/PavelStishenko/termpaint/utf8x"
)

// maxSequenceLength bounds how many bytes of an in-progress escape
// sequence the decoder will buffer before giving up and reporting
// OverflowEvent, matching the reference decoder's 1024-byte MAX_SEQ_LENGTH.
const maxSequenceLength = 1024

type state int

const (
	stateBase state = iota
	stateEsc
	stateSS3
	stateCSI
	stateLinuxFKey
	stateOSCOrDCS
	stateSTEsc
	stateUTF8
	stateMouseCb
	stateMouseCx
	stateMouseCy
	stateMouseUTF8
)

type stringKind int

const (
	stringOSC stringKind = iota
	stringDCS
	stringAPC
)

// LegacyMouseMode selects how the decoder reads the three bytes
// following a bare "CSI M", grounded on the reference parser's
// expect_mouse_char_mode/expect_mouse_multibyte_mode fields.
type LegacyMouseMode int

const (
	// MouseModeNone does not treat "CSI M" as mouse framing at all; it
	// is dispatched like any other CSI final byte. This is the default,
	// since a bare "CSI M" is ambiguous with other protocol extensions
	// unless the caller knows the legacy mouse protocol was requested.
	MouseModeNone LegacyMouseMode = iota
	// MouseModeSingleByte reads Cb/Cx/Cy as three raw bytes, each offset
	// by 32 (the original X10/xterm protocol, coordinates capped at
	// 223).
	MouseModeSingleByte
	// MouseModeUTF8MultiByte reads Cb/Cx/Cy as UTF-8 encoded code
	// points instead of raw bytes, lifting the 223 coordinate ceiling.
	MouseModeUTF8MultiByte
)

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithPasteHandling enables or disables bracketed-paste accumulation.
// When enabled, text between a paste-begin and paste-end marker is
// collected and delivered as a single PasteEvent instead of individual
// Key/Char events. Default is enabled.
func WithPasteHandling(enabled bool) Option {
	return func(d *Decoder) { d.handlePaste = enabled }
}

// WithExtendedUnicode enables decoding of the legacy 5- and 6-byte
// UTF-8 forms in raw input, in addition to the standard RFC 3629 range.
func WithExtendedUnicode(enabled bool) Option {
	return func(d *Decoder) { d.extendedUnicode = enabled }
}

// WithRawFilter installs a callback invoked with each unrecognized CSI
// sequence's raw bytes before the decoder falls back to emitting a
// RawEvent; returning true tells the decoder the sequence was handled
// and to suppress the RawEvent. Unrecognized SS3, Linux console, OSC,
// DCS and APC frames are emitted as RawEvent without consulting it.
func WithRawFilter(f func([]byte) bool) Option {
	return func(d *Decoder) { d.rawFilter = f }
}

// Decoder turns a byte stream into Events. The zero Decoder is not
// usable; construct one with NewDecoder.
type Decoder struct {
	state state
	buf   []byte // bytes of the in-progress sequence, including the leading ESC

	csiPrefix       byte
	csiParams       []int
	csiCurParam     string
	csiParamStarted bool
	csiIntermediate []byte

	mouseCb, mouseCx byte
	legacyMouseMode  LegacyMouseMode

	mouseUTF8Stage int
	mouseUTF8Vals  [3]int
	mouseUTF8Buf   []byte
	mouseUTF8Need  int

	expectAPC bool

	stringKind stringKind
	stringBuf  []byte

	utf8Need int
	utf8Buf  []byte

	pendingCursorPositionReports int

	inPaste     bool
	pasteBuf    strings.Builder
	handlePaste bool

	quirks          map[Quirk]bool
	extendedUnicode bool
	rawFilter       func([]byte) bool
}

// NewDecoder creates a Decoder ready to accept bytes via Feed.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		handlePaste: true,
		quirks:      make(map[Quirk]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ActivateQuirk enables a terminal-specific framing variation.
func (d *Decoder) ActivateQuirk(q Quirk) {
	d.quirks[q] = true
}

// ExpectCursorPositionReport registers that a cursor position request
// was sent, so the next "CSI row ; col R" reply is classified as
// CursorPositionEvent rather than a generic RawEvent (the "safe" form
// "CSI ? row ; col R" is always classified as a report). The counter
// supports multiple outstanding requests in pipelined I/O, matching the
// reference decoder's integer (not boolean) field of the same purpose.
func (d *Decoder) ExpectCursorPositionReport() {
	d.pendingCursorPositionReports++
}

// ExpectLegacyMouse selects whether and how a bare "CSI M" is read as a
// legacy mouse report. The default, MouseModeNone, leaves "CSI M" to
// fall through to ordinary CSI dispatch, since nothing else in this
// decoder's framing requires the caller to have enabled mouse tracking
// first.
func (d *Decoder) ExpectLegacyMouse(mode LegacyMouseMode) {
	d.legacyMouseMode = mode
}

// ExpectAPC enables or disables recognizing "ESC _" as the start of an
// APC string. Default is disabled, in which case "ESC _" is treated
// like any other unrecognized ESC-prefixed byte (Alt+'_').
func (d *Decoder) ExpectAPC(enabled bool) {
	d.expectAPC = enabled
}

// RequestResync signals that a resync ("CSI 5 n" / "CSI 0 n") exchange
// is in flight; resync itself is reported the same way regardless
// (MiscEvent{Atom: AtomIResync}), this exists purely so callers can
// mirror the reference decoder's explicit API shape.
func (d *Decoder) RequestResync() {}

// PeekPending reports how many bytes of an incomplete sequence the
// decoder is currently holding.
func (d *Decoder) PeekPending() int {
	return len(d.buf) + len(d.stringBuf) + len(d.utf8Buf)
}

// Feed decodes data, appending it to any previously buffered partial
// sequence, and returns every Event completed as a result. Feed never
// blocks and never fails: malformed or oversized framing is reported as
// OverflowEvent or InvalidUTF8Event, not an error return.
func (d *Decoder) Feed(data []byte) []Event {
	var events []Event
	for _, b := range data {
		events = append(events, d.feedByte(b)...)
	}
	return events
}

func (d *Decoder) feedByte(b byte) []Event {
	if d.overflowing() {
		d.reset()
		ev := []Event{OverflowEvent{}}
		return append(ev, d.feedByte(b)...)
	}

	switch d.state {
	case stateBase:
		return d.feedBase(b)
	case stateEsc:
		return d.feedEsc(b)
	case stateSS3:
		return d.feedSS3(b)
	case stateCSI:
		return d.feedCSI(b)
	case stateOSCOrDCS:
		return d.feedString(b)
	case stateSTEsc:
		return d.feedSTEsc(b)
	case stateUTF8:
		return d.feedUTF8Continuation(b)
	case stateMouseCb, stateMouseCx, stateMouseCy:
		return d.feedMouseByte(b)
	case stateMouseUTF8:
		return d.feedMouseUTF8Byte(b)
	case stateLinuxFKey:
		return d.feedLinuxFKey(b)
	default:
		d.reset()
		return nil
	}
}

func (d *Decoder) overflowing() bool {
	return len(d.buf)+len(d.stringBuf)+len(d.utf8Buf) >= maxSequenceLength
}

func (d *Decoder) reset() {
	d.state = stateBase
	d.buf = nil
	d.csiPrefix = 0
	d.csiParams = nil
	d.csiCurParam = ""
	d.csiParamStarted = false
	d.csiIntermediate = nil
	d.stringBuf = nil
	d.utf8Need = 0
	d.utf8Buf = nil
	d.mouseUTF8Stage = 0
	d.mouseUTF8Buf = nil
	d.mouseUTF8Need = 0
}

// feedBase handles a byte with no escape sequence in progress.
func (d *Decoder) feedBase(b byte) []Event {
	switch {
	case b == 0x1B:
		d.buf = []byte{b}
		d.state = stateEsc
		return nil
	case b == 0x8F: // SS3, 8-bit form of ESC O
		d.buf = []byte{b}
		d.state = stateSS3
		return nil
	case b == 0x90: // DCS, 8-bit form of ESC P
		d.buf = []byte{b}
		d.stringKind = stringDCS
		d.stringBuf = nil
		d.state = stateOSCOrDCS
		return nil
	case b == 0x9B: // CSI, 8-bit form of ESC [
		d.buf = []byte{b}
		d.state = stateCSI
		d.csiPrefix = 0
		d.csiParams = nil
		d.csiCurParam = ""
		d.csiParamStarted = false
		d.csiIntermediate = nil
		return nil
	case b == 0x9D: // OSC, 8-bit form of ESC ]
		d.buf = []byte{b}
		d.stringKind = stringOSC
		d.stringBuf = nil
		d.state = stateOSCOrDCS
		return nil
	case b >= 0x80 && b <= 0x9F:
		return d.feedC1(b)
	case b >= 0x80:
		return d.feedUTF8Lead(b)
	default:
		if d.inPaste && d.handlePaste {
			d.pasteBuf.WriteByte(b)
			return nil
		}
		return controlOrPrintable(b, 0, d.quirks)
	}
}

// feedC1 handles a C1 control byte (0x80-0x9F) that is not one of the
// four recognized introducers (SS3/DCS/CSI/OSC). With QuirkC1ForCtrlShift
// active these are read as Ctrl+Shift+<letter>, the same combination
// some terminals send as the 7-bit "ESC <letter>" equivalent; otherwise
// they are not valid UTF-8 lead bytes and are reported as such.
func (d *Decoder) feedC1(b byte) []Event {
	if d.quirks[QuirkC1ForCtrlShift] {
		ch := rune(b) - 0x40
		if ch >= 'A' && ch <= 'Z' {
			return []Event{CharEvent{Text: strings.ToLower(string(ch)), Modifiers: Shift | Ctrl}}
		}
	}
	return []Event{InvalidUTF8Event{Bytes: []byte{b}}}
}

// controlOrPrintable classifies a single 7-bit byte as a KeyEvent or
// CharEvent, applying extraMods (used for Alt-prefixed bytes).
func controlOrPrintable(b byte, extraMods Modifiers, quirks map[Quirk]bool) []Event {
	backspaceSwap := quirks[QuirkBackspaceSwap]

	switch b {
	case 0x09:
		return []Event{KeyEvent{Atom: AtomTab, Modifiers: extraMods}}
	case 0x0D, 0x0A:
		return []Event{KeyEvent{Atom: AtomEnter, Modifiers: extraMods}}
	case 0x08:
		atom := AtomBackspace
		mods := extraMods
		if !backspaceSwap {
			mods |= Ctrl
		}
		return []Event{KeyEvent{Atom: atom, Modifiers: mods}}
	case 0x7F:
		atom := AtomBackspace
		mods := extraMods
		if backspaceSwap {
			mods |= Ctrl
		}
		return []Event{KeyEvent{Atom: atom, Modifiers: mods}}
	case 0x20:
		return []Event{CharEvent{Text: " ", Modifiers: extraMods}}
	}

	if b >= 1 && b <= 26 {
		return []Event{CharEvent{Text: string(rune('a' + int(b) - 1)), Modifiers: extraMods | Ctrl}}
	}
	if b >= 0x20 && b < 0x7F {
		return []Event{CharEvent{Text: string(rune(b)), Modifiers: extraMods}}
	}
	// Unrecognized C0 control byte: surface it raw rather than drop it
	// silently.
	return []Event{RawEvent{Data: []byte{b}}}
}

func (d *Decoder) feedUTF8Lead(b byte) []Event {
	n := utf8x.LengthOfLeadingByte(b, d.extendedUnicode)
	if n <= 1 {
		return []Event{InvalidUTF8Event{Bytes: []byte{b}}}
	}
	d.utf8Buf = []byte{b}
	d.utf8Need = n - 1
	d.state = stateUTF8
	return nil
}

func (d *Decoder) feedUTF8Continuation(b byte) []Event {
	d.utf8Buf = append(d.utf8Buf, b)
	d.utf8Need--
	if d.utf8Need > 0 {
		return nil
	}

	buf := d.utf8Buf
	d.utf8Buf = nil
	d.state = stateBase

	_, n, ok := utf8x.Decode(buf)
	if !ok || n != len(buf) {
		return []Event{InvalidUTF8Event{Bytes: buf}}
	}
	if d.inPaste && d.handlePaste {
		d.pasteBuf.Write(buf)
		return nil
	}
	return []Event{CharEvent{Text: string(buf)}}
}

// feedEsc handles the byte immediately following a lone ESC.
func (d *Decoder) feedEsc(b byte) []Event {
	switch b {
	case 0x1B:
		// A second ESC arrives before we could classify the first:
		// per the documented resolution, emit the pending bare Escape
		// and reprocess this byte as the start of a new sequence.
		events := []Event{KeyEvent{Atom: AtomEscape}}
		d.buf = []byte{b}
		return events
	case '[':
		d.buf = append(d.buf, b)
		d.state = stateCSI
		d.csiPrefix = 0
		d.csiParams = nil
		d.csiCurParam = ""
		d.csiParamStarted = false
		d.csiIntermediate = nil
		return nil
	case 'O':
		d.buf = append(d.buf, b)
		d.state = stateSS3
		return nil
	case ']':
		d.buf = append(d.buf, b)
		d.stringKind = stringOSC
		d.stringBuf = nil
		d.state = stateOSCOrDCS
		return nil
	case 'P':
		d.buf = append(d.buf, b)
		d.stringKind = stringDCS
		d.stringBuf = nil
		d.state = stateOSCOrDCS
		return nil
	case '_':
		if !d.expectAPC {
			d.reset()
			return controlOrPrintable(b, Alt, d.quirks)
		}
		d.buf = append(d.buf, b)
		d.stringKind = stringAPC
		d.stringBuf = nil
		d.state = stateOSCOrDCS
		return nil
	default:
		d.reset()
		if b < 0x80 {
			return controlOrPrintable(b, Alt, d.quirks)
		}
		return []Event{InvalidUTF8Event{Bytes: []byte{b}}}
	}
}

// feedLinuxFKey handles the byte following "ESC [ [", the Linux
// console's F1-F5 framing.
func (d *Decoder) feedLinuxFKey(b byte) []Event {
	d.reset()
	if atom, ok := linuxConsoleFKeys[b]; ok {
		return []Event{KeyEvent{Atom: atom}}
	}
	return []Event{RawEvent{Data: []byte{0x1B, '[', '[', b}}}
}

func (d *Decoder) feedSS3(b byte) []Event {
	d.reset()
	if atom, ok := ss3Atoms[b]; ok {
		return []Event{KeyEvent{Atom: atom}}
	}
	return []Event{RawEvent{Data: []byte{0x1B, 'O', b}}}
}

// feedCSI accumulates a CSI sequence: an optional single prefix byte
// (<, >, ?, =), parameter bytes (digits, ;, :), intermediate bytes
// (0x20-0x2F), and a final byte (0x40-0x7E).
func (d *Decoder) feedCSI(b byte) []Event {
	d.buf = append(d.buf, b)

	// Bare legacy mouse report: "ESC [ M" with nothing accumulated yet
	// is not a standard CSI final byte, it introduces three raw bytes
	// (or, in utf8-multibyte mode, three UTF-8 encoded code points).
	// Only recognized when the caller has told us to expect it, since a
	// bare "CSI M" is otherwise just an unparametrized final byte.
	if b == 'M' && !d.csiParamStarted && d.csiPrefix == 0 && len(d.csiIntermediate) == 0 &&
		d.legacyMouseMode != MouseModeNone {
		if d.legacyMouseMode == MouseModeUTF8MultiByte {
			d.mouseUTF8Stage = 0
			d.mouseUTF8Buf = nil
			d.mouseUTF8Need = 0
			d.state = stateMouseUTF8
		} else {
			d.state = stateMouseCb
		}
		return nil
	}

	// Linux console function keys: "ESC [ [ <letter>", a literal second
	// '[' immediately after "ESC [" with nothing else accumulated,
	// distinct from xterm's CSI grammar (where '[' would otherwise be
	// read as an ordinary, if unrecognized, final byte).
	if b == '[' && !d.csiParamStarted && d.csiPrefix == 0 && len(d.csiIntermediate) == 0 {
		d.state = stateLinuxFKey
		return nil
	}

	switch {
	case d.csiPrefix == 0 && !d.csiParamStarted && (b == '<' || b == '>' || b == '?' || b == '='):
		d.csiPrefix = b
		return nil
	case b >= '0' && b <= '9':
		d.csiParamStarted = true
		d.csiCurParam += string(b)
		return nil
	case b == ';' || b == ':':
		d.csiParamStarted = true
		d.csiParams = append(d.csiParams, parseCSIParam(d.csiCurParam))
		d.csiCurParam = ""
		return nil
	case b >= 0x20 && b <= 0x2F:
		d.csiIntermediate = append(d.csiIntermediate, b)
		return nil
	case b >= 0x40 && b <= 0x7E:
		d.csiParams = append(d.csiParams, parseCSIParam(d.csiCurParam))
		prefix, params, intermediate := d.csiPrefix, d.csiParams, d.csiIntermediate
		d.reset()
		return d.dispatchCSI(prefix, params, intermediate, b)
	default:
		d.reset()
		return nil
	}
}

func parseCSIParam(s string) int {
	if s == "" {
		return -1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

func param(params []int, i, def int) int {
	if i < 0 || i >= len(params) || params[i] < 0 {
		return def
	}
	return params[i]
}

func (d *Decoder) dispatchCSI(prefix byte, params []int, intermediate []byte, final byte) []Event {
	switch {
	case prefix == '<' && (final == 'M' || final == 'm'):
		return []Event{decodeSGRMouse(param(params, 0, 0), param(params, 1, 1), param(params, 2, 1), final == 'm')}

	case prefix == 0 && final == 'M' && len(params) >= 3:
		return []Event{decodeURXVTMouse(param(params, 0, 0), param(params, 1, 1), param(params, 2, 1))}

	case final == 'R' && len(params) >= 2 && (prefix == '?' || (prefix == 0 && d.pendingCursorPositionReports > 0)):
		if d.pendingCursorPositionReports > 0 {
			d.pendingCursorPositionReports--
		}
		return []Event{CursorPositionEvent{
			Row:  param(params, 0, 1) - 1,
			Col:  param(params, 1, 1) - 1,
			Safe: prefix == '?',
		}}

	case prefix == 0 && final == 'n' && param(params, 0, -1) == 0:
		return []Event{MiscEvent{Atom: AtomIResync}}

	case prefix == '?' && final == 'y' && len(intermediate) == 1 && intermediate[0] == '$':
		return []Event{ModeReportEvent{Private: true, Mode: param(params, 0, 0), Value: param(params, 1, 0)}}

	case final == 'y' && len(intermediate) == 1 && intermediate[0] == '$':
		return []Event{ModeReportEvent{Private: false, Mode: param(params, 0, 0), Value: param(params, 1, 0)}}

	case prefix == 0 && final == '~':
		return d.dispatchTilde(params)

	case prefix == 0 && final == 'Z':
		return []Event{KeyEvent{Atom: AtomTab, Modifiers: Shift}}

	case prefix == 0 && final != 0 && len(params) <= 1 && len(intermediate) == 0:
		if atom, ok := csiFinalAtoms[final]; ok {
			return []Event{KeyEvent{Atom: atom, Modifiers: calcModifier(param(params, 0, 1))}}
		}
	}

	raw := append([]byte{0x1B, '['}, buildCSIRaw(prefix, params, intermediate, final)...)
	if d.rawFilter != nil && d.rawFilter(raw) {
		return nil
	}
	return []Event{RawEvent{Data: raw}}
}

func buildCSIRaw(prefix byte, params []int, intermediate []byte, final byte) []byte {
	var out []byte
	if prefix != 0 {
		out = append(out, prefix)
	}
	for i, p := range params {
		if i > 0 {
			out = append(out, ';')
		}
		if p >= 0 {
			out = append(out, []byte(strconv.Itoa(p))...)
		}
	}
	out = append(out, intermediate...)
	out = append(out, final)
	return out
}

// dispatchTilde handles "CSI n ~" and the modifyOtherKeys form
// "CSI 27 ; mod ; codepoint ~".
func (d *Decoder) dispatchTilde(params []int) []Event {
	if len(params) >= 3 && param(params, 0, 0) == 27 {
		mod := calcModifier(param(params, 1, 1))
		cp := param(params, 2, 0)
		return []Event{CharEvent{Text: string(rune(cp)), Modifiers: mod}}
	}

	n := param(params, 0, 0)
	mods := calcModifier(param(params, 1, 1))

	if n == 200 {
		d.inPaste = true
		if d.handlePaste {
			d.pasteBuf.Reset()
			return nil
		}
		return []Event{KeyEvent{Atom: AtomPasteBegin}}
	}
	if n == 201 {
		d.inPaste = false
		if d.handlePaste {
			text := d.pasteBuf.String()
			d.pasteBuf.Reset()
			return []Event{PasteEvent{Text: text}}
		}
		return []Event{KeyEvent{Atom: AtomPasteEnd}}
	}

	if atom, ok := csiTildeAtoms[n]; ok {
		return []Event{KeyEvent{Atom: atom, Modifiers: mods}}
	}
	return nil
}

func (d *Decoder) feedMouseByte(b byte) []Event {
	switch d.state {
	case stateMouseCb:
		d.mouseCb = b
		d.state = stateMouseCx
		return nil
	case stateMouseCx:
		d.mouseCx = b
		d.state = stateMouseCy
		return nil
	case stateMouseCy:
		cb, cx, cy := d.mouseCb, d.mouseCx, b
		d.reset()
		return []Event{decodeLegacyMouse(cb, cx, cy)}
	}
	d.reset()
	return nil
}

// feedMouseUTF8Byte accumulates the three UTF-8 encoded coordinate
// values of the utf8-multibyte legacy mouse mode. Each of Cb/Cx/Cy is
// its own UTF-8 sequence rather than a single raw byte, which is what
// lets coordinates exceed 223.
func (d *Decoder) feedMouseUTF8Byte(b byte) []Event {
	if d.mouseUTF8Need == 0 && len(d.mouseUTF8Buf) == 0 {
		n := utf8x.LengthOfLeadingByte(b, true)
		if n <= 1 {
			d.mouseUTF8Vals[d.mouseUTF8Stage] = int(b)
			return d.advanceMouseUTF8Stage()
		}
		d.mouseUTF8Buf = []byte{b}
		d.mouseUTF8Need = n - 1
		return nil
	}

	d.mouseUTF8Buf = append(d.mouseUTF8Buf, b)
	d.mouseUTF8Need--
	if d.mouseUTF8Need > 0 {
		return nil
	}

	r, n, ok := utf8x.Decode(d.mouseUTF8Buf)
	val := 0
	if ok && n == len(d.mouseUTF8Buf) {
		val = int(r)
	}
	d.mouseUTF8Buf = nil
	d.mouseUTF8Vals[d.mouseUTF8Stage] = val
	return d.advanceMouseUTF8Stage()
}

func (d *Decoder) advanceMouseUTF8Stage() []Event {
	d.mouseUTF8Stage++
	if d.mouseUTF8Stage < 3 {
		return nil
	}
	cb, cx, cy := d.mouseUTF8Vals[0], d.mouseUTF8Vals[1], d.mouseUTF8Vals[2]
	d.reset()
	return []Event{decodeLegacyMouseCoords(cb, cx, cy)}
}

// feedString accumulates an OSC/DCS/APC string body until its
// terminator: BEL for OSC (xterm convention), or ESC \ (ST) for any of
// the three.
func (d *Decoder) feedString(b byte) []Event {
	if b == 0x07 && d.stringKind == stringOSC {
		body := d.stringBuf
		d.reset()
		return d.dispatchString(body)
	}
	if b == 0x1B {
		d.state = stateSTEsc
		return nil
	}
	if b == 0x9C { // C1 ST
		body := d.stringBuf
		d.reset()
		return d.dispatchString(body)
	}
	d.stringBuf = append(d.stringBuf, b)
	return nil
}

func (d *Decoder) feedSTEsc(b byte) []Event {
	if b == '\\' {
		body := d.stringBuf
		kind := d.stringKind
		d.reset()
		if kind == stringOSC {
			return d.dispatchString(body)
		}
		// DCS/APC bodies are surfaced as-is; this decoder does not
		// interpret terminal-identification or APC payloads, only the
		// handful of OSC queries spec.md calls out.
		return []Event{RawEvent{Data: body}}
	}
	// Not a valid string terminator: abandon the string and reprocess
	// b as the byte following a fresh ESC, the same as if the
	// terminating ESC had started a brand new sequence.
	d.reset()
	d.buf = []byte{0x1B}
	return d.feedEsc(b)
}

// oscColorSlots maps the OSC number of a color-slot query reply to the
// slot name reported on ColorSlotReportEvent. 10-14/17/19 are the
// well-known xterm text/cursor/pointer/selection colors; 705-708 are
// vendor extension slots some terminals answer the same way, grounded
// on the reference decoder treating all of them uniformly.
var oscColorSlots = map[string]string{
	"10;":  "foreground",
	"11;":  "background",
	"12;":  "cursor",
	"13;":  "pointer-foreground",
	"14;":  "pointer-background",
	"17;":  "selection-background",
	"19;":  "selection-foreground",
	"705;": "ext-705",
	"706;": "ext-706",
	"707;": "ext-707",
	"708;": "ext-708",
}

func (d *Decoder) dispatchString(body []byte) []Event {
	s := string(body)
	if strings.HasPrefix(s, "4;") {
		return []Event{parseOSC4(s)}
	}
	for prefix, slot := range oscColorSlots {
		if strings.HasPrefix(s, prefix) {
			return []Event{parseOSCColorSlot(slot, s[len(prefix):])}
		}
	}
	return []Event{RawEvent{Data: body}}
}
