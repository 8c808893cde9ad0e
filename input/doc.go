// Package input decodes a byte stream from a terminal (keyboard input,
// mouse reports, and terminal replies arriving on the same stream) into
// a sequence of structured [Event] values.
//
// # Quick Start
//
//	dec := input.NewDecoder()
//	for _, ev := range dec.Feed([]byte("\x1b[A")) {
//		switch e := ev.(type) {
//		case input.KeyEvent:
//			fmt.Println("key:", e.Atom, e.Modifiers)
//		case input.MouseEvent:
//			fmt.Println("mouse:", e.Action, e.Row, e.Col)
//		}
//	}
//
// Decoder holds a small internal buffer (at most 1024 bytes of pending,
// not-yet-classified input) and never blocks: Feed always returns
// immediately with whatever events the new bytes complete. Malformed or
// too-long framing never panics or errors; it is reported as
// [OverflowEvent] or [InvalidUTF8Event] and the decoder resynchronizes
// on the next recognizable sequence.
package input
