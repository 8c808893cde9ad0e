// Package surface implements the display grid: a cell-addressed screen
// buffer addressed by grapheme cluster rather than by code point,
// carrying per-cell color/attribute/patch state, with JSON snapshot
// round-trip.
//
// # Quick Start
//
//	s, err := surface.New(80, 24)
//	s.Write(0, 0, "héllo", surface.Attrs{Fg: surface.RGB(255, 255, 255)})
//	cell := s.Cell(0, 0)
//	data, err := s.SaveJSON()
//
// A Surface owns no I/O and holds no lock: it is a plain value type
// meant to be driven synchronously from a single goroutine, exactly
// like the event decoder in the sibling input package. Callers that
// share a Surface across goroutines must add their own synchronization.
package surface
