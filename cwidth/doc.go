// Package cwidth answers one question: how many terminal columns does a
// given Unicode code point occupy?
//
// Width values are one of 0, 1 or 2. A fourth raw value, 3, means
// "ambiguous/emoji-presentation" and is resolved to either 1 or 2
// depending on the active [Table]'s treatment of that class of
// character; callers never see a width of 3 from [Table.Width].
//
// # Table layout
//
// Each [Table] is a two-level lookup, generated once at package init
// time from an ordinary `func(rune) int` width function (see
// [NewTableFromFunc]): a small offset array selects the run of entries
// covering the upper bits of a code point, and the entries in that run
// are packed `(codepoint<<2)|width` words, binary searched on the lower
// bits. This mirrors the layout the reference terminal library
// generates at build time from Unicode data, without requiring a
// code-generation step here: the packing happens once per table, when
// NewTableFromFunc is called, from whatever rune-width function is
// supplied.
package cwidth
