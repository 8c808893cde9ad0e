package surface

import "image/color"

// Attrs is a cell's rendering attributes: colors and text decoration
// flags, independent of which cluster occupies the cell.
type Attrs struct {
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          CellFlags
	Patch          Patch
}

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagDim
	FlagItalic
	FlagUnderline
	FlagDoubleUnderline
	FlagCurlyUnderline
	FlagDottedUnderline
	FlagDashedUnderline
	FlagBlinkSlow
	FlagBlinkFast
	FlagReverse
	FlagHidden
	FlagStrike
	FlagOverline
	FlagWideSpacer
)

// HasFlag reports whether flag is set in f.
func (f CellFlags) HasFlag(flag CellFlags) bool { return f&flag != 0 }

// erasedMarker is the cluster text stored in a cell that has been
// explicitly cleared, as opposed to one that was never written. The DEL
// character (0x7F) cannot appear in ordinary text, so its presence
// unambiguously flags an erased cell while still letting ClearRect
// preserve the colors/attrs the clear was asked to apply.
const erasedMarker = "\x7F"

// replacementMarker is the cluster text substituted for a wide cluster
// that Write cannot place intact: either because overwriting it split a
// previously-written wide pair and left one half orphaned, or because
// it would have landed on the surface's last column with no room for
// its spacer.
var replacementMarker = string(rune(0xFFFD))

// Cell is one addressable grid position: the grapheme cluster occupying
// it (interned, so repeated clusters across a Surface share storage),
// its column width, and its attributes. A wide cluster's second column
// is represented by a Cell with the FlagWideSpacer bit set and an empty
// cluster; spec requires reads of a spacer cell to still report the
// base cell's attributes, which Surface.Cell implements by returning
// the spacer's own Attrs copy (kept in sync with the base cell at write
// time) rather than chasing a pointer back to the base.
type Cell struct {
	cluster *clusterEntry
	Width   int
	Attrs   Attrs
}

// Cluster returns the grapheme cluster occupying the cell, or "" for an
// unwritten (default-blank) cell or a wide-character spacer.
func (c Cell) Cluster() string {
	if c.cluster == nil {
		return ""
	}
	return c.cluster.text
}

// IsBlank reports whether the cell has never been written.
func (c Cell) IsBlank() bool {
	return c.cluster == nil && c.Width == 0 && !c.Attrs.Flags.HasFlag(FlagWideSpacer)
}

// IsErased reports whether the cell was explicitly cleared by
// ClearRect, as opposed to never having been written. An erased cell
// still carries the background (and other attrs) passed to ClearRect,
// which a never-written cell does not.
func (c Cell) IsErased() bool {
	return c.cluster != nil && c.cluster.text == erasedMarker
}
