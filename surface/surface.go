package surface

import (
	"errors"

	"github.com/PavelStishenko/termpaint/cwidth"
)

// ErrInvalidDimensions is returned by New and Resize when asked for a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("surface: width and height must be positive")

// TileMode selects how CopyRect treats destination cells that fall
// outside the source rectangle when the destination region is larger
// than the source.
type TileMode int

const (
	// TileNone leaves destination cells outside the source rectangle
	// as default-blank.
	TileNone TileMode = iota
	// TileRepeat wraps the source rectangle modulo its own width and
	// height, tiling it across the destination.
	TileRepeat
)

// Option configures a Surface at construction time.
type Option func(*Surface)

// WithWidthTable selects the column-width table a Surface measures
// clusters against. Default is cwidth.Default.
func WithWidthTable(t *cwidth.Table) Option {
	return func(s *Surface) { s.widths = t }
}

// WithPalette selects the color palette a Surface resolves indexed and
// named colors against. Default is Default.
func WithPalette(p *Palette) Option {
	return func(s *Surface) { s.palette = p }
}

// Surface is a cell-addressed display grid: width x height cells, each
// holding one grapheme cluster (possibly empty, for an untouched or
// wide-spacer position), its column width, and its attributes.
type Surface struct {
	width, height int
	cells         []Cell
	widths        *cwidth.Table
	palette       *Palette
	clusters      *clusterTable
	softWrap      []bool
}

// New creates a width x height Surface. It returns ErrInvalidDimensions
// if either dimension is not positive.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	s := &Surface{
		width:    width,
		height:   height,
		cells:    make([]Cell, width*height),
		widths:   cwidth.Default,
		palette:  Default,
		clusters: newClusterTable(),
		softWrap: make([]bool, width*height),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Width reports the surface's column count.
func (s *Surface) Width() int { return s.width }

// Height reports the surface's row count.
func (s *Surface) Height() int { return s.height }

// Palette reports the surface's active color palette.
func (s *Surface) Palette() *Palette { return s.palette }

// SetSoftWrap records whether the line passing through (x, y) wraps onto
// the next row without a hard newline, the way a renderer reflows long
// lines. The marker is tracked per cell, matching the reference surface's
// softwrap API, but a renderer only ever sets it on a row's last column.
// Out-of-range coordinates are a silent no-op.
func (s *Surface) SetSoftWrap(x, y int, wrapped bool) {
	i, ok := s.index(x, y)
	if !ok {
		return
	}
	s.softWrap[i] = wrapped
}

// SoftWrap reports whether (x, y) was marked soft-wrapped. Out-of-range
// coordinates report false.
func (s *Surface) SoftWrap(x, y int) bool {
	i, ok := s.index(x, y)
	if !ok {
		return false
	}
	return s.softWrap[i]
}

func (s *Surface) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Cell returns the cell at (x, y). Out-of-range coordinates return the
// zero Cell, per spec's "out-of-range reads return the zero Cell"
// contract -- there is no error return because reads have no failure
// mode.
func (s *Surface) Cell(x, y int) Cell {
	i, ok := s.index(x, y)
	if !ok {
		return Cell{}
	}
	return s.cells[i]
}

// Write places text starting at (x, y), segmenting it into grapheme
// clusters and advancing one or two columns per cluster depending on
// its measured width. Writing stops silently at the right edge of the
// row; a y outside the surface or an x at or past the right edge is a
// silent no-op, and with a negative x the clusters that fall left of
// column 0 are skipped. It returns the number of columns actually
// written.
//
// Overwriting one half of an existing wide cluster splits the pair: the
// untouched half becomes a standalone U+FFFD cell rather than being
// left as an orphaned base or spacer. A wide cluster that would land on
// the surface's last column, with no room for its spacer, is likewise
// written as U+FFFD instead of a cell with no matching spacer.
func (s *Surface) Write(x, y int, text string, attrs Attrs) int {
	if y < 0 || y >= s.height || x >= s.width {
		return 0
	}
	clusters := SegmentClusters(text, s.widths)
	col := x
	written := 0
	for _, cl := range clusters {
		if col >= s.width {
			break
		}
		w := ClusterWidth(cl, s.widths)
		if w <= 0 {
			w = 1
		}
		if col < 0 {
			col += w
			continue
		}

		s.detachWideAt(col, y)
		if w == 2 {
			if col+1 >= s.width {
				w = 1
				cl = replacementMarker
			} else {
				s.detachWideAt(col+1, y)
			}
		}

		entry := s.clusters.Intern(cl)
		i, _ := s.index(col, y)
		s.cells[i] = Cell{cluster: entry, Width: w, Attrs: attrs}
		written += w

		if w == 2 {
			spacerAttrs := attrs
			spacerAttrs.Flags |= FlagWideSpacer
			si, _ := s.index(col+1, y)
			s.cells[si] = Cell{Width: 0, Attrs: spacerAttrs}
		}
		col += w
	}
	return written
}

// detachWideAt ensures the cell at (x, y) is not entangled with a
// neighboring wide cluster before it gets overwritten: if it is the
// spacer half of a wide cluster based one column to the left, that base
// becomes a standalone U+FFFD cell; if it is itself a wide base, the
// spacer one column to the right becomes a standalone U+FFFD cell. Both
// cases leave the untouched half as ordinary, independently addressable
// content instead of a half-written pair.
func (s *Surface) detachWideAt(x, y int) {
	i, ok := s.index(x, y)
	if !ok {
		return
	}
	c := s.cells[i]

	if c.Attrs.Flags.HasFlag(FlagWideSpacer) {
		bi, ok := s.index(x-1, y)
		if !ok {
			return
		}
		base := s.cells[bi]
		base.cluster = s.clusters.Intern(replacementMarker)
		base.Width = 1
		s.cells[bi] = base
		return
	}

	if c.Width == 2 {
		si, ok := s.index(x+1, y)
		if !ok {
			return
		}
		spacer := s.cells[si]
		spacer.cluster = s.clusters.Intern(replacementMarker)
		spacer.Width = 1
		spacer.Attrs.Flags &^= FlagWideSpacer
		s.cells[si] = spacer
	}
}

// Clear resets every cell to erased, carrying attrs (typically its
// background color) the way ClearRect does.
func (s *Surface) Clear(attrs Attrs) {
	s.ClearRect(0, 0, s.width, s.height, attrs)
}

// ClearRect marks every cell within the rectangle starting at (x, y)
// with the given width and height as erased, carrying attrs (so the
// cleared area keeps whatever background color the caller is currently
// painting with) rather than resetting to the zero, never-written Cell.
// The rectangle is clipped silently to the surface bounds. Clearing
// through the middle of a wide cluster splits it the same way Write
// does: the half outside the rectangle becomes a standalone U+FFFD cell.
func (s *Surface) ClearRect(x, y, w, h int, attrs Attrs) {
	erased := s.clusters.Intern(erasedMarker)
	clearAttrs := attrs
	clearAttrs.Flags &^= FlagWideSpacer

	for row := y; row < y+h; row++ {
		if row < 0 || row >= s.height {
			continue
		}
		s.detachWideAt(x, row)
		s.detachWideAt(x+w-1, row)
		for col := x; col < x+w; col++ {
			if col < 0 || col >= s.width {
				continue
			}
			i, _ := s.index(col, row)
			s.cells[i] = Cell{cluster: erased, Width: 1, Attrs: clearAttrs}
		}
	}
}

// Resize changes the surface's dimensions, preserving the contents of
// the overlapping top-left region and blanking any newly added cells,
// the same overlap-preserving policy the reference buffer implements
// for terminal resizes.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	next := make([]Cell, width*height)
	minW, minH := width, height
	if s.width < minW {
		minW = s.width
	}
	if s.height < minH {
		minH = s.height
	}
	for row := 0; row < minH; row++ {
		srcBase := row * s.width
		dstBase := row * width
		copy(next[dstBase:dstBase+minW], s.cells[srcBase:srcBase+minW])
	}
	nextWrap := make([]bool, width*height)
	for row := 0; row < minH; row++ {
		srcBase := row * s.width
		dstBase := row * width
		copy(nextWrap[dstBase:dstBase+minW], s.softWrap[srcBase:srcBase+minW])
	}

	s.cells = next
	s.softWrap = nextWrap
	s.width = width
	s.height = height
	return nil
}

// CopyRect copies a w x h rectangle from src starting at (srcX, srcY)
// to this surface starting at (dstX, dstY). Both rectangles are
// clipped to their surface's bounds; tile controls how destination
// cells beyond the (possibly clipped) source rectangle are filled when
// the requested region does not fully fit the source.
func (s *Surface) CopyRect(dstX, dstY int, src *Surface, srcX, srcY, w, h int, tile TileMode) {
	srcW, srcH := w, h
	if srcX+srcW > src.width {
		srcW = src.width - srcX
	}
	if srcY+srcH > src.height {
		srcH = src.height - srcY
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			var sx, sy int
			switch tile {
			case TileRepeat:
				sx, sy = srcX+col, srcY+row
				if srcW > 0 && srcH > 0 {
					sx = srcX + col%srcW
					sy = srcY + row%srcH
				}
			default:
				sx = srcX + col
				sy = srcY + row
			}

			dx, dy := dstX+col, dstY+row
			di, ok := s.index(dx, dy)
			if !ok {
				continue
			}

			si, ok := src.index(sx, sy)
			if !ok {
				if tile == TileRepeat {
					continue
				}
				s.cells[di] = Cell{}
				continue
			}

			cell := src.cells[si]
			if cell.cluster != nil {
				cell.cluster = s.clusters.Intern(cell.cluster.text)
			}
			s.cells[di] = cell
		}
	}
}

// GC runs a mark-sweep garbage collection pass over the surface's
// interned cluster table, freeing clusters no cell currently
// references, and returns the number of clusters freed.
func (s *Surface) GC() int {
	s.clusters.MarkAllUnused()
	for i := range s.cells {
		s.clusters.Mark(s.cells[i].cluster)
	}
	return s.clusters.GC()
}
