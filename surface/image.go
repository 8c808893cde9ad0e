package surface

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
)

// legacyVersion is the only "version" value this package accepts besides
// the field being absent entirely (which unmarshals to the same zero
// value). The reference image format has never moved past version 0;
// any other value is a load failure rather than guessed-at forward
// compatibility.
const legacyVersion = 0

// document is the on-the-wire JSON schema for a Surface snapshot: a
// flat, sparse list of addressed cells rather than a dense grid, mirroring
// the reference termpaint_image writer. Only cells that differ from the
// zero, never-written Cell get an entry; a wide cluster's spacer half is
// never given one of its own, since its presence is implied by the
// preceding entry's width being 2.
type document struct {
	TermpaintImage bool      `json:"termpaint_image"`
	Version        int       `json:"version"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Cells          []cellDoc `json:"cells"`
}

type cellDoc struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Text    string `json:"t"`
	Width   int    `json:"width,omitempty"`
	Cleared bool   `json:"cleared,omitempty"`

	Fg   string `json:"fg,omitempty"`
	Bg   string `json:"bg,omitempty"`
	Deco string `json:"deco,omitempty"`

	Bold            bool `json:"bold,omitempty"`
	Italic          bool `json:"italic,omitempty"`
	Blink           bool `json:"blink,omitempty"`
	Overline        bool `json:"overline,omitempty"`
	Inverse         bool `json:"inverse,omitempty"`
	Strike          bool `json:"strike,omitempty"`
	Underline       bool `json:"underline,omitempty"`
	DoubleUnderline bool `json:"double underline,omitempty"`
	CurlyUnderline  bool `json:"curly underline,omitempty"`

	SoftWrap bool      `json:"x-termpaint-softwrap,omitempty"`
	Patch    *patchDoc `json:"patch,omitempty"`
}

type patchDoc struct {
	Setup    *string `json:"setup"`
	Cleanup  *string `json:"cleanup"`
	Optimize bool    `json:"optimize"`
}

// colorNames gives the 16 basic ANSI colors their palette-independent
// wire names, the way the reference writer prefers a name over a bare
// palette index for this range so a saved image still looks right when
// loaded against a different palette.
var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright black", "bright red", "bright green", "bright yellow",
	"bright blue", "bright magenta", "bright cyan", "bright white",
}

// namedSlotNames are this package's own extension beyond the reference
// 16-name table, giving the semantic color slots (default foreground,
// cursor, the dim variants, ...) a readable wire form instead of forcing
// them through the numeric index space they don't actually belong to.
var namedSlotNames = map[int]string{
	NamedForeground:       "foreground",
	NamedBackground:       "background",
	NamedCursor:           "cursor",
	NamedDimBlack:         "dim black",
	NamedDimRed:           "dim red",
	NamedDimGreen:         "dim green",
	NamedDimYellow:        "dim yellow",
	NamedDimBlue:          "dim blue",
	NamedDimMagenta:       "dim magenta",
	NamedDimCyan:          "dim cyan",
	NamedDimWhite:         "dim white",
	NamedBrightForeground: "bright foreground",
	NamedDimForeground:    "dim foreground",
}

var namedSlotsByName = invertNamedSlotNames()

func invertNamedSlotNames() map[string]int {
	out := make(map[string]int, len(namedSlotNames))
	for slot, name := range namedSlotNames {
		out[name] = slot
	}
	return out
}

// encodeColor renders c as a bare wire string: "#rrggbb" for an explicit
// RGB color, a name for the 16 basic colors and the semantic slots, a
// decimal index for any other palette slot, or "" (meaning the field is
// omitted entirely) for nil, the surface's "use the default" color.
func encodeColor(c color.Color) string {
	if c == nil {
		return ""
	}
	switch v := c.(type) {
	case IndexedColor:
		if v.Index >= 0 && v.Index < len(colorNames) {
			return colorNames[v.Index]
		}
		if v.Index >= 0 && v.Index <= 0xff {
			return strconv.Itoa(v.Index)
		}
		return ""
	case NamedColor:
		return namedSlotNames[v.Name]
	case color.RGBA:
		return hexColor(v.R, v.G, v.B)
	default:
		r, g, b, _ := c.RGBA()
		return hexColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

// decodeColor parses a wire color string with the same ambiguity
// priority the reference loader uses: a 7-character "#rrggbb" hex string
// wins first, then an exact name match, then a decimal index; an empty
// string decodes to nil (default).
func decodeColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) == 7 && s[0] == '#' {
		r, g, b, err := parseHexColor(s)
		if err != nil {
			return nil, err
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	for i, name := range colorNames {
		if name == s {
			return IndexedColor{Index: i}, nil
		}
	}
	if slot, ok := namedSlotsByName[s]; ok {
		return NamedColor{Name: slot}, nil
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("unrecognized color %q", s)
	}
	if idx < 0 || idx > 0xff {
		return nil, fmt.Errorf("color index %d out of range", idx)
	}
	return IndexedColor{Index: idx}, nil
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func parseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return r, g, b, nil
}

func encodeCellDoc(x, y int, c Cell, softWrap bool) cellDoc {
	cd := cellDoc{
		X:        x,
		Y:        y,
		Width:    c.Width,
		Fg:       encodeColor(c.Attrs.Fg),
		Bg:       encodeColor(c.Attrs.Bg),
		Deco:     encodeColor(c.Attrs.UnderlineColor),
		SoftWrap: softWrap,

		Bold:            c.Attrs.Flags.HasFlag(FlagBold),
		Italic:          c.Attrs.Flags.HasFlag(FlagItalic),
		Blink:           c.Attrs.Flags.HasFlag(FlagBlinkSlow) || c.Attrs.Flags.HasFlag(FlagBlinkFast),
		Overline:        c.Attrs.Flags.HasFlag(FlagOverline),
		Inverse:         c.Attrs.Flags.HasFlag(FlagReverse),
		Strike:          c.Attrs.Flags.HasFlag(FlagStrike),
		Underline:       c.Attrs.Flags.HasFlag(FlagUnderline),
		DoubleUnderline: c.Attrs.Flags.HasFlag(FlagDoubleUnderline),
		CurlyUnderline:  c.Attrs.Flags.HasFlag(FlagCurlyUnderline),
	}
	if c.IsErased() {
		cd.Cleared = true
		cd.Text = " "
	} else {
		cd.Text = c.Cluster()
	}
	if c.Attrs.Patch.IsZero() {
		return cd
	}
	cd.Patch = &patchDoc{Optimize: c.Attrs.Patch.Optimize}
	if c.Attrs.Patch.Setup != "" {
		cd.Patch.Setup = &c.Attrs.Patch.Setup
	}
	if c.Attrs.Patch.Cleanup != "" {
		cd.Patch.Cleanup = &c.Attrs.Patch.Cleanup
	}
	return cd
}

func decodeCellFlags(cd cellDoc) CellFlags {
	var f CellFlags
	if cd.Bold {
		f |= FlagBold
	}
	if cd.Italic {
		f |= FlagItalic
	}
	if cd.Blink {
		f |= FlagBlinkSlow
	}
	if cd.Overline {
		f |= FlagOverline
	}
	if cd.Inverse {
		f |= FlagReverse
	}
	if cd.Strike {
		f |= FlagStrike
	}
	if cd.Underline {
		f |= FlagUnderline
	}
	if cd.DoubleUnderline {
		f |= FlagDoubleUnderline
	}
	if cd.CurlyUnderline {
		f |= FlagCurlyUnderline
	}
	return f
}

// SaveJSON serializes the surface to spec's flat, sparse cell-list JSON
// schema. Unwritten cells and wide-cluster spacers get no entry at all;
// everything else (including erased cells, which still need their attrs
// preserved) is written out addressed by (x, y).
func (s *Surface) SaveJSON() ([]byte, error) {
	doc := document{
		TermpaintImage: true,
		Version:        legacyVersion,
		Width:          s.width,
		Height:         s.height,
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.Cell(x, y)
			if c.IsBlank() || c.Attrs.Flags.HasFlag(FlagWideSpacer) {
				continue
			}
			doc.Cells = append(doc.Cells, encodeCellDoc(x, y, c, s.SoftWrap(x, y)))
		}
	}
	return json.Marshal(doc)
}

// LoadJSON parses data per spec's JSON cell schema into a new Surface. A
// malformed document, a version other than 0 (missing or explicit), or a
// wide cell with no room for its spacer is a load failure and no partial
// surface is returned.
//
// Every cell is written through the same path SaveJSON read it back
// from, then immediately read back and compared against what the
// document asked for; any divergence fails the whole load, matching the
// reference loader's write-then-verify contract.
func LoadJSON(data []byte, opts ...Option) (*Surface, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("surface: decode json: %w", err)
	}
	if doc.Version != legacyVersion {
		return nil, fmt.Errorf("surface: unsupported schema version %d", doc.Version)
	}

	s, err := New(doc.Width, doc.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}

	for _, cd := range doc.Cells {
		if err := s.loadCell(cd); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Surface) loadCell(cd cellDoc) error {
	if cd.X < 0 || cd.X >= s.width || cd.Y < 0 || cd.Y >= s.height {
		return fmt.Errorf("surface: cell (%d,%d) out of bounds for %dx%d", cd.X, cd.Y, s.width, s.height)
	}

	fg, err := decodeColor(cd.Fg)
	if err != nil {
		return fmt.Errorf("surface: cell (%d,%d) fg: %w", cd.X, cd.Y, err)
	}
	bg, err := decodeColor(cd.Bg)
	if err != nil {
		return fmt.Errorf("surface: cell (%d,%d) bg: %w", cd.X, cd.Y, err)
	}
	deco, err := decodeColor(cd.Deco)
	if err != nil {
		return fmt.Errorf("surface: cell (%d,%d) deco: %w", cd.X, cd.Y, err)
	}

	attrs := Attrs{Fg: fg, Bg: bg, UnderlineColor: deco, Flags: decodeCellFlags(cd)}
	if cd.Patch != nil {
		p := Patch{Optimize: cd.Patch.Optimize}
		if cd.Patch.Setup != nil {
			p.Setup = *cd.Patch.Setup
		}
		if cd.Patch.Cleanup != nil {
			p.Cleanup = *cd.Patch.Cleanup
		}
		attrs.Patch = p
	}

	width := cd.Width
	if width <= 0 {
		width = 1
	}
	if width == 2 && cd.X+1 >= s.width {
		return fmt.Errorf("surface: wide cell (%d,%d) has no room for its spacer", cd.X, cd.Y)
	}

	text := cd.Text
	if cd.Cleared {
		text = erasedMarker
	}

	i, _ := s.index(cd.X, cd.Y)
	s.cells[i] = Cell{cluster: s.clusters.Intern(text), Width: width, Attrs: attrs}
	if width == 2 {
		spacerAttrs := attrs
		spacerAttrs.Flags |= FlagWideSpacer
		si, _ := s.index(cd.X+1, cd.Y)
		s.cells[si] = Cell{Width: 0, Attrs: spacerAttrs}
	}
	s.SetSoftWrap(cd.X, cd.Y, cd.SoftWrap)

	written := s.Cell(cd.X, cd.Y)
	if err := verifyCellLoad(written, text, width, attrs); err != nil {
		return fmt.Errorf("surface: cell (%d,%d) failed to round-trip: %w", cd.X, cd.Y, err)
	}
	return nil
}

// verifyCellLoad re-derives the cell's effective state and compares it
// against what the document requested, the way the reference loader
// reads every attribute back after writing and fails the load on any
// mismatch rather than trusting the parsed JSON blindly.
func verifyCellLoad(got Cell, wantText string, wantWidth int, wantAttrs Attrs) error {
	if got.Cluster() != wantText {
		return fmt.Errorf("text = %q, want %q", got.Cluster(), wantText)
	}
	if got.Width != wantWidth {
		return fmt.Errorf("width = %d, want %d", got.Width, wantWidth)
	}
	if got.Attrs.Fg != wantAttrs.Fg || got.Attrs.Bg != wantAttrs.Bg || got.Attrs.UnderlineColor != wantAttrs.UnderlineColor {
		return fmt.Errorf("colors = %+v, want %+v", got.Attrs, wantAttrs)
	}
	if got.Attrs.Flags != wantAttrs.Flags {
		return fmt.Errorf("flags = %v, want %v", got.Attrs.Flags, wantAttrs.Flags)
	}
	if got.Attrs.Patch != wantAttrs.Patch {
		return fmt.Errorf("patch = %+v, want %+v", got.Attrs.Patch, wantAttrs.Patch)
	}
	return nil
}
