package surface

import "image/color"

// IndexedColor selects one of the 256 palette slots.
type IndexedColor struct {
	Index int
}

func (IndexedColor) RGBA() (r, g, b, a uint32) { return 0, 0, 0, 0 } // resolved via Palette, never rendered directly

// NamedColor selects a semantic slot (Foreground, Background, Cursor,
// the eight dim colors, ...) rather than a fixed palette index, so a
// Surface serialized under one palette renders sensibly under another.
type NamedColor struct {
	Name int
}

func (NamedColor) RGBA() (r, g, b, a uint32) { return 0, 0, 0, 0 }

// Named color slots, mirroring the semantic indices a terminal's
// default-color escape sequences (39, 49, ...) address.
const (
	NamedForeground       = 256
	NamedBackground       = 257
	NamedCursor           = 258
	NamedDimBlack         = 259
	NamedDimRed           = 260
	NamedDimGreen         = 261
	NamedDimYellow        = 262
	NamedDimBlue          = 263
	NamedDimMagenta       = 264
	NamedDimCyan          = 265
	NamedDimWhite         = 266
	NamedBrightForeground = 267
	NamedDimForeground    = 268
)

// Palette is a 256-slot color table plus the handful of semantic
// default colors a Surface can be asked to resolve indexed/named colors
// against. The zero Palette is not usable; use Default or NewPalette.
type Palette struct {
	Colors     [256]color.RGBA
	Foreground color.RGBA
	Background color.RGBA
	Cursor     color.RGBA
}

// NewPalette builds a Palette from 256 explicit colors plus the three
// semantic defaults.
func NewPalette(colors [256]color.RGBA, fg, bg, cursor color.RGBA) *Palette {
	return &Palette{Colors: colors, Foreground: fg, Background: bg, Cursor: cursor}
}

// Default is the standard xterm-derived 256-color palette: 16 named
// colors (0-15), a 216-entry 6x6x6 color cube (16-231), and a 24-step
// grayscale ramp (232-255).
var Default = buildDefaultPalette()

func buildDefaultPalette() *Palette {
	var colors [256]color.RGBA
	copy(colors[:16], []color.RGBA{
		{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
		{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
		{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
		{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
	})

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				colors[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		colors[232+j] = color.RGBA{gray, gray, gray, 255}
	}

	return NewPalette(colors, color.RGBA{229, 229, 229, 255}, color.RGBA{0, 0, 0, 255}, color.RGBA{229, 229, 229, 255})
}

// Resolve converts c to a concrete RGBA using p. A nil c resolves to
// the palette's default foreground or background depending on fg.
// IndexedColor and NamedColor slots out of range fall back the same
// way.
func (p *Palette) Resolve(c color.Color, fg bool) color.RGBA {
	if c == nil {
		if fg {
			return p.Foreground
		}
		return p.Background
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return p.Colors[v.Index]
		}
		if fg {
			return p.Foreground
		}
		return p.Background
	case NamedColor:
		return p.resolveNamed(v.Name, fg)
	}

	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func (p *Palette) resolveNamed(name int, fg bool) color.RGBA {
	switch {
	case name >= 0 && name < 16:
		return p.Colors[name]
	case name == NamedForeground:
		return p.Foreground
	case name == NamedBackground:
		return p.Background
	case name == NamedCursor:
		return p.Cursor
	case name >= NamedDimBlack && name <= NamedDimWhite:
		base := p.Colors[name-NamedDimBlack]
		return dim(base)
	case name == NamedBrightForeground:
		return p.Colors[15]
	case name == NamedDimForeground:
		return dim(p.Foreground)
	default:
		if fg {
			return p.Foreground
		}
		return p.Background
	}
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: 255,
	}
}

// RGB is a convenience constructor for an opaque color.RGBA.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
