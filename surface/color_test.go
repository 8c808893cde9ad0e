package surface

import "testing"

func TestResolveNilFallsBackToDefaults(t *testing.T) {
	fg := Default.Resolve(nil, true)
	if fg != Default.Foreground {
		t.Errorf("Resolve(nil, true) = %v, want %v", fg, Default.Foreground)
	}
	bg := Default.Resolve(nil, false)
	if bg != Default.Background {
		t.Errorf("Resolve(nil, false) = %v, want %v", bg, Default.Background)
	}
}

func TestResolveIndexedColor(t *testing.T) {
	c := Default.Resolve(IndexedColor{Index: 1}, true)
	if c != Default.Colors[1] {
		t.Errorf("Resolve(IndexedColor{1}) = %v, want %v", c, Default.Colors[1])
	}
}

func TestResolveNamedColorSlots(t *testing.T) {
	if c := Default.Resolve(NamedColor{Name: NamedBackground}, false); c != Default.Background {
		t.Errorf("Resolve(NamedBackground) = %v, want %v", c, Default.Background)
	}
	if c := Default.Resolve(NamedColor{Name: NamedCursor}, false); c != Default.Cursor {
		t.Errorf("Resolve(NamedCursor) = %v, want %v", c, Default.Cursor)
	}
}

func TestDefaultPaletteCubeGeneration(t *testing.T) {
	// index 16 is the cube's origin (0,0,0), always black.
	if c := Default.Colors[16]; c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("Colors[16] = %v, want black", c)
	}
	// index 231 is the cube's far corner (5,5,5) = 255,255,255.
	if c := Default.Colors[231]; c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("Colors[231] = %v, want white", c)
	}
}
