package input

import "testing"

func TestOSC4PaletteColorReport(t *testing.T) {
	dec := NewDecoder()
	got := dec.Feed([]byte("\x1B]4;1;rgb:ffff/0000/0000\x1B\\"))
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1: %#v", len(got), got)
	}
	pe, ok := got[0].(PaletteColorReportEvent)
	if !ok {
		t.Fatalf("got %#v, want PaletteColorReportEvent", got[0])
	}
	if pe.Index != 1 || pe.R != 0xffff || pe.G != 0 || pe.B != 0 {
		t.Errorf("got %+v, want index=1 r=ffff g=0 b=0", pe)
	}
}

func TestOSC11BackgroundColorReport(t *testing.T) {
	dec := NewDecoder()
	got := dec.Feed([]byte("\x1B]11;#112233\x1B\\"))
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	ce, ok := got[0].(ColorSlotReportEvent)
	if !ok || ce.Slot != "background" {
		t.Fatalf("got %#v, want ColorSlotReportEvent{background}", got[0])
	}
	if ce.R != 0x1100 || ce.G != 0x2200 || ce.B != 0x3300 {
		t.Errorf("got %+v, want r=1100 g=2200 b=3300", ce)
	}
}

func TestOSC4URXVTNoIndexForm(t *testing.T) {
	dec := NewDecoder()
	got := dec.Feed([]byte("\x1B]4;rxvt-color\x1B\\"))
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1: %#v", len(got), got)
	}
	pe, ok := got[0].(PaletteColorReportEvent)
	if !ok {
		t.Fatalf("got %#v, want PaletteColorReportEvent", got[0])
	}
	if pe.Index != -1 || pe.Raw != "rxvt-color" {
		t.Errorf("got %+v, want index=-1 raw=rxvt-color", pe)
	}
}

func TestOSC4PreservesRawDescriptor(t *testing.T) {
	dec := NewDecoder()
	got := dec.Feed([]byte("\x1B]4;1;rgb:ffff/0000/0000\x1B\\"))
	pe := got[0].(PaletteColorReportEvent)
	if pe.Raw != "rgb:ffff/0000/0000" {
		t.Errorf("got Raw=%q, want rgb:ffff/0000/0000", pe.Raw)
	}
}

func TestOSCPointerColorReport(t *testing.T) {
	dec := NewDecoder()
	got := dec.Feed([]byte("\x1B]13;#445566\x1B\\"))
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	ce, ok := got[0].(ColorSlotReportEvent)
	if !ok || ce.Slot != "pointer-foreground" {
		t.Fatalf("got %#v, want ColorSlotReportEvent{pointer-foreground}", got[0])
	}
}

func TestOSCExtendedSlotReport(t *testing.T) {
	dec := NewDecoder()
	got := dec.Feed([]byte("\x1B]706;#010203\x1B\\"))
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	ce, ok := got[0].(ColorSlotReportEvent)
	if !ok || ce.Slot != "ext-706" {
		t.Fatalf("got %#v, want ColorSlotReportEvent{ext-706}", got[0])
	}
}

func TestOSCTerminatedByBEL(t *testing.T) {
	dec := NewDecoder()
	got := dec.Feed([]byte("\x1B]11;#010203\x07"))
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if _, ok := got[0].(ColorSlotReportEvent); !ok {
		t.Errorf("got %#v, want ColorSlotReportEvent", got[0])
	}
}
