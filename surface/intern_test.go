package surface

import "testing"

func TestInternReturnsSameEntryForEqualText(t *testing.T) {
	tab := newClusterTable()
	a := tab.Intern("x")
	b := tab.Intern("x")
	if a != b {
		t.Errorf("Intern(x) twice returned different entries")
	}
}

func TestInternGCFreesUnmarked(t *testing.T) {
	tab := newClusterTable()
	keep := tab.Intern("keep")
	tab.Intern("drop")

	tab.MarkAllUnused()
	tab.Mark(keep)
	freed := tab.GC()

	if freed != 1 {
		t.Errorf("GC freed %d, want 1", freed)
	}
	if again := tab.Intern("keep"); again != keep {
		t.Errorf("surviving entry identity changed after GC")
	}
}

func TestInternGrowsUnderLoad(t *testing.T) {
	tab := newClusterTable()
	for i := 0; i < 1000; i++ {
		tab.Intern(string(rune('a' + i%26)))
	}
	if tab.allocated <= 16 {
		t.Errorf("table never grew past initial size: allocated=%d", tab.allocated)
	}
}
