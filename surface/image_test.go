package surface

import (
	"encoding/json"
	"testing"
)

func TestSaveLoadJSONRoundTripsAllColorKinds(t *testing.T) {
	s, _ := New(4, 1)
	s.Write(0, 0, "a", Attrs{Fg: RGB(10, 20, 30)})
	s.Write(1, 0, "b", Attrs{Bg: IndexedColor{Index: 42}})
	s.Write(2, 0, "c", Attrs{UnderlineColor: NamedColor{Name: NamedBackground}})
	s.Write(3, 0, "d", Attrs{})

	data, err := s.SaveJSON()
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	loaded, err := LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	if c := loaded.Cell(0, 0).Attrs.Fg; c != RGB(10, 20, 30) {
		t.Errorf("rgb fg round-trip = %v, want %v", c, RGB(10, 20, 30))
	}
	if c, ok := loaded.Cell(1, 0).Attrs.Bg.(IndexedColor); !ok || c.Index != 42 {
		t.Errorf("indexed bg round-trip = %#v, want IndexedColor{42}", loaded.Cell(1, 0).Attrs.Bg)
	}
	if c, ok := loaded.Cell(2, 0).Attrs.UnderlineColor.(NamedColor); !ok || c.Name != NamedBackground {
		t.Errorf("named underline round-trip = %#v, want NamedColor{NamedBackground}", loaded.Cell(2, 0).Attrs.UnderlineColor)
	}
	if loaded.Cell(3, 0).Attrs.Fg != nil {
		t.Errorf("default fg round-trip = %v, want nil", loaded.Cell(3, 0).Attrs.Fg)
	}
}

func TestSaveLoadJSONRoundTripsClearedCellAndSoftWrap(t *testing.T) {
	s, _ := New(3, 2)
	s.Write(0, 0, "x", Attrs{})
	s.ClearRect(1, 0, 2, 1, Attrs{Bg: RGB(1, 1, 1)})
	s.SetSoftWrap(2, 0, true)

	data, err := s.SaveJSON()
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	loaded, err := LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	if !loaded.Cell(1, 0).IsErased() {
		t.Errorf("loaded.Cell(1,0) = %+v, want erased", loaded.Cell(1, 0))
	}
	if loaded.Cell(1, 0).Attrs.Bg != RGB(1, 1, 1) {
		t.Errorf("erased cell lost Bg: %+v", loaded.Cell(1, 0).Attrs)
	}
	if !loaded.SoftWrap(2, 0) {
		t.Errorf("(2,0) SoftWrap not preserved")
	}
	if loaded.SoftWrap(2, 1) {
		t.Errorf("(2,1) SoftWrap should be false")
	}
}

func TestSaveLoadJSONRoundTripsWideCluster(t *testing.T) {
	s, _ := New(3, 1)
	s.Write(0, 0, "中", Attrs{})

	data, err := s.SaveJSON()
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	loaded, err := LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	base := loaded.Cell(0, 0)
	if base.Cluster() != "中" || base.Width != 2 {
		t.Errorf("base = %+v, want wide cluster 中", base)
	}
	spacer := loaded.Cell(1, 0)
	if !spacer.Attrs.Flags.HasFlag(FlagWideSpacer) {
		t.Errorf("spacer missing FlagWideSpacer: %+v", spacer)
	}
}

func TestLoadJSONRejectsWideCellWithoutRoomForSpacer(t *testing.T) {
	_, err := LoadJSON([]byte(`{"termpaint_image":true,"version":0,"width":1,"height":1,"cells":[{"x":0,"y":0,"t":"中","width":2}]}`))
	if err == nil {
		t.Errorf("LoadJSON accepted a wide cell with no room for its spacer")
	}
}

func TestSaveJSONMatchesLiteralWireFormat(t *testing.T) {
	s, _ := New(1, 1)
	s.Write(0, 0, "a", Attrs{Fg: RGB(1, 2, 3), Flags: FlagBold})

	data, err := s.SaveJSON()
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if raw["termpaint_image"] != true {
		t.Errorf(`termpaint_image = %v, want true`, raw["termpaint_image"])
	}
	if raw["version"] != float64(0) {
		t.Errorf(`version = %v, want 0`, raw["version"])
	}
	cells, ok := raw["cells"].([]interface{})
	if !ok || len(cells) != 1 {
		t.Fatalf("cells = %v, want a single-entry list", raw["cells"])
	}
	cell, ok := cells[0].(map[string]interface{})
	if !ok {
		t.Fatalf("cells[0] = %v, want an object", cells[0])
	}
	if cell["t"] != "a" {
		t.Errorf(`cells[0]["t"] = %v, want "a"`, cell["t"])
	}
	if cell["fg"] != "#010203" {
		t.Errorf(`cells[0]["fg"] = %v, want "#010203"`, cell["fg"])
	}
	if cell["bold"] != true {
		t.Errorf(`cells[0]["bold"] = %v, want true`, cell["bold"])
	}
}

func TestSaveJSONClearedCellSerializesLiteralSpaceText(t *testing.T) {
	s, _ := New(1, 1)
	s.ClearRect(0, 0, 1, 1, Attrs{})

	data, err := s.SaveJSON()
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	var raw struct {
		Cells []struct {
			Text    string `json:"t"`
			Cleared bool   `json:"cleared"`
		} `json:"cells"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(raw.Cells) != 1 || raw.Cells[0].Text != " " || !raw.Cells[0].Cleared {
		t.Errorf("cleared cell = %+v, want {Text:\" \" Cleared:true}", raw.Cells)
	}
}
