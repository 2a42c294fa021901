package table

import "testing"

func TestNewTableSeedsDefaults(t *testing.T) {
	tbl := NewTable()

	if got := tbl.Layer("Default"); got != DefaultLayer {
		t.Errorf("Layer(Default) = %v, want the shared DefaultLayer handle", got)
	}
	if got := tbl.LineType("Continuous"); got != Continuous {
		t.Errorf("LineType(Continuous) = %v, want the shared Continuous handle", got)
	}
}

func TestAddLayerInterns(t *testing.T) {
	tbl := NewTable()

	walls, err := tbl.AddLayer("walls", Red, nil)
	if err != nil {
		t.Fatalf("AddLayer: %v", err)
	}
	if walls.Color() != Red {
		t.Errorf("layer color = %v, want Red", walls.Color())
	}
	if walls.LineType() != Continuous {
		t.Errorf("nil line type should fall back to Continuous, got %v", walls.LineType())
	}

	// Lookup returns the same handle.
	if got := tbl.Layer("walls"); got != walls {
		t.Errorf("Layer(walls) = %p, want %p", got, walls)
	}

	// Duplicate names are rejected.
	if _, err := tbl.AddLayer("walls", Blue, nil); err == nil {
		t.Error("duplicate AddLayer should fail")
	}
	if got := tbl.Layer("walls"); got != walls {
		t.Error("failed AddLayer must not replace the existing handle")
	}
}

func TestAddLineType(t *testing.T) {
	tbl := NewTable()

	dashed, err := tbl.AddLineType("dashed", 12, 6)
	if err != nil {
		t.Fatalf("AddLineType: %v", err)
	}
	pat := dashed.Pattern()
	if len(pat) != 2 || pat[0] != 12 || pat[1] != 6 {
		t.Errorf("pattern = %v, want [12 6]", pat)
	}

	// Returned pattern is a copy.
	pat[0] = 99
	if dashed.Pattern()[0] != 12 {
		t.Error("mutating the returned pattern changed the handle")
	}

	if _, err := tbl.AddLineType("dashed"); err == nil {
		t.Error("duplicate AddLineType should fail")
	}
}

func TestSentinels(t *testing.T) {
	if !ColorByLayer.IsByLayer() {
		t.Error("ColorByLayer.IsByLayer() = false")
	}
	if ColorByLayer.Index() != ByLayerIndex {
		t.Errorf("ColorByLayer index = %d, want %d", ColorByLayer.Index(), ByLayerIndex)
	}
	if Red.IsByLayer() {
		t.Error("Red.IsByLayer() = true")
	}
	if !LineTypeByLayer.IsByLayer() {
		t.Error("LineTypeByLayer.IsByLayer() = false")
	}

	// A separately constructed "ByLayer" color is not the sentinel.
	impostor := NewColor("ByLayer", ByLayerIndex)
	if impostor.IsByLayer() {
		t.Error("copy of the sentinel should not pass the identity check")
	}
}

func TestColorByIndex(t *testing.T) {
	c, err := ColorByIndex(5)
	if err != nil {
		t.Fatalf("ColorByIndex(5): %v", err)
	}
	if c != Blue {
		t.Errorf("ColorByIndex(5) = %v, want Blue", c)
	}

	if _, err := ColorByIndex(42); err == nil {
		t.Error("unknown index should fail")
	}
}

func TestHasLayer(t *testing.T) {
	tbl := NewTable()
	walls, _ := tbl.AddLayer("walls", nil, nil)

	if !tbl.HasLayer(walls) {
		t.Error("HasLayer(walls) = false")
	}
	if !tbl.HasLayer(DefaultLayer) {
		t.Error("HasLayer(DefaultLayer) = false")
	}

	foreign := NewLayer("walls", nil, nil)
	if tbl.HasLayer(foreign) {
		t.Error("same-named foreign handle should not pass")
	}
	if !tbl.HasLineType(LineTypeByLayer) {
		t.Error("by-layer sentinel should always pass HasLineType")
	}
}
