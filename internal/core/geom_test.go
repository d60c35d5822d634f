package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() should be false for a 20x15 rect")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("Empty() should be true for a zero-width rect")
	}
}

func TestMazeFit(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 81, ScreenH: 24}

	// 2-char cells and walls horizontally, 1-char vertically, 3 rows reserved
	w, h := cfg.MazeFit(2, 1, 2, 1, 3)
	if w != 19 || h != 10 {
		t.Errorf("MazeFit() = (%d, %d), expected (19, 10)", w, h)
	}

	tiny := RuntimeConfig{ScreenW: 0, ScreenH: 0}
	w, h = tiny.MazeFit(2, 1, 2, 1, 3)
	if w != 1 || h != 1 {
		t.Errorf("MazeFit() on empty screen = (%d, %d), expected (1, 1)", w, h)
	}
}
