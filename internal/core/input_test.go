package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionConfirm) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionLeft)

	if !f.Has(ActionConfirm) || !f.Has(ActionLeft) {
		t.Error("set actions should be reported")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as triggered")
	}

	f.Clear()
	if f.Has(ActionConfirm) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()

	if _, _, ok := f.Click(); ok {
		t.Error("empty frame should have no click")
	}

	f.SetClick(12, 7)
	x, y, ok := f.Click()
	if !ok || x != 12 || y != 7 {
		t.Errorf("Click() = (%d, %d, %v), expected (12, 7, true)", x, y, ok)
	}

	// Last click within a frame wins
	f.SetClick(3, 4)
	x, y, _ = f.Click()
	if x != 3 || y != 4 {
		t.Errorf("Click() after second SetClick = (%d, %d)", x, y)
	}

	f.Clear()
	if _, _, ok := f.Click(); ok {
		t.Error("Clear should drop the click")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.SetClick(1, 2)

	clone := f.Clone()
	clone.Set(ActionQuit)

	if f.Has(ActionQuit) {
		t.Error("mutating the clone should not affect the original")
	}
	if !clone.Has(ActionPause) {
		t.Error("clone should carry the original actions")
	}
	if _, _, ok := clone.Click(); !ok {
		t.Error("clone should carry the click")
	}
}
