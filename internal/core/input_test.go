package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name   string
		held   []Action
		dx, dy int
	}{
		{"nothing held", nil, 0, 0},
		{"up only", []Action{ActionUp}, 0, -1},
		{"down right", []Action{ActionDown, ActionRight}, 1, 1},
		{"left beats right", []Action{ActionLeft, ActionRight}, -1, 0},
		{"up beats down", []Action{ActionUp, ActionDown}, 0, -1},
		{"non-movement actions ignored", []Action{ActionConfirm, ActionPause}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.held {
				f.Set(a)
			}
			dx, dy := f.Axis()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Axis() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.AddClick(10, 20)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionUp) || len(f.Clicks) != 0 {
		t.Error("Clear should drop actions and clicks")
	}
	if !clone.Has(ActionUp) || len(clone.Clicks) != 1 || clone.Clicks[0] != (Click{X: 10, Y: 20}) {
		t.Errorf("Clone should be independent of the original, got %+v", clone)
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestSelectIndex(t *testing.T) {
	if idx, ok := ActionSelect3.SelectIndex(); !ok || idx != 2 {
		t.Errorf("ActionSelect3.SelectIndex() = (%d, %v), expected (2, true)", idx, ok)
	}
	if _, ok := ActionConfirm.SelectIndex(); ok {
		t.Error("ActionConfirm should not be a select action")
	}
}
