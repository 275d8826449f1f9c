package core

import "testing"

func TestInputFrameTaps(t *testing.T) {
	f := NewInputFrame()
	f.Tap(0.25, 0.5)
	f.Tap(-1, 3)

	if len(f.Taps) != 2 {
		t.Fatalf("len(Taps) = %d, expected 2", len(f.Taps))
	}
	if f.Taps[1] != (Pointer{X: 0, Y: 1}) {
		t.Errorf("Taps[1] = %+v, expected clamped {0 1}", f.Taps[1])
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if len(clone.Taps) != 2 {
		t.Errorf("clone lost taps after Clear: %d", len(clone.Taps))
	}
}

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionTap) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionTap)
	if !f.Has(ActionTap) || f.Has(ActionLeft) {
		t.Error("Set(ActionTap) should only mark Tap")
	}
	if ActionTap.String() != "Tap" {
		t.Errorf("ActionTap.String() = %q", ActionTap.String())
	}
}

func TestNotifierOrNop(t *testing.T) {
	// Must not panic
	NotifierOrNop(nil).Notify(CueTap, Light)

	rec := &Recorder{}
	NotifierOrNop(rec).Notify(CueCoin, Medium)
	if rec.Count(CueCoin) != 1 {
		t.Errorf("Recorder.Count(CueCoin) = %d, expected 1", rec.Count(CueCoin))
	}
	if CueCoin.String() != "coin" {
		t.Errorf("CueCoin.String() = %q, expected coin", CueCoin.String())
	}
}
