package flipbook

import "testing"

func TestRevealLatch(t *testing.T) {
	var l RevealLatch
	calls := 0
	l.OnReveal(func() { calls++ })
	removed := l.OnReveal(func() { t.Error("removed handler fired") })
	removed.Remove()

	if l.Revealed() {
		t.Fatal("latch should start false")
	}
	if !l.Latch() {
		t.Error("first Latch should report the transition")
	}
	if l.Latch() {
		t.Error("second Latch should be a no-op")
	}
	if !l.Revealed() || calls != 1 {
		t.Errorf("revealed=%v calls=%d", l.Revealed(), calls)
	}

	late := 0
	l.OnReveal(func() { late++ })
	l.Latch()
	if late != 0 {
		t.Error("handlers registered after the reveal should not fire")
	}
}

func TestRenderHint(t *testing.T) {
	h := NewRenderHint(Percent{10, 20})
	if h.Position() != (Percent{10, 20}) || h.Version() != 0 {
		t.Errorf("initial hint = %+v v%d", h.Position(), h.Version())
	}
	h.Set(Percent{30, 40})
	h.Set(Percent{30, 40})
	if h.Position() != (Percent{30, 40}) || h.Version() != 2 {
		t.Errorf("hint = %+v v%d", h.Position(), h.Version())
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectFromEdges(10, 20, 110, 70)
	if r.Width != 100 || r.Height != 50 {
		t.Errorf("RectFromEdges = %+v", r)
	}
	if r.Right() != 110 || r.Bottom() != 70 || r.Left() != 10 || r.Top() != 20 {
		t.Error("edge accessors disagree with RectFromEdges")
	}
	if r.Center() != (Vec2{60, 45}) {
		t.Errorf("Center = %+v", r.Center())
	}
	if !r.Contains(10, 20) || !r.Contains(110, 70) || r.Contains(9, 20) {
		t.Error("Contains should be edge inclusive")
	}
	if !r.Measurable() || (Rect{}).Measurable() {
		t.Error("Measurable mismatch")
	}
}

func TestEnumStrings(t *testing.T) {
	if SourcePointer.String() != "pointer" || SourceTouch.String() != "touch" {
		t.Error("Source strings")
	}
	if PhasePress.String() != "press" || PhaseMove.String() != "move" || PhaseRelease.String() != "release" {
		t.Error("Phase strings")
	}
	if EventReveal.String() != "reveal" || EventType(99).String() != "unknown" {
		t.Error("EventType strings")
	}
}

func TestRevealLatch_RemoveDuringLatch(t *testing.T) {
	var l RevealLatch
	var a, b, c int
	var ha CallbackHandle
	ha = l.OnReveal(func() {
		a++
		ha.Remove()
	})
	l.OnReveal(func() { b++ })
	l.OnReveal(func() { c++ })

	l.Latch()
	if a != 1 || b != 1 || c != 1 {
		t.Errorf("calls a=%d b=%d c=%d, want 1 each", a, b, c)
	}
}
