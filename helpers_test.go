package flipbook

import "testing"

type fakeHost struct {
	disables int
	enables  int
	enabled  bool
	received []InputEvent
}

func newFakeHost() *fakeHost { return &fakeHost{enabled: true} }

func (h *fakeHost) DisableInteraction() {
	h.disables++
	h.enabled = false
}

func (h *fakeHost) EnableInteraction() {
	h.enables++
	h.enabled = true
}

func (h *fakeHost) HandleInput(ev InputEvent) { h.received = append(h.received, ev) }

// fakeLayout measures a zone, a draggable laid out from a render hint, and
// a target. Flags simulate elements that are not laid out.
type fakeLayout struct {
	zone       Rect
	zoneGone   bool
	size       Vec2
	hint       *RenderHint
	target     Rect
	targetGone bool
	measured   map[string]int
}

var testZone = Rect{X: 800, Y: 200, Width: 400, Height: 400}

var testTarget = RectFromEdges(818.64, 247.87, 1217.36, 500)

func (l *fakeLayout) Measure(name string) (Rect, bool) {
	if l.measured == nil {
		l.measured = map[string]int{}
	}
	l.measured[name]++
	switch name {
	case "interactive-zone":
		if l.zoneGone {
			return Rect{}, false
		}
		return l.zone, true
	case "draggable-hammer":
		if l.zoneGone || l.hint == nil {
			return Rect{}, false
		}
		return Place(l.zone, l.hint.Position(), l.size), true
	case "page3-background":
		if l.targetGone {
			return Rect{}, false
		}
		return l.target, true
	}
	return Rect{}, false
}

func newTestBook(t *testing.T, cfg Config) (*Book, *fakeHost, *fakeLayout) {
	t.Helper()
	host := newFakeHost()
	layout := &fakeLayout{zone: testZone, size: Vec2{X: 80, Y: 80}, target: testTarget}
	b, err := NewBook(cfg, host, layout)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	layout.hint = b.Hint()
	return b, host, layout
}

func press(src Source, x, y float64) InputEvent {
	return InputEvent{Phase: PhasePress, Source: src, X: x, Y: y}
}

func move(src Source, x, y float64) InputEvent {
	return InputEvent{Phase: PhaseMove, Source: src, X: x, Y: y}
}

func release(src Source, x, y float64) InputEvent {
	return InputEvent{Phase: PhaseRelease, Source: src, X: x, Y: y}
}

type recordingStore struct {
	events []BookEvent
}

func (s *recordingStore) EmitEvent(e BookEvent) { s.events = append(s.events, e) }

func (s *recordingStore) count(t EventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
