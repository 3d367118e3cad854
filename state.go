package flipbook

// RenderHint is the draggable's current percentage position. The drag
// controller writes it on every move; the view layer reads it once per frame
// and positions the element directly, bypassing any full re-layout.
type RenderHint struct {
	pos     Percent
	version uint64
}

// NewRenderHint returns a hint at the given starting position.
func NewRenderHint(start Percent) *RenderHint {
	return &RenderHint{pos: start}
}

// Set replaces the position and bumps the version.
func (h *RenderHint) Set(p Percent) {
	h.pos = p
	h.version++
}

// Position returns the current position.
func (h *RenderHint) Position() Percent {
	return h.pos
}

// Version increases on every Set. Views can compare it against the last
// value they drew to skip unchanged frames.
func (h *RenderHint) Version() uint64 {
	return h.version
}

type revealHandler struct {
	id uint32
	fn func()
}

// RevealLatch is a one-way boolean. It starts false, becomes true on the
// first successful drop, and never resets.
type RevealLatch struct {
	revealed bool
	handlers []revealHandler
	nextID   uint32
}

// Latch sets the latch. It returns true only for the call that flipped it;
// later calls are no-ops and return false.
func (l *RevealLatch) Latch() bool {
	if l.revealed {
		return false
	}
	l.revealed = true
	hs := append([]revealHandler(nil), l.handlers...)
	for _, h := range hs {
		h.fn()
	}
	return true
}

// Revealed reports whether the latch has tripped.
func (l *RevealLatch) Revealed() bool {
	return l.revealed
}

// OnReveal registers fn to run once when the latch trips. Registering after
// the latch has tripped does not call fn.
func (l *RevealLatch) OnReveal(fn func()) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.handlers = append(l.handlers, revealHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		for i := range l.handlers {
			if l.handlers[i].id == id {
				l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
				return
			}
		}
	}}
}
