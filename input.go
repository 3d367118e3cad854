package flipbook

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HostInput receives the events the drag engine did not claim. The
// navigation host implements it to recognize page-turn swipes.
type HostInput interface {
	HandleInput(ev InputEvent)
}

// HostInputFunc adapts a plain function to HostInput.
type HostInputFunc func(ev InputEvent)

// HandleInput calls f(ev).
func (f HostInputFunc) HandleInput(ev InputEvent) { f(ev) }

// --- Per-source state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// Dispatcher polls Ebitengine for mouse and touch input, converts button and
// contact levels into press/move/release events, and routes them. The book's
// drag controller sees every event first; the host only sees events the
// controller did not consume and that arrived while input was not claimed.
type Dispatcher struct {
	book *Book
	host HostInput

	pointers [2]pointerState // indexed by Source

	// Primary touch tracking. Only the first contact drives a session.
	touchID     ebiten.TouchID
	touchActive bool
	touchIDs    []ebiten.TouchID

	injectQueue []syntheticEvent
	runner      *ScriptRunner
}

// NewDispatcher returns a dispatcher feeding book and, for unclaimed input,
// host. host may be nil.
func NewDispatcher(book *Book, host HostInput) *Dispatcher {
	return &Dispatcher{book: book, host: host}
}

// Update reads one frame of input. Call it from ebiten.Game.Update.
// Injected events, when queued, replace real input for the frame.
func (d *Dispatcher) Update() {
	if d.runner != nil {
		d.runner.step(d)
	}
	if d.processInjectedInput() {
		return
	}
	d.processMousePointer()
	d.processTouchPointer()
}

// Dispatch routes a single event. It is exported so hosts with their own
// event loop can feed events directly.
func (d *Dispatcher) Dispatch(ev InputEvent) {
	claimed := d.book.arbiter.Claimed()

	var consumed bool
	switch ev.Phase {
	case PhasePress:
		consumed = d.book.OnPressStart(ev)
	case PhaseMove:
		consumed = d.book.OnMove(ev)
	case PhaseRelease:
		consumed = d.book.OnRelease(ev)
	}
	if consumed || claimed {
		return
	}
	if d.host != nil {
		d.host.HandleInput(ev)
	}
}

// processMousePointer handles the left mouse button.
func (d *Dispatcher) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	d.processPointer(SourcePointer, float64(mx), float64(my), pressed)
}

// processTouchPointer handles the primary touch contact. A new contact is
// only adopted once the previous one has lifted.
func (d *Dispatcher) processTouchPointer() {
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])

	if d.touchActive {
		for _, tid := range d.touchIDs {
			if tid == d.touchID {
				tx, ty := ebiten.TouchPosition(tid)
				d.processPointer(SourceTouch, float64(tx), float64(ty), true)
				return
			}
		}
		// Contact lifted: release at the last known position.
		ps := &d.pointers[SourceTouch]
		d.processPointer(SourceTouch, ps.lastX, ps.lastY, false)
		d.touchActive = false
		return
	}

	if len(d.touchIDs) > 0 {
		d.touchID = d.touchIDs[0]
		d.touchActive = true
		tx, ty := ebiten.TouchPosition(d.touchID)
		d.processPointer(SourceTouch, float64(tx), float64(ty), true)
	}
}

// processPointer runs the press/move/release edge detector for one source.
func (d *Dispatcher) processPointer(src Source, x, y float64, pressed bool) {
	ps := &d.pointers[src]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		d.Dispatch(InputEvent{Phase: PhasePress, Source: src, X: x, Y: y})
	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = x, y
		d.Dispatch(InputEvent{Phase: PhaseRelease, Source: src, X: x, Y: y})
	case x != ps.lastX || y != ps.lastY:
		// Held moves drive the drag; hover moves still reach the host.
		ps.lastX, ps.lastY = x, y
		d.Dispatch(InputEvent{Phase: PhaseMove, Source: src, X: x, Y: y})
	}
}
