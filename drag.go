package flipbook

import "github.com/rs/zerolog"

// DragState is the drag controller's state.
type DragState uint8

const (
	StateIdle     DragState = iota // no session
	StateDragging                  // a session owns the draggable
)

// String returns the lower-case state name.
func (s DragState) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// DragSession is the interval between acquiring the draggable and letting
// go of it. At most one exists per controller.
type DragSession struct {
	Source Source
	// Offset is the press position minus the draggable's top-left corner.
	Offset Vec2
	// Origin is the screen position of the press.
	Origin Vec2
}

// DragOptions names the elements a DragController measures and tunes its
// behavior. Zero values fall back to DefaultConfig.
type DragOptions struct {
	ZoneName      string
	DraggableName string
	// Ceiling is the per-axis clamp for normalized positions.
	Ceiling float64
	// RetireOnReveal stops accepting new sessions once the latch trips.
	RetireOnReveal bool
}

// DragController turns raw press/move/release events into drag sessions,
// live position updates, and a drop test on release.
type DragController struct {
	measurer Measurer
	opts     DragOptions
	detector CollisionDetector
	arbiter  *GestureArbiter
	latch    *RevealLatch
	hint     *RenderHint
	store    EventStore
	log      zerolog.Logger
	session  *DragSession
	release  func()
	tornDown bool
}

// NewDragController wires a controller. target is the drop region; it should
// normally be a LiveTarget. arbiter, latch and hint must not be nil.
func NewDragController(m Measurer, target TargetRegion, arbiter *GestureArbiter,
	latch *RevealLatch, hint *RenderHint, opts DragOptions) *DragController {
	def := DefaultConfig()
	if opts.ZoneName == "" {
		opts.ZoneName = def.ZoneName
	}
	if opts.DraggableName == "" {
		opts.DraggableName = def.DraggableName
	}
	if opts.Ceiling <= 0 {
		opts.Ceiling = def.ClampCeiling
	}
	return &DragController{
		measurer: m,
		opts:     opts,
		detector: CollisionDetector{Target: target},
		arbiter:  arbiter,
		latch:    latch,
		hint:     hint,
		log:      zerolog.Nop(),
	}
}

// SetLogger replaces the controller's logger. Ignored events are logged at
// debug level.
func (c *DragController) SetLogger(l zerolog.Logger) {
	c.log = l
}

// SetEventStore sets the optional event bridge.
func (c *DragController) SetEventStore(store EventStore) {
	c.store = store
}

// State returns the current state.
func (c *DragController) State() DragState {
	if c.session != nil {
		return StateDragging
	}
	return StateIdle
}

// Session returns a copy of the active session, or false when idle.
func (c *DragController) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Lifted reports whether the draggable is currently held. Views use it to
// draw the element raised.
func (c *DragController) Lifted() bool {
	return c.session != nil
}

// Retired reports whether the controller has stopped accepting sessions,
// either because it was torn down or because the reveal retired it.
func (c *DragController) Retired() bool {
	return c.tornDown || (c.opts.RetireOnReveal && c.latch.Revealed())
}

// OnPressStart starts a session when ev lands on the draggable. It returns
// true when the event was consumed.
func (c *DragController) OnPressStart(ev InputEvent) bool {
	if c.session != nil || c.Retired() {
		c.ignore(ev, "press while busy or retired")
		return false
	}
	bounds, ok := c.measure(c.opts.DraggableName)
	if !ok || !bounds.Contains(ev.X, ev.Y) {
		return false
	}

	c.session = &DragSession{
		Source: ev.Source,
		Offset: Vec2{X: ev.X - bounds.X, Y: ev.Y - bounds.Y},
		Origin: ev.Pos(),
	}
	c.release = c.arbiter.Acquire()
	c.log.Debug().Stringer("source", ev.Source).
		Float64("x", ev.X).Float64("y", ev.Y).
		Msg("drag session started")
	c.emit(EventSessionStart, ev)
	return true
}

// OnMove updates the render hint for the active session. It returns true
// when the event belonged to the session, even if the zone could not be
// measured this frame.
func (c *DragController) OnMove(ev InputEvent) bool {
	if !c.owns(ev) {
		return false
	}
	zone, ok := c.measure(c.opts.ZoneName)
	if !ok {
		c.log.Debug().Str("zone", c.opts.ZoneName).Msg("zone not measurable, keeping last position")
		return true
	}
	pos, ok := NormalizeWithin(ev.Pos(), zone, c.session.Offset, c.opts.Ceiling)
	if ok {
		c.hint.Set(pos)
	}
	return true
}

// OnRelease ends the active session, runs the drop test and releases the
// host. The host is re-enabled whether or not the drop hit.
func (c *DragController) OnRelease(ev InputEvent) bool {
	if !c.owns(ev) {
		return false
	}
	hit := false
	if bounds, ok := c.measure(c.opts.DraggableName); ok {
		hit = c.detector.Test(bounds)
	}
	c.endSession()
	c.emit(EventSessionEnd, ev)

	if hit && c.latch.Latch() {
		c.log.Info().Stringer("source", ev.Source).Msg("target revealed")
		c.emit(EventReveal, ev)
	}
	return true
}

// Teardown discards any in-flight session without a drop test and
// re-enables the host. After Teardown every callback is a no-op.
func (c *DragController) Teardown() {
	if c.tornDown {
		return
	}
	c.tornDown = true
	if c.session != nil {
		c.log.Debug().Msg("drag session discarded on teardown")
		c.endSession()
	}
}

func (c *DragController) endSession() {
	c.session = nil
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// owns reports whether ev belongs to the active session.
func (c *DragController) owns(ev InputEvent) bool {
	if c.tornDown || c.session == nil {
		c.ignore(ev, "no active session")
		return false
	}
	if ev.Source != c.session.Source {
		c.ignore(ev, "source does not match session")
		return false
	}
	return true
}

func (c *DragController) measure(name string) (Rect, bool) {
	if c.measurer == nil {
		return Rect{}, false
	}
	r, ok := c.measurer.Measure(name)
	if !ok || !r.Measurable() {
		return Rect{}, false
	}
	return r, true
}

func (c *DragController) ignore(ev InputEvent, reason string) {
	if c.tornDown || ev.Phase == PhaseMove {
		// Nothing is reported after teardown. Stray moves (hover, or the
		// other source during a session) arrive every frame.
		return
	}
	c.log.Debug().Stringer("phase", ev.Phase).Stringer("source", ev.Source).
		Str("reason", reason).Msg("input ignored")
	c.emit(EventInputIgnored, ev)
}

func (c *DragController) emit(t EventType, ev InputEvent) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(BookEvent{
		Type:   t,
		Source: ev.Source,
		Phase:  ev.Phase,
		X:      ev.X,
		Y:      ev.Y,
	})
}
