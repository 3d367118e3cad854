package flipbook

// syntheticEvent is a single injected input sample. It is fed through the
// same edge detector as real input, so a press sample on an already-held
// source becomes a move.
type syntheticEvent struct {
	source  Source
	x, y    float64
	pressed bool
}

// InjectPress queues a press at the given screen coordinates. The event is
// consumed on the next Update.
func (d *Dispatcher) InjectPress(src Source, x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{source: src, x: x, y: y, pressed: true})
}

// InjectMove queues a held move. Use it between InjectPress and
// InjectRelease to simulate a drag.
func (d *Dispatcher) InjectMove(src Source, x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{source: src, x: x, y: y, pressed: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (d *Dispatcher) InjectRelease(src Source, x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{source: src, x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves ending on (toX, toY), and a release there. The sequence
// consumes frames frames; when the endpoints differ at least one move is
// queued so the drop lands on the destination.
func (d *Dispatcher) InjectDrag(src Source, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	if frames == 2 && (fromX != toX || fromY != toY) {
		frames = 3
	}
	d.InjectPress(src, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d.InjectMove(src, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(src, toX, toY)
}

// Pending returns the number of queued synthetic events.
func (d *Dispatcher) Pending() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one queued event and runs it through the edge
// detector. It returns true if an event was consumed, in which case real
// input is skipped for the frame.
func (d *Dispatcher) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	d.processPointer(evt.source, evt.x, evt.y, evt.pressed)
	return true
}
