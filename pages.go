package flipbook

type pageHandler struct {
	id uint32
	fn func(int)
}

// PageIndexTracker records the page index reported by the navigation host
// after each completed turn. Consumers read it; only the host writes it.
type PageIndexTracker struct {
	current  int
	handlers []pageHandler
	nextID   uint32
}

// NewPageIndexTracker returns a tracker positioned on page 0.
func NewPageIndexTracker() *PageIndexTracker {
	return &PageIndexTracker{}
}

// Update stores index and notifies subscribers. The host guarantees the
// range, so no bounds validation is done here.
func (t *PageIndexTracker) Update(index int) {
	t.current = index
	// Subscribers may remove themselves while being notified.
	hs := append([]pageHandler(nil), t.handlers...)
	for _, h := range hs {
		h.fn(index)
	}
}

// Current returns the most recently reported page index.
func (t *PageIndexTracker) Current() int {
	return t.current
}

// OnChange registers fn to run after every Update.
func (t *PageIndexTracker) OnChange(fn func(index int)) CallbackHandle {
	t.nextID++
	id := t.nextID
	t.handlers = append(t.handlers, pageHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() { t.remove(id) }}
}

func (t *PageIndexTracker) remove(id uint32) {
	for i := range t.handlers {
		if t.handlers[i].id == id {
			copy(t.handlers[i:], t.handlers[i+1:])
			t.handlers[len(t.handlers)-1] = pageHandler{}
			t.handlers = t.handlers[:len(t.handlers)-1]
			return
		}
	}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Calling Remove on a
// zero handle or more than once is safe.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}
