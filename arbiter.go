package flipbook

// NavigationHost is the page-turning control that competes with drag
// sessions for input.
type NavigationHost interface {
	// DisableInteraction stops the host from recognizing page-turn gestures.
	DisableInteraction()
	// EnableInteraction restores page-turn gesture recognition.
	EnableInteraction()
}

// GestureArbiter owns the host's interactivity flag and the input-claimed
// flag. It is the only writer of either.
type GestureArbiter struct {
	host    NavigationHost
	claimed bool
}

// NewGestureArbiter returns an arbiter for host. host may be nil, in which
// case only the claimed flag is tracked.
func NewGestureArbiter(host NavigationHost) *GestureArbiter {
	return &GestureArbiter{host: host}
}

// Disable makes the host non-interactive and claims input. Repeated calls
// are no-ops.
func (a *GestureArbiter) Disable() {
	if a.claimed {
		return
	}
	a.claimed = true
	if a.host != nil {
		a.host.DisableInteraction()
	}
}

// Enable restores host interactivity and drops the input claim. Repeated
// calls are no-ops.
func (a *GestureArbiter) Enable() {
	if !a.claimed {
		return
	}
	a.claimed = false
	if a.host != nil {
		a.host.EnableInteraction()
	}
}

// Claimed reports whether input is currently claimed by a drag session.
// Dispatchers must not deliver events to the host while it is true.
func (a *GestureArbiter) Claimed() bool {
	return a.claimed
}

// Acquire disables the host and returns a release func that re-enables it.
// Release may be called any number of times; only the first call has an
// effect, so every exit path can call it unconditionally.
func (a *GestureArbiter) Acquire() (release func()) {
	a.Disable()
	released := false
	return func() {
		if released {
			return
		}
		released = true
		a.Enable()
	}
}
