package flipbook

import (
	"fmt"

	"github.com/rs/zerolog"
)

// EventStore is the interface for optional event bridging, for example into
// an ECS world. When set on a Book, session, reveal, and page events are
// forwarded to it.
type EventStore interface {
	EmitEvent(event BookEvent)
}

// BookEvent carries event data for an EventStore.
type BookEvent struct {
	Type EventType
	// Input fields (valid for session and ignored-input events)
	Source Source
	Phase  Phase
	X, Y   float64
	// Page is valid for EventPageChange.
	Page int
}

// Book owns the state of one interactive book: the drag controller for its
// draggable, the gesture arbiter guarding the navigation host, the reveal
// latch, the render hint, and the page index. Consumers receive it (or its
// parts) explicitly; there is no package-level state.
type Book struct {
	cfg        Config
	host       NavigationHost
	arbiter    *GestureArbiter
	latch      *RevealLatch
	hint       *RenderHint
	pages      *PageIndexTracker
	controller *DragController
	store      EventStore
	log        zerolog.Logger
}

// NewBook builds a Book from cfg. host receives interaction toggles; m
// measures the zone, draggable and target elements by the names in cfg.
func NewBook(cfg Config, host NavigationHost, m Measurer) (*Book, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new book: %w", err)
	}
	b := &Book{
		cfg:     cfg,
		host:    host,
		arbiter: NewGestureArbiter(host),
		latch:   &RevealLatch{},
		hint:    NewRenderHint(cfg.StartPosition()),
		pages:   NewPageIndexTracker(),
		log:     zerolog.Nop(),
	}
	b.controller = NewDragController(m, cfg.Target(m), b.arbiter, b.latch, b.hint, DragOptions{
		ZoneName:       cfg.ZoneName,
		DraggableName:  cfg.DraggableName,
		Ceiling:        cfg.ClampCeiling,
		RetireOnReveal: cfg.RetireOnReveal,
	})
	return b, nil
}

// Config returns the configuration the book was built with.
func (b *Book) Config() Config { return b.cfg }

// Controller returns the drag controller.
func (b *Book) Controller() *DragController { return b.controller }

// Arbiter returns the gesture arbiter.
func (b *Book) Arbiter() *GestureArbiter { return b.arbiter }

// Hint returns the draggable's render hint.
func (b *Book) Hint() *RenderHint { return b.hint }

// Pages returns the page index tracker.
func (b *Book) Pages() *PageIndexTracker { return b.pages }

// Reveal returns the reveal latch.
func (b *Book) Reveal() *RevealLatch { return b.latch }

// Revealed reports whether the target has been revealed.
func (b *Book) Revealed() bool { return b.latch.Revealed() }

// CurrentPage returns the page index last reported by the host.
func (b *Book) CurrentPage() int { return b.pages.Current() }

// OnPressStart forwards a press to the drag controller.
func (b *Book) OnPressStart(ev InputEvent) bool { return b.controller.OnPressStart(ev) }

// OnMove forwards a move to the drag controller.
func (b *Book) OnMove(ev InputEvent) bool { return b.controller.OnMove(ev) }

// OnRelease forwards a release to the drag controller.
func (b *Book) OnRelease(ev InputEvent) bool { return b.controller.OnRelease(ev) }

// OnFlip is the host's page-change notification.
func (b *Book) OnFlip(index int) {
	b.pages.Update(index)
	b.log.Debug().Int("page", index).Msg("page changed")
	if b.store != nil {
		b.store.EmitEvent(BookEvent{Type: EventPageChange, Page: index})
	}
}

// Close tears down the drag controller. An in-flight session is dropped
// without a drop test and the host is re-enabled.
func (b *Book) Close() {
	b.controller.Teardown()
}

// SetLogger sets the logger used by the book and its controller.
func (b *Book) SetLogger(l zerolog.Logger) {
	b.log = l
	b.controller.SetLogger(l)
}

// SetEventStore sets the optional event bridge for the book and its
// controller.
func (b *Book) SetEventStore(store EventStore) {
	b.store = store
	b.controller.SetEventStore(store)
}
