package flipbook

import "math"

// Vec2 is a 2D vector used for screen positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in absolute screen space. The origin is
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromEdges builds a Rect from its left, top, right, and bottom edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Measurable reports whether the rectangle has a positive, finite size and a
// finite origin. Layout that has not happened yet reports zero size.
func (r Rect) Measurable() bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width > 0 && r.Height > 0
}

// Percent is a position expressed as percentages of an interactive zone's
// width and height. It is deliberately a separate type from Vec2 and Rect so
// normalized coordinates are never fed into screen-space hit tests.
type Percent struct {
	X, Y float64
}

// Source identifies the kind of device that produced an input event.
type Source uint8

const (
	SourcePointer Source = iota // mouse or pen
	SourceTouch                 // touch screen contact
)

// String returns the lower-case source name.
func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Phase is the stage of a press/move/release stream.
type Phase uint8

const (
	PhasePress   Phase = iota // button pressed or finger down
	PhaseMove                 // position changed while held
	PhaseRelease              // button released or finger lifted
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhasePress:
		return "press"
	case PhaseMove:
		return "move"
	case PhaseRelease:
		return "release"
	default:
		return "unknown"
	}
}

// InputEvent is a single press, move, or release in screen coordinates,
// tagged with the device that produced it.
type InputEvent struct {
	Phase  Phase
	Source Source
	X, Y   float64
}

// Pos returns the event position as a Vec2.
func (e InputEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// EventType identifies a kind of book event delivered to an EventStore.
type EventType uint8

const (
	EventSessionStart EventType = iota // a drag session was acquired
	EventSessionEnd                    // a drag session ended by release or teardown
	EventReveal                        // the reveal latch tripped
	EventPageChange                    // the host reported a completed page turn
	EventInputIgnored                  // an event did not belong to the active session
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventSessionStart:
		return "session-start"
	case EventSessionEnd:
		return "session-end"
	case EventReveal:
		return "reveal"
	case EventPageChange:
		return "page-change"
	case EventInputIgnored:
		return "input-ignored"
	default:
		return "unknown"
	}
}
