// Package flipbook is the interaction engine for an [Ebitengine] picture
// book: a drag-and-target controller that lets the reader pick up an element
// on a page, move it inside a bounded zone, and drop it on a target to
// reveal something, without the page-turning host mistaking the drag for a
// swipe.
//
// Page rendering and the page-turn animation belong to the host. The engine
// only needs three things from it: a [NavigationHost] it can switch off
// while a drag is in progress, a [Measurer] that reports live screen bounds
// of named elements, and a stream of input events.
//
// # Quick start
//
//	book, err := flipbook.NewBook(flipbook.DefaultConfig(), carousel, measurer)
//	if err != nil {
//		log.Fatal(err)
//	}
//	input := flipbook.NewDispatcher(book, carousel)
//
//	func (g *Game) Update() error {
//		input.Update()
//		return nil
//	}
//
// In Draw, position the draggable from [Book.Hint] (a percentage of the
// zone, see [Place]) and swap the target's presentation once
// [Book.Revealed] is true. The host reports completed turns with
// [Book.OnFlip]; sibling components read [Book.CurrentPage].
//
// # Sessions
//
// A press on the draggable starts a session bound to that press's [Source].
// Moves from the same source update the [RenderHint]; events from the other
// source are ignored until the session ends. Release tests the draggable's
// center against the target with [CenterHit] and trips the one-way
// [RevealLatch] on a hit. The [GestureArbiter] disables the host when the
// session starts and re-enables it on every exit path, including
// [Book.Close].
//
// While a session is active the arbiter's claimed flag is set and the
// [Dispatcher] withholds all input from the host.
//
// # Positions
//
// Drag positions are percentages of the interactive zone, clamped to
// [0, 85] on each axis. The 85 ceiling approximates the draggable's own
// footprint; it is not computed from the element's size. Drop targets are
// screen-space rectangles, measured live by default ([LiveTarget]).
//
// [Ebitengine]: https://ebitengine.org
package flipbook
