package flipbook

// Measurer returns the current screen-space bounds of a named element.
// ok is false when the element does not exist or has not been laid out.
// Implementations must measure on every call; results are never cached.
type Measurer interface {
	Measure(name string) (Rect, bool)
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(name string) (Rect, bool)

// Measure calls f(name).
func (f MeasureFunc) Measure(name string) (Rect, bool) {
	return f(name)
}

// TargetRegion supplies the screen-space rectangle a drop is tested against.
type TargetRegion interface {
	Bounds() (Rect, bool)
}

// LiveTarget measures a named element each time its bounds are requested, so
// the region follows the current layout and viewport.
type LiveTarget struct {
	Measurer Measurer
	Name     string
}

// Bounds measures the named element.
func (t LiveTarget) Bounds() (Rect, bool) {
	if t.Measurer == nil {
		return Rect{}, false
	}
	r, ok := t.Measurer.Measure(t.Name)
	if !ok || !r.Measurable() {
		return Rect{}, false
	}
	return r, true
}

// FixedTarget is a configured screen-space rectangle. It only matches the
// layout it was captured from, so prefer LiveTarget.
type FixedTarget Rect

// Bounds returns the configured rectangle.
func (t FixedTarget) Bounds() (Rect, bool) {
	r := Rect(t)
	return r, r.Measurable()
}

// CenterHit reports whether the center of draggable lies inside target.
// Edges are inclusive.
func CenterHit(draggable, target Rect) bool {
	c := draggable.Center()
	return c.X >= target.Left() && c.X <= target.Right() &&
		c.Y >= target.Top() && c.Y <= target.Bottom()
}

// CollisionDetector tests a draggable against a TargetRegion.
type CollisionDetector struct {
	Target TargetRegion
}

// Test reports whether the draggable's center falls inside the target.
// A missing or unmeasurable target yields false.
func (d CollisionDetector) Test(draggable Rect) bool {
	if d.Target == nil {
		return false
	}
	target, ok := d.Target.Bounds()
	if !ok {
		return false
	}
	return CenterHit(draggable, target)
}
