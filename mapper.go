package flipbook

import "math"

// DefaultClampCeiling is the largest percentage a normalized position may
// take on either axis. It is a fixed approximation of the draggable's own
// footprint so the element does not overflow the zone's trailing edge. It is
// not derived from the element's real size and is not exact.
const DefaultClampCeiling = 85.0

// Normalize maps an absolute pointer position into percentage space relative
// to zone, after subtracting the grab offset captured at press time. Each
// axis is clamped to [0, DefaultClampCeiling]. ok is false when the zone
// cannot be measured; the returned Percent is then zero and must be ignored.
func Normalize(pointer Vec2, zone Rect, offset Vec2) (Percent, bool) {
	return NormalizeWithin(pointer, zone, offset, DefaultClampCeiling)
}

// NormalizeWithin is Normalize with a caller-supplied ceiling.
func NormalizeWithin(pointer Vec2, zone Rect, offset Vec2, ceiling float64) (Percent, bool) {
	if !zone.Measurable() {
		return Percent{}, false
	}
	ceiling = clamp(ceiling, 0, 100)
	px := (pointer.X - zone.X - offset.X) / zone.Width * 100
	py := (pointer.Y - zone.Y - offset.Y) / zone.Height * 100
	return Percent{X: clamp(px, 0, ceiling), Y: clamp(py, 0, ceiling)}, true
}

// ClampPercent clamps both axes of p to [0, ceiling].
func ClampPercent(p Percent, ceiling float64) Percent {
	ceiling = clamp(ceiling, 0, 100)
	return Percent{X: clamp(p.X, 0, ceiling), Y: clamp(p.Y, 0, ceiling)}
}

// Place lays out an element of the given pixel size at percentage position
// pos inside zone, returning its screen-space bounds. View layers and
// measurement services use it to turn a RenderHint back into a Rect.
func Place(zone Rect, pos Percent, size Vec2) Rect {
	return Rect{
		X:      zone.X + zone.Width*pos.X/100,
		Y:      zone.Y + zone.Height*pos.Y/100,
		Width:  size.X,
		Height: size.Y,
	}
}

// clamp limits v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
