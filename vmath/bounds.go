package vmath

// Confine clamps a center position so an entity of the given diameter
// stays fully inside [0, bounds] on both axes
// Each axis is clamped to [size/2, bounds-size/2]; upper bound is applied first,
// so a field narrower than the entity pins it at size/2
func Confine(pos Vec2, size float64, bounds Vec2) Vec2 {
	half := size / 2
	xMax := bounds.X - half
	yMax := bounds.Y - half

	if pos.X >= xMax {
		pos.X = xMax
	}
	if pos.X <= half {
		pos.X = half
	}
	if pos.Y >= yMax {
		pos.Y = yMax
	}
	if pos.Y <= half {
		pos.Y = half
	}
	return pos
}

// AtEdge reports per-axis whether an entity of the given diameter touches
// or exceeds the bounds, used for bounce detection
// An axis no wider than the entity has no room to bounce and never reports an edge
func AtEdge(pos Vec2, size float64, bounds Vec2) (x, y bool) {
	half := size / 2
	x = bounds.X > size && (pos.X <= half || pos.X >= bounds.X-half)
	y = bounds.Y > size && (pos.Y <= half || pos.Y >= bounds.Y-half)
	return x, y
}
