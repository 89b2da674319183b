package vmath

// CirclesOverlap reports whether two circles of the given diameters overlap
// Touching circles (distance == sum of radii) do not overlap
func CirclesOverlap(a, b Vec2, sizeA, sizeB float64) bool {
	minDist := sizeA/2 + sizeB/2
	return a.Sub(b).LengthSq() < minDist*minDist
}
