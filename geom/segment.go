package geom

import "github.com/go-gl/mathgl/mgl64"

// orientation returns the sign of the turn o -> a -> b: >0 counter-clockwise, <0 clockwise, 0 collinear
func orientation(o, a, b mgl64.Vec2) float64 {
	return (a.X()-o.X())*(b.Y()-o.Y()) - (a.Y()-o.Y())*(b.X()-o.X())
}

// onSegmentBounds checks if p lies within the bounding box of segment a-b.
// Only meaningful when p is already known to be collinear with a-b.
func onSegmentBounds(p, a, b mgl64.Vec2) bool {
	return p.X() >= min(a.X(), b.X()) && p.X() <= max(a.X(), b.X()) &&
		p.Y() >= min(a.Y(), b.Y()) && p.Y() <= max(a.Y(), b.Y())
}

// PointOnSegment checks if p lies exactly on the segment a-b, endpoints included
func PointOnSegment(p, a, b mgl64.Vec2) bool {
	return orientation(a, b, p) == 0 && onSegmentBounds(p, a, b)
}

// SegmentsIntersect checks if segments a1-a2 and b1-b2 share at least one point.
// Touching endpoints and overlapping collinear segments intersect.
func SegmentsIntersect(a1, a2, b1, b2 mgl64.Vec2) bool {
	d1 := orientation(b1, b2, a1)
	d2 := orientation(b1, b2, a2)
	d3 := orientation(a1, a2, b1)
	d4 := orientation(a1, a2, b2)

	// Proper crossing: each segment straddles the other's line
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegmentBounds(a1, b1, b2):
		return true
	case d2 == 0 && onSegmentBounds(a2, b1, b2):
		return true
	case d3 == 0 && onSegmentBounds(b1, a1, a2):
		return true
	case d4 == 0 && onSegmentBounds(b2, a1, a2):
		return true
	}

	return false
}
