package ocol2d

import (
	"github.com/akmonengine/ocol2d/geom"
	"github.com/akmonengine/ocol2d/shape"
)

// Collide reports whether two shapes touch or overlap.
//
// Every pair of shape.Point, shape.Segment, shape.Circle and shape.Box values is
// supported, in either order: Collide(a, b) == Collide(b, a).
// Unknown Shape implementations never collide.
//
// Zero-length segments are handled as points, so the precondition of
// LineIntersectsCircle always holds here.
func Collide(a, b shape.Shape) bool {
	// Only the lower-left half of the dispatch table is implemented
	if a.Kind() > b.Kind() {
		a, b = b, a
	}

	if s, ok := a.(shape.Segment); ok && s.IsDegenerate() {
		a = shape.Point{Position: s.A}
	}
	if s, ok := b.(shape.Segment); ok && s.IsDegenerate() {
		b = shape.Point{Position: s.A}
		// A point sorts before any other kind
		a, b = b, a
	}

	switch a := a.(type) {
	case shape.Point:
		return collidePoint(a, b)
	case shape.Segment:
		return collideSegment(a, b)
	case shape.Circle:
		return collideCircle(a, b)
	case shape.Box:
		if b, ok := b.(shape.Box); ok {
			return OrientedRectanglesIntersect(a.Rect, a.Rotation, b.Rect, b.Rotation)
		}
	}

	return false
}

func collidePoint(p shape.Point, other shape.Shape) bool {
	switch b := other.(type) {
	case shape.Point:
		return p.Position == b.Position
	case shape.Segment:
		return geom.PointOnSegment(p.Position, b.A, b.B)
	case shape.Circle:
		return geom.PointInCircle(p.Position, b.Center, b.Radius)
	case shape.Box:
		return PointInOrientedRectangle(p.Position, b.Rect, b.Rotation)
	}
	return false
}

func collideSegment(s shape.Segment, other shape.Shape) bool {
	switch b := other.(type) {
	case shape.Segment:
		return geom.SegmentsIntersect(s.A, s.B, b.A, b.B)
	case shape.Circle:
		// The projection test rejects segments whose closest line point falls
		// outside them, so endpoints inside the circle are checked first.
		return geom.PointInCircle(s.A, b.Center, b.Radius) ||
			geom.PointInCircle(s.B, b.Center, b.Radius) ||
			LineIntersectsCircle(s.A, s.B, b.Center, b.Radius)
	case shape.Box:
		return LineIntersectsOrientedRectangle(s.A, s.B, b.Rect, b.Rotation)
	}
	return false
}

func collideCircle(c shape.Circle, other shape.Shape) bool {
	switch b := other.(type) {
	case shape.Circle:
		return geom.CirclesOverlap(c.Center, c.Radius, b.Center, b.Radius)
	case shape.Box:
		return CircleIntersectsOrientedRectangle(c.Center, c.Radius, b.Rect, b.Rotation)
	}
	return false
}
