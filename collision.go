// Package ocol2d provides exact 2D collision predicates between points, line
// segments, circles, axis-aligned rectangles and rotated rectangles.
//
// A rotated ("oriented") rectangle turns around its pivot corner (X, Y), not
// its centroid. Every oriented test maps its query geometry into the local,
// unrotated frame of the rectangle and delegates to the unrotated predicate.
// Rectangle pairs are tested with the Separating Axis Theorem, see package sat.
//
// All predicates are pure functions over values: they never allocate, block or
// keep state, and can be called concurrently from any number of goroutines.
package ocol2d

import (
	"github.com/akmonengine/ocol2d/geom"
	"github.com/akmonengine/ocol2d/sat"
	"github.com/go-gl/mathgl/mgl64"
)

// LineEpsilon is the nudge applied by LineIntersectsRectangle to a segment
// parallel to an axis, so that its slab is never zero-width.
// It is an absolute distance: segments with coordinates far below it lose accuracy.
const LineEpsilon = 0.001

// PointInOrientedRectangle checks if point lies inside rect rotated by rotation degrees around its pivot.
func PointInOrientedRectangle(point mgl64.Vec2, rect geom.Rectangle, rotation float64) bool {
	return rect.ContainsPoint(geom.FrameTransform(point, rect, rotation))
}

// LineIntersectsCircle checks the segment p1-p2 against the circle (center, radius).
//
// The closest point of the infinite line to the center is projected on the
// segment: when it falls outside p1-p2, the result is false, even if an endpoint
// is inside the circle. A closest point at exactly radius counts as a hit.
//
// p1 and p2 must differ: a zero-length segment has no direction and the result is undefined.
func LineIntersectsCircle(p1, p2, center mgl64.Vec2, radius float64) bool {
	ab := p2.Sub(p1)
	t := center.Sub(p1).Dot(ab) / ab.Dot(ab)
	if t < 0 || t > 1 {
		return false
	}

	closest := p1.Add(ab.Mul(t))
	return geom.PointInCircle(closest, center, radius)
}

// LineIntersectsRectangle checks the segment p1-p2 against the axis-aligned rect,
// using LineEpsilon for axis-parallel segments.
func LineIntersectsRectangle(p1, p2 mgl64.Vec2, rect geom.Rectangle) bool {
	return LineIntersectsRectangleEpsilon(p1, p2, rect, LineEpsilon)
}

// LineIntersectsRectangleEpsilon checks the segment p1-p2 against the axis-aligned
// rect with a slab raycast.
//
// When the segment is parallel to an axis, p1 is moved by epsilon along that axis
// so that the per-axis ratios stay defined. epsilon must be strictly positive.
func LineIntersectsRectangleEpsilon(p1, p2 mgl64.Vec2, rect geom.Rectangle, epsilon float64) bool {
	// An endpoint inside is enough
	if rect.ContainsPoint(p1) || rect.ContainsPoint(p2) {
		return true
	}

	if p1.X() == p2.X() {
		p1[0] += epsilon
	}
	if p1.Y() == p2.Y() {
		p1[1] += epsilon
	}

	// Inverse direction, per axis
	direction := p2.Sub(p1).Normalize()
	var inverse mgl64.Vec2
	if direction.X() != 0 {
		inverse[0] = 1 / direction.X()
	}
	if direction.Y() != 0 {
		inverse[1] = 1 / direction.Y()
	}

	// Parametric distances to the min and max planes of each slab
	near := rect.Pivot().Sub(p1)
	near = mgl64.Vec2{near.X() * inverse.X(), near.Y() * inverse.Y()}
	far := rect.Max().Sub(p1)
	far = mgl64.Vec2{far.X() * inverse.X(), far.Y() * inverse.Y()}

	tmin := max(min(near.X(), far.X()), min(near.Y(), far.Y()))
	tmax := min(max(near.X(), far.X()), max(near.Y(), far.Y()))

	// The line misses the box, or the box is behind p1
	if tmax < 0 || tmin > tmax {
		return false
	}

	t := tmin
	if tmin < 0 {
		t = tmax
	}

	// Restrict the ray hit to the segment
	return t > 0 && t*t < p2.Sub(p1).LenSqr()
}

// LineIntersectsOrientedRectangle checks the segment p1-p2 against rect rotated by rotation degrees.
func LineIntersectsOrientedRectangle(p1, p2 mgl64.Vec2, rect geom.Rectangle, rotation float64) bool {
	transform := geom.NewTransform(rect, rotation)

	return LineIntersectsRectangle(transform.ToLocal(p1), transform.ToLocal(p2), rect)
}

// CircleIntersectsOrientedRectangle checks the circle (center, radius) against rect rotated by rotation degrees.
func CircleIntersectsOrientedRectangle(center mgl64.Vec2, radius float64, rect geom.Rectangle, rotation float64) bool {
	return geom.CircleOverlapsRectangle(geom.FrameTransform(center, rect, rotation), radius, rect)
}

// RectangleIntersectsOrientedRectangle checks the axis-aligned rect1 against rect2 rotated by rotation2 degrees.
func RectangleIntersectsOrientedRectangle(rect1, rect2 geom.Rectangle, rotation2 float64) bool {
	return sat.OrientedRectangleIntersectsRectangle(rect1, rect2, rotation2)
}

// OrientedRectanglesIntersect checks rect1 rotated by rotation1 against rect2 rotated by rotation2.
func OrientedRectanglesIntersect(rect1 geom.Rectangle, rotation1 float64, rect2 geom.Rectangle, rotation2 float64) bool {
	return sat.OrientedRectangleIntersectsOrientedRectangle(rect1, rotation1, rect2, rotation2)
}
