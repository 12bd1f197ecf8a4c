// Package sat implements the Separating Axis Theorem (SAT) for rectangles that
// rotate around their pivot corner.
//
// Two convex polygons are disjoint if and only if there is an axis onto which
// their projections do not overlap. For polygons it is enough to test the axes
// parallel to each polygon's edge normals. A rectangle only has two distinct
// edge normals, so a pair of rectangles needs at most four axes:
//   - world x and world y, for the axis-aligned rectangle
//   - the rotated local x and local y axes, for the oriented rectangle
//
// The general case, two rotated rectangles, is reduced to the single rotation
// case by expressing the second rectangle in the local frame of the first one.
//
// All functions are pure, allocation free, and safe for concurrent use.
package sat

import (
	"github.com/akmonengine/ocol2d/geom"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	AxisX = mgl64.Vec2{1, 0}
	AxisY = mgl64.Vec2{0, 1}
)

// AxesOverlap projects the axis-aligned rect1 and the oriented rect2 onto axis
// and reports whether the resulting intervals overlap.
func AxesOverlap(rect1, rect2 geom.Rectangle, rotation2 float64, axis mgl64.Vec2) bool {
	a := ProjectionInterval(rect1, axis)
	b := ProjectionIntervalOriented(rect2, rotation2, axis)

	return a.Overlaps(b)
}

// CandidateAxes returns the four axes SAT has to test for an axis-aligned
// rectangle against a rectangle rotated by rotation2 degrees.
//
// Order: world x, world y, rotated local x, rotated local y.
func CandidateAxes(rotation2 float64) [4]mgl64.Vec2 {
	return [4]mgl64.Vec2{
		AxisX,
		AxisY,
		geom.Rotate(AxisX, rotation2).Normalize(),
		geom.Rotate(AxisY, rotation2).Normalize(),
	}
}

// SeparatingAxis returns the first candidate axis on which the axis-aligned
// rect1 and the oriented rect2 do not overlap.
//
// Returns:
//   - axis, true: the rectangles are disjoint, axis separates them
//   - zero vector, false: every candidate axis overlaps, the rectangles collide
func SeparatingAxis(rect1, rect2 geom.Rectangle, rotation2 float64) (mgl64.Vec2, bool) {
	for _, axis := range CandidateAxes(rotation2) {
		if !AxesOverlap(rect1, rect2, rotation2, axis) {
			return axis, true
		}
	}

	return mgl64.Vec2{}, false
}

// OrientedRectangleIntersectsRectangle checks the axis-aligned rect1 against
// rect2 rotated by rotation2 degrees around its pivot corner.
//
// The rectangles need to overlap on every candidate axis, the first axis without
// overlap proves the separation and ends the test.
func OrientedRectangleIntersectsRectangle(rect1, rect2 geom.Rectangle, rotation2 float64) bool {
	_, separated := SeparatingAxis(rect1, rect2, rotation2)
	return !separated
}

// Reduce rotates the whole scene by -rotation1 around rect1's pivot so that rect1
// becomes axis-aligned.
//
// Rotating the scene preserves every distance and angle, so the collision outcome
// of the returned (rect2, rotation2) pair against the unrotated rect1 is the same
// as the original pair. Only rect2's pivot moves; its size is unchanged.
func Reduce(rect1 geom.Rectangle, rotation1 float64, rect2 geom.Rectangle, rotation2 float64) (geom.Rectangle, float64) {
	pivot := geom.NewTransform(rect1, rotation1).ToLocal(rect2.Pivot())

	return rect2.WithPivot(pivot), rotation2 - rotation1
}

// OrientedRectangleIntersectsOrientedRectangle checks rect1 rotated by rotation1
// degrees against rect2 rotated by rotation2 degrees, each around its own pivot corner.
func OrientedRectangleIntersectsOrientedRectangle(rect1 geom.Rectangle, rotation1 float64, rect2 geom.Rectangle, rotation2 float64) bool {
	reduced, rotation := Reduce(rect1, rotation1, rect2, rotation2)

	return OrientedRectangleIntersectsRectangle(rect1, reduced, rotation)
}
