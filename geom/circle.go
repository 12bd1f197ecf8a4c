package geom

import "github.com/go-gl/mathgl/mgl64"

// PointInCircle checks if a point lies within radius of center.
// A point exactly on the circle counts as inside.
func PointInCircle(point, center mgl64.Vec2, radius float64) bool {
	return point.Sub(center).LenSqr() <= radius*radius
}

// CircleOverlapsRectangle checks if a circle touches or overlaps an axis-aligned rectangle
func CircleOverlapsRectangle(center mgl64.Vec2, radius float64, rect Rectangle) bool {
	// Closest point of the rectangle to the circle center
	closest := mgl64.Vec2{
		mgl64.Clamp(center.X(), rect.X, rect.X+rect.Width),
		mgl64.Clamp(center.Y(), rect.Y, rect.Y+rect.Height),
	}

	return PointInCircle(closest, center, radius)
}

// CirclesOverlap checks if two circles touch or overlap
func CirclesOverlap(centerA mgl64.Vec2, radiusA float64, centerB mgl64.Vec2, radiusB float64) bool {
	return PointInCircle(centerA, centerB, radiusA+radiusB)
}
