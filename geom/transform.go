// Package geom provides the 2D primitives the collision predicates are built on:
// axis-aligned rectangles, circles and rotations about a pivot.
//
// Vectors are mgl64.Vec2 values. Angles are in degrees, positive angles rotate
// from +x towards +y.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Rotate rotates v around the origin by the given angle in degrees
func Rotate(v mgl64.Vec2, degrees float64) mgl64.Vec2 {
	if degrees == 0 {
		return v
	}

	return mgl64.Rotate2D(mgl64.DegToRad(degrees)).Mul2x1(v)
}

// RotateAround rotates point around pivot by the given angle in degrees
func RotateAround(point, pivot mgl64.Vec2, degrees float64) mgl64.Vec2 {
	if degrees == 0 {
		return point
	}

	return Rotate(point.Sub(pivot), degrees).Add(pivot)
}

// Transform is a rotation in degrees around a pivot point.
// A rectangle with rotation θ is the rectangle whose local frame is mapped to
// the world by Transform{Pivot: rect.Pivot(), Rotation: θ}.
type Transform struct {
	Pivot    mgl64.Vec2
	Rotation float64
}

// NewTransform creates the transform of a rectangle rotated around its pivot corner
func NewTransform(rect Rectangle, rotation float64) Transform {
	return Transform{
		Pivot:    rect.Pivot(),
		Rotation: rotation,
	}
}

// ToWorld maps a local-frame point to the world by applying the forward rotation
func (t Transform) ToWorld(point mgl64.Vec2) mgl64.Vec2 {
	return RotateAround(point, t.Pivot, t.Rotation)
}

// ToLocal maps a world point into the local, unrotated frame.
// It is the inverse of ToWorld up to floating-point precision.
func (t Transform) ToLocal(point mgl64.Vec2) mgl64.Vec2 {
	return RotateAround(point, t.Pivot, -t.Rotation)
}

// FrameTransform re-expresses point in the local frame of rect rotated by rotation degrees
func FrameTransform(point mgl64.Vec2, rect Rectangle, rotation float64) mgl64.Vec2 {
	return NewTransform(rect, rotation).ToLocal(point)
}
