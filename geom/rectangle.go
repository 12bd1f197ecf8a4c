package geom

import "github.com/go-gl/mathgl/mgl64"

// Rectangle is an axis-aligned rectangle anchored at its pivot corner (X, Y).
// It extends by +Width along x and +Height along y. Negative extents are not validated.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Pivot returns the (X, Y) corner, the fixed point of any rotation applied to the rectangle
func (r Rectangle) Pivot() mgl64.Vec2 {
	return mgl64.Vec2{r.X, r.Y}
}

// Max returns the corner opposite to the pivot
func (r Rectangle) Max() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.Width, r.Y + r.Height}
}

// Corners returns the four vertices, pivot first, then the opposite corner and the two mixed ones.
func (r Rectangle) Corners() [4]mgl64.Vec2 {
	min := r.Pivot()
	max := r.Max()

	return [4]mgl64.Vec2{
		min,
		max,
		{min.X(), max.Y()},
		{max.X(), min.Y()},
	}
}

// WithPivot returns a copy of the rectangle moved to the given pivot, keeping its size
func (r Rectangle) WithPivot(pivot mgl64.Vec2) Rectangle {
	r.X = pivot.X()
	r.Y = pivot.Y()
	return r
}

// ContainsPoint checks if a point is inside the rectangle, edges included
func (r Rectangle) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= r.X && point.X() <= r.X+r.Width &&
		point.Y() >= r.Y && point.Y() <= r.Y+r.Height
}

// Overlaps checks if two rectangles overlap, touching edges included
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.X+r.Width >= other.X && r.X <= other.X+other.Width &&
		r.Y+r.Height >= other.Y && r.Y <= other.Y+other.Height
}

// Union returns the smallest rectangle containing both rectangles
func (r Rectangle) Union(other Rectangle) Rectangle {
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)

	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// BoundsOf returns the axis-aligned rectangle enclosing all the given points.
// It returns the zero Rectangle when points is empty.
func BoundsOf(points ...mgl64.Vec2) Rectangle {
	if len(points) == 0 {
		return Rectangle{}
	}

	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		lo[0] = min(lo[0], p[0])
		lo[1] = min(lo[1], p[1])
		hi[0] = max(hi[0], p[0])
		hi[1] = max(hi[1], p[1])
	}

	return Rectangle{X: lo.X(), Y: lo.Y(), Width: hi.X() - lo.X(), Height: hi.Y() - lo.Y()}
}
