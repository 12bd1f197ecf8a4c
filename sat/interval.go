package sat

import (
	"github.com/akmonengine/ocol2d/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Interval is the [Min, Max] range covered by a set of vertices projected onto an axis.
type Interval struct {
	Min float64
	Max float64
}

// Overlaps reports whether the two intervals share at least one value.
// Touching intervals (a.Max == b.Min) overlap.
func (i Interval) Overlaps(other Interval) bool {
	return other.Min <= i.Max && i.Min <= other.Max
}

// project computes the interval covered by vertices on axis.
func project(vertices [4]mgl64.Vec2, axis mgl64.Vec2) Interval {
	projection := axis.Dot(vertices[0])
	result := Interval{Min: projection, Max: projection}

	for i := 1; i < len(vertices); i++ {
		projection = axis.Dot(vertices[i])
		result.Min = min(result.Min, projection)
		result.Max = max(result.Max, projection)
	}

	return result
}

// ProjectionInterval projects the four corners of an axis-aligned rectangle onto axis.
//
// The axis does not need to be normalized: scaling it scales both intervals of a
// comparison equally, which leaves the overlap test unchanged.
func ProjectionInterval(rect geom.Rectangle, axis mgl64.Vec2) Interval {
	return project(rect.Corners(), axis)
}

// ProjectionIntervalOriented projects the corners of rect rotated by rotation degrees onto axis.
//
// The rectangle rotates around its pivot corner, so only the three other corners move.
func ProjectionIntervalOriented(rect geom.Rectangle, rotation float64, axis mgl64.Vec2) Interval {
	vertices := rect.Corners()
	transform := geom.NewTransform(rect, rotation)

	for i := 1; i < len(vertices); i++ {
		vertices[i] = transform.ToWorld(vertices[i])
	}

	return project(vertices, axis)
}
