package shape

import (
	"fmt"

	"github.com/akmonengine/ocol2d/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind represents the type of collision shape
type Kind int

const (
	KindPoint Kind = iota
	KindSegment
	KindCircle
	KindBox
)

var kindNames = map[Kind]string{
	KindPoint:   "point",
	KindSegment: "segment",
	KindCircle:  "circle",
	KindBox:     "box",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named by s, as printed by Kind.String
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Shape is the interface that all collision shapes implement.
// Shapes are immutable values, positioned in world space.
type Shape interface {
	Kind() Kind
	// Bounds returns the world axis-aligned rectangle enclosing the shape
	Bounds() geom.Rectangle
}

// Point is a single location
type Point struct {
	Position mgl64.Vec2
}

func (p Point) Kind() Kind { return KindPoint }

func (p Point) Bounds() geom.Rectangle {
	return geom.BoundsOf(p.Position)
}

// Segment is a finite line segment between A and B
type Segment struct {
	A, B mgl64.Vec2
}

func (s Segment) Kind() Kind { return KindSegment }

func (s Segment) Bounds() geom.Rectangle {
	return geom.BoundsOf(s.A, s.B)
}

// IsDegenerate reports whether both endpoints are the same point
func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

// Circle is a disc; its boundary belongs to the shape
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Bounds() geom.Rectangle {
	return geom.Rectangle{
		X:      c.Center.X() - c.Radius,
		Y:      c.Center.Y() - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// Box represents a rectangle rotated by Rotation degrees around its pivot corner (Rect.X, Rect.Y).
// A zero Rotation is an axis-aligned rectangle.
type Box struct {
	Rect     geom.Rectangle
	Rotation float64
}

func (b Box) Kind() Kind { return KindBox }

// Transform returns the mapping from the box's local frame to the world
func (b Box) Transform() geom.Transform {
	return geom.NewTransform(b.Rect, b.Rotation)
}

// Corners returns the four world-space vertices, in the same order as geom.Rectangle.Corners
func (b Box) Corners() [4]mgl64.Vec2 {
	corners := b.Rect.Corners()
	if b.Rotation == 0 {
		return corners
	}

	transform := b.Transform()
	// The pivot corner is the center of rotation
	for i := 1; i < len(corners); i++ {
		corners[i] = transform.ToWorld(corners[i])
	}
	return corners
}

func (b Box) Bounds() geom.Rectangle {
	if b.Rotation == 0 {
		return b.Rect
	}

	corners := b.Corners()
	return geom.BoundsOf(corners[:]...)
}
