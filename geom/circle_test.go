package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPointInCircle(t *testing.T) {
	center := mgl64.Vec2{0, 0}

	tests := []struct {
		name     string
		point    mgl64.Vec2
		radius   float64
		expected bool
	}{
		{"center", mgl64.Vec2{0, 0}, 1, true},
		{"inside", mgl64.Vec2{0.5, 0.5}, 1, true},
		{"on boundary", mgl64.Vec2{3, 4}, 5, true},
		{"just outside", mgl64.Vec2{3, 4.01}, 5, false},
		{"zero radius at center", mgl64.Vec2{0, 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.point, center, tt.radius); got != tt.expected {
				t.Errorf("PointInCircle(%v, r=%v) = %v, want %v", tt.point, tt.radius, got, tt.expected)
			}
		})
	}
}

func TestCircleOverlapsRectangle(t *testing.T) {
	rect := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name     string
		center   mgl64.Vec2
		radius   float64
		expected bool
	}{
		{"center inside", mgl64.Vec2{5, 5}, 1, true},
		{"overlapping edge", mgl64.Vec2{-1, 5}, 2, true},
		{"touching edge", mgl64.Vec2{-2, 5}, 2, true},
		{"separated from edge", mgl64.Vec2{-3, 5}, 2, false},
		{"near corner but outside", mgl64.Vec2{12, 12}, 2, false},
		{"overlapping corner", mgl64.Vec2{11, 11}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleOverlapsRectangle(tt.center, tt.radius, rect); got != tt.expected {
				t.Errorf("CircleOverlapsRectangle(%v, %v) = %v, want %v", tt.center, tt.radius, got, tt.expected)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(mgl64.Vec2{0, 0}, 1, mgl64.Vec2{2, 0}, 1) {
		t.Error("Expected touching circles to overlap")
	}
	if CirclesOverlap(mgl64.Vec2{0, 0}, 1, mgl64.Vec2{2.1, 0}, 1) {
		t.Error("Expected separated circles not to overlap")
	}
}
