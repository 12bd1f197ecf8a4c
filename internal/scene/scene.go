// Package scene loads collision scenes from YAML files.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/akmonengine/ocol2d"
	"github.com/akmonengine/ocol2d/geom"
	"github.com/akmonengine/ocol2d/shape"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrInvalidBody is wrapped by every validation error of a scene body
var ErrInvalidBody = errors.New("invalid body")

// YAMLScene represents the YAML structure for a scene file.
type YAMLScene struct {
	Name   string     `yaml:"name"`
	Bodies []YAMLBody `yaml:"bodies"`
}

// YAMLVec is a point written as [x, y].
type YAMLVec [2]float64

func (v YAMLVec) vec2() mgl64.Vec2 {
	return mgl64.Vec2{v[0], v[1]}
}

// YAMLBody represents a single body. Only the fields of its kind are read.
type YAMLBody struct {
	ID       string `yaml:"id,omitempty"`
	Kind     string `yaml:"kind"`
	Disabled bool   `yaml:"disabled,omitempty"`

	// point
	Position YAMLVec `yaml:"position,omitempty"`
	// segment
	From YAMLVec `yaml:"from,omitempty"`
	To   YAMLVec `yaml:"to,omitempty"`
	// circle
	Center YAMLVec `yaml:"center,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	// box
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	Width    float64 `yaml:"width,omitempty"`
	Height   float64 `yaml:"height,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty"`
}

// Scene represents a parsed scene ready to be loaded in a world.
type Scene struct {
	Name   string
	Bodies []*ocol2d.Body
}

// Parse parses a YAML scene.
// Bodies without an id receive a random one.
func Parse(data []byte) (Scene, error) {
	var ys YAMLScene
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scene{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	scene := Scene{
		Name:   ys.Name,
		Bodies: make([]*ocol2d.Body, 0, len(ys.Bodies)),
	}
	seen := make(map[string]bool, len(ys.Bodies))

	for i, yb := range ys.Bodies {
		s, err := yb.shape()
		if err != nil {
			return Scene{}, fmt.Errorf("body %d (%s): %w", i, yb.ID, err)
		}

		id := yb.ID
		if id == "" {
			id = uuid.New().String()
		}
		if seen[id] {
			return Scene{}, fmt.Errorf("body %d: duplicate id %q: %w", i, id, ErrInvalidBody)
		}
		seen[id] = true

		scene.Bodies = append(scene.Bodies, &ocol2d.Body{
			ID:       id,
			Shape:    s,
			Disabled: yb.Disabled,
		})
	}

	return scene, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	scene, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	return scene, nil
}

// World creates a world holding every body of the scene.
func (s Scene) World(workers int) *ocol2d.World {
	world := ocol2d.NewWorld(workers)
	for _, body := range s.Bodies {
		world.AddBody(body)
	}
	return world
}

// shape validates the body and builds its shape
func (yb YAMLBody) shape() (shape.Shape, error) {
	kind, err := shape.ParseKind(yb.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	switch kind {
	case shape.KindPoint:
		return shape.Point{Position: yb.Position.vec2()}, nil

	case shape.KindSegment:
		// Zero-length segments have no direction for the line tests
		if yb.From == yb.To {
			return nil, fmt.Errorf("%w: zero-length segment", ErrInvalidBody)
		}
		return shape.Segment{A: yb.From.vec2(), B: yb.To.vec2()}, nil

	case shape.KindCircle:
		if yb.Radius < 0 {
			return nil, fmt.Errorf("%w: negative radius %v", ErrInvalidBody, yb.Radius)
		}
		return shape.Circle{Center: yb.Center.vec2(), Radius: yb.Radius}, nil

	case shape.KindBox:
		if yb.Width < 0 || yb.Height < 0 {
			return nil, fmt.Errorf("%w: negative size %vx%v", ErrInvalidBody, yb.Width, yb.Height)
		}
		return shape.Box{
			Rect:     geom.Rectangle{X: yb.X, Y: yb.Y, Width: yb.Width, Height: yb.Height},
			Rotation: yb.Rotation,
		}, nil
	}

	return nil, fmt.Errorf("%w: unsupported kind %s", ErrInvalidBody, kind)
}
