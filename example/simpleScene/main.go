package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/ocol2d"
	"github.com/akmonengine/ocol2d/geom"
	"github.com/akmonengine/ocol2d/shape"
)

// SetupScene creates a crate rotated around its pivot corner, a laser crossing it,
// and a ball that will roll from the left to the right of the crate
func SetupScene() (*ocol2d.World, *ocol2d.Body) {
	world := ocol2d.NewWorld(2)

	crate := &ocol2d.Body{
		ID: "crate",
		Shape: shape.Box{
			Rect:     geom.Rectangle{X: 0, Y: 0, Width: 4, Height: 2},
			Rotation: 30,
		},
	}
	laser := &ocol2d.Body{
		ID: "laser",
		Shape: shape.Segment{
			A: mgl64.Vec2{-10, 1},
			B: mgl64.Vec2{10, 1},
		},
	}
	ball := &ocol2d.Body{
		ID: "ball",
		Shape: shape.Circle{
			Center: mgl64.Vec2{-6, 3},
			Radius: 0.5,
		},
	}

	world.AddBody(crate)
	world.AddBody(laser)
	world.AddBody(ball)

	return world, ball
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simpleScene",
	})

	world, ball := SetupScene()

	for _, eventType := range []ocol2d.EventType{ocol2d.COLLISION_ENTER, ocol2d.COLLISION_EXIT} {
		world.Events.Subscribe(eventType, func(event ocol2d.Event) {
			bodyA, bodyB := event.Bodies()
			logger.Info("collision", "event", event.Type(), "a", bodyA.ID, "b", bodyB.ID)
		})
	}

	const maxSteps = 24
	const speed = 0.5

	for step := 0; step < maxSteps; step++ {
		circle := ball.Shape.(shape.Circle)
		circle.Center = circle.Center.Add(mgl64.Vec2{speed, 0})
		ball.Shape = circle

		pairs := world.Step()
		logger.Debug("step", "n", step+1, "ball", circle.Center, "pairs", len(pairs))
	}

	probe := shape.Point{Position: mgl64.Vec2{1, 1.5}}
	for _, body := range world.Query(probe) {
		logger.Info("query hit", "point", probe.Position, "body", body.ID)
	}
}
