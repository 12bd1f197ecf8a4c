package ocol2d

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/akmonengine/ocol2d/geom"
	"github.com/akmonengine/ocol2d/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Test helper functions
func createCircle(id string, center mgl64.Vec2, radius float64) *Body {
	return &Body{ID: id, Shape: shape.Circle{Center: center, Radius: radius}}
}

func createBox(id string, rect geom.Rectangle, rotation float64) *Body {
	return &Body{ID: id, Shape: shape.Box{Rect: rect, Rotation: rotation}}
}

func pairIDs(pairs []Pair) []string {
	ids := make([]string, len(pairs))
	for i, p := range pairs {
		ids[i] = p.BodyA.ID + "-" + p.BodyB.ID
	}
	return ids
}

func TestTask(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8, 100} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			data := make([]int, 25)
			var calls atomic.Int32

			task(workers, data, func(i int, _ int) {
				data[i] = i * 2
				calls.Add(1)
			})

			if calls.Load() != 25 {
				t.Errorf("Expected 25 calls, got %d", calls.Load())
			}
			for i, v := range data {
				if v != i*2 {
					t.Errorf("data[%d] = %d, want %d", i, v, i*2)
				}
			}
		})
	}

	t.Run("empty data", func(t *testing.T) {
		task(4, []int{}, func(int, int) { t.Error("fn should not be called") })
	})
}

func TestWorld_AddRemoveBody(t *testing.T) {
	world := NewWorld(1)
	a := createCircle("a", mgl64.Vec2{0, 0}, 1)
	b := createCircle("b", mgl64.Vec2{1, 0}, 1)

	world.AddBody(a)
	world.AddBody(b)
	if len(world.Bodies) != 2 {
		t.Fatalf("Expected 2 bodies, got %d", len(world.Bodies))
	}

	world.Step()
	if len(world.Events.previousActivePairs) != 1 {
		t.Fatalf("Expected 1 active pair, got %d", len(world.Events.previousActivePairs))
	}

	world.RemoveBody(a)
	if len(world.Bodies) != 1 || world.Bodies[0] != b {
		t.Errorf("Expected only b to remain, got %v", world.Bodies)
	}
	if len(world.Events.previousActivePairs) != 0 {
		t.Errorf("Expected active pairs of a to be forgotten, got %d", len(world.Events.previousActivePairs))
	}

	// Removing an unknown body is a no-op
	world.RemoveBody(a)
	if len(world.Bodies) != 1 {
		t.Errorf("Expected 1 body, got %d", len(world.Bodies))
	}
}

func TestWorld_Detect(t *testing.T) {
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			world := NewWorld(workers)
			world.AddBody(createBox("wall", geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, 45))
			world.AddBody(createCircle("ball", mgl64.Vec2{0, 7}, 1))
			world.AddBody(createCircle("far", mgl64.Vec2{100, 100}, 1))
			world.AddBody(createBox("crate", geom.Rectangle{X: 5, Y: 5, Width: 10, Height: 10}, 0))
			world.AddBody(&Body{ID: "ray", Shape: shape.Segment{A: mgl64.Vec2{-20, 7}, B: mgl64.Vec2{20, 7}}})

			got := pairIDs(world.Detect())
			expected := []string{"wall-ball", "wall-crate", "wall-ray", "ball-ray", "crate-ray"}

			if len(got) != len(expected) {
				t.Fatalf("Expected pairs %v, got %v", expected, got)
			}
			for i := range expected {
				if got[i] != expected[i] {
					t.Errorf("pair %d: expected %s, got %s", i, expected[i], got[i])
				}
			}
		})
	}
}

func TestWorld_DetectSkipsDisabled(t *testing.T) {
	world := NewWorld(2)
	a := createCircle("a", mgl64.Vec2{0, 0}, 1)
	b := createCircle("b", mgl64.Vec2{1, 0}, 1)
	b.Disabled = true
	world.AddBody(a)
	world.AddBody(b)

	if pairs := world.Detect(); len(pairs) != 0 {
		t.Errorf("Expected no pairs, got %v", pairIDs(pairs))
	}
}

func TestWorld_DetectManyBodies(t *testing.T) {
	world := NewWorld(8)
	// A row of unit circles 1.5 apart: each one only touches its neighbours
	for i := 0; i < 200; i++ {
		world.AddBody(createCircle(fmt.Sprint(i), mgl64.Vec2{float64(i) * 1.5, 0}, 1))
	}

	pairs := world.Detect()
	if len(pairs) != 199 {
		t.Fatalf("Expected 199 pairs, got %d", len(pairs))
	}
	for i, p := range pairs {
		if p.indexA != i || p.indexB != i+1 {
			t.Errorf("pair %d: expected (%d, %d), got (%d, %d)", i, i, i+1, p.indexA, p.indexB)
		}
	}
}

func TestWorld_StepEmitsEvents(t *testing.T) {
	world := NewWorld(2)
	capture := captureAll(&world.Events)

	mover := createCircle("mover", mgl64.Vec2{-5, 5}, 1)
	world.AddBody(createBox("box", geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, 0))
	world.AddBody(mover)

	expected := []EventType{255, COLLISION_ENTER, COLLISION_STAY, COLLISION_EXIT}
	positions := []float64{-5, 0, 5, 20}

	for frame, x := range positions {
		mover.Shape = shape.Circle{Center: mgl64.Vec2{x, 5}, Radius: 1}
		world.Step()

		if expected[frame] == 255 {
			if capture.count() != 0 {
				t.Errorf("frame %d: expected no event, got %v", frame, capture.events)
			}
		} else if capture.count() != 1 || !capture.hasEventType(expected[frame]) {
			t.Errorf("frame %d: expected %v, got %v", frame, expected[frame], capture.events)
		}
		capture.reset()
	}
}

func TestWorld_Query(t *testing.T) {
	world := NewWorld(1)
	world.AddBody(createBox("wall", geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, 45))
	world.AddBody(createCircle("ball", mgl64.Vec2{3, 7}, 1))
	disabled := createCircle("ghost", mgl64.Vec2{1, 7}, 3)
	disabled.Disabled = true
	world.AddBody(disabled)

	got := world.Query(shape.Point{Position: mgl64.Vec2{2.5, 7}})
	if len(got) != 2 || got[0].ID != "wall" || got[1].ID != "ball" {
		t.Errorf("Expected [wall ball], got %v", got)
	}

	if got := world.Query(shape.Point{Position: mgl64.Vec2{50, 50}}); len(got) != 0 {
		t.Errorf("Expected no body, got %v", got)
	}
}

func BenchmarkWorld_Detect(b *testing.B) {
	world := NewWorld(4)
	for i := 0; i < 500; i++ {
		x := float64(i%25) * 3
		y := float64(i/25) * 3
		if i%2 == 0 {
			world.AddBody(createCircle(fmt.Sprint(i), mgl64.Vec2{x, y}, 1.6))
		} else {
			world.AddBody(createBox(fmt.Sprint(i), geom.Rectangle{X: x, Y: y, Width: 2, Height: 1}, float64(i)))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Detect()
	}
}
