package ocol2d

import (
	"sort"
	"sync"

	"github.com/akmonengine/ocol2d/geom"
	"github.com/akmonengine/ocol2d/shape"
)

const DEFAULT_WORKERS = 1

// Body is a shape tracked by a World
type Body struct {
	ID    string
	Shape shape.Shape
	// Disabled bodies are skipped by detection and queries
	Disabled bool
}

// Pair represents two bodies whose shapes collide
type Pair struct {
	BodyA *Body
	BodyB *Body

	indexA, indexB int
}

type World struct {
	// List of all bodies in the world
	Bodies  []*Body
	Workers int

	Events Events
}

// NewWorld creates an empty world with its event manager ready
func NewWorld(workers int) *World {
	return &World{
		Workers: workers,
		Events:  NewEvents(),
	}
}

// AddBody adds a body to the world
func (w *World) AddBody(body *Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world, and forgets its active pairs
func (w *World) RemoveBody(body *Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	for pair := range w.Events.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(w.Events.previousActivePairs, pair)
		}
	}
}

// Step detects the colliding pairs of the current frame, then emits the
// Enter/Stay/Exit events against the previous frame.
// It returns the colliding pairs, ordered by body index.
func (w *World) Step() []Pair {
	pairs := w.Detect()

	w.Events.recordCollisions(pairs)
	w.Events.flush()

	return pairs
}

// Detect returns every pair of enabled bodies whose shapes collide, ordered by body index.
//
// Candidate pairs are enumerated exhaustively and filtered on their bounds, then
// the exact predicates run over w.Workers goroutines.
func (w *World) Detect() []Pair {
	workers := max(DEFAULT_WORKERS, w.Workers)

	bounds := make([]geom.Rectangle, len(w.Bodies))
	task(workers, w.Bodies, func(i int, body *Body) {
		bounds[i] = body.Shape.Bounds()
	})

	pairs := NarrowPhase(w.candidatePairs(bounds, workers), workers)
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].indexA != pairs[j].indexA {
			return pairs[i].indexA < pairs[j].indexA
		}
		return pairs[i].indexB < pairs[j].indexB
	})

	return pairs
}

// candidatePairs streams the pairs of enabled bodies whose bounds overlap.
// Each unordered pair is sent once, with indexA < indexB.
func (w *World) candidatePairs(bounds []geom.Rectangle, workers int) <-chan Pair {
	pairsChan := make(chan Pair, workers*10)

	go func() {
		defer close(pairsChan)

		task(workers, w.Bodies, func(i int, bodyA *Body) {
			if bodyA.Disabled {
				return
			}
			for j := i + 1; j < len(w.Bodies); j++ {
				bodyB := w.Bodies[j]
				if bodyB.Disabled || !bounds[i].Overlaps(bounds[j]) {
					continue
				}
				pairsChan <- Pair{BodyA: bodyA, BodyB: bodyB, indexA: i, indexB: j}
			}
		})
	}()

	return pairsChan
}

// NarrowPhase runs the exact predicate on every candidate pair and collects the colliding ones
func NarrowPhase(pairs <-chan Pair, workersCount int) []Pair {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	collisionChan := make(chan Pair, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(collisionChan)

		for i := 0; i < workersCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for p := range pairs {
					if Collide(p.BodyA.Shape, p.BodyB.Shape) {
						collisionChan <- p
					}
				}
			}()
		}
		wg.Wait()
	}()

	collisions := make([]Pair, 0)
	for p := range collisionChan {
		collisions = append(collisions, p)
	}
	return collisions
}

// Query returns the enabled bodies whose shapes collide with probe, in world order
func (w *World) Query(probe shape.Shape) []*Body {
	probeBounds := probe.Bounds()

	var result []*Body
	for _, body := range w.Bodies {
		if body.Disabled || !probeBounds.Overlaps(body.Shape.Bounds()) {
			continue
		}
		if Collide(probe, body.Shape) {
			result = append(result, body)
		}
	}
	return result
}
