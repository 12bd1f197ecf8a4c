package ocol2d

import (
	"unsafe"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

type pairKey struct {
	bodyA *Body
	bodyB *Body
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB *Body) pairKey {
	ptrA := uintptr(unsafe.Pointer(bodyA))
	ptrB := uintptr(unsafe.Pointer(bodyB))

	if ptrB < ptrA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "enter"
	case COLLISION_STAY:
		return "stay"
	case COLLISION_EXIT:
		return "exit"
	}
	return "unknown"
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
	Bodies() (*Body, *Body)
}

// CollisionEnterEvent is emitted on the first frame a pair collides
type CollisionEnterEvent struct {
	BodyA *Body
	BodyB *Body
}

func (e CollisionEnterEvent) Type() EventType        { return COLLISION_ENTER }
func (e CollisionEnterEvent) Bodies() (*Body, *Body) { return e.BodyA, e.BodyB }

// CollisionStayEvent is emitted on every following frame the pair still collides
type CollisionStayEvent struct {
	BodyA *Body
	BodyB *Body
}

func (e CollisionStayEvent) Type() EventType        { return COLLISION_STAY }
func (e CollisionStayEvent) Bodies() (*Body, *Body) { return e.BodyA, e.BodyB }

// CollisionExitEvent is emitted on the first frame a pair stops colliding
type CollisionExitEvent struct {
	BodyA *Body
	BodyB *Body
}

func (e CollisionExitEvent) Type() EventType        { return COLLISION_EXIT }
func (e CollisionExitEvent) Bodies() (*Body, *Body) { return e.BodyA, e.BodyB }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		*e = NewEvents()
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollisions marks the pairs colliding during the current frame
func (e *Events) recordCollisions(pairs []Pair) {
	if e.currentActivePairs == nil {
		*e = NewEvents()
	}

	for _, p := range pairs {
		e.currentActivePairs[makePairKey(p.BodyA, p.BodyB)] = true
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processCollisionEvents() {
	// Detect Enter and Stay events
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			// Pair was active before and still is, Stay
			e.buffer = append(e.buffer, CollisionStayEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		} else {
			// New pair, Enter
			e.buffer = append(e.buffer, CollisionEnterEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Detect Exit events
	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	if e.listeners == nil {
		*e = NewEvents()
	}
	e.processCollisionEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
