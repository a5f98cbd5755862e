package skybattle

import "github.com/vovakirdan/skybattle/internal/games/skybattle/actor"

// Scene is the render list of a level: every entity the engine has added
// and not yet removed, in insertion order.
type Scene struct {
	order    []uint64
	entities map[uint64]actor.Entity
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{entities: make(map[uint64]actor.Entity)}
}

// Add puts an entity on stage. Adding it twice is a no-op.
func (s *Scene) Add(e actor.Entity) {
	if _, ok := s.entities[e.ID()]; ok {
		return
	}
	s.entities[e.ID()] = e
	s.order = append(s.order, e.ID())
}

// Remove takes an entity off stage. Unknown entities are ignored.
func (s *Scene) Remove(e actor.Entity) {
	if _, ok := s.entities[e.ID()]; !ok {
		return
	}
	delete(s.entities, e.ID())
	for i, id := range s.order {
		if id == e.ID() {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entities on stage.
func (s *Scene) Len() int {
	return len(s.order)
}

// Entities returns the entities in the order they were added, so later
// entities are drawn on top.
func (s *Scene) Entities() []actor.Entity {
	out := make([]actor.Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}
