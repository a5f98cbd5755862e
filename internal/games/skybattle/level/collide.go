package level

import "github.com/vovakirdan/skybattle/internal/games/skybattle/actor"

// collide damages every intersecting pair once. The outer loop runs over
// the second list. There is no early exit: an actor destroyed earlier in
// the pass still collides with the rest.
func collide[A, B actor.Entity](first []A, second []B) int {
	hits := 0
	for _, b := range second {
		for _, a := range first {
			if b.Bounds().Intersects(a.Bounds()) {
				b.TakeDamage()
				a.TakeDamage()
				hits++
			}
		}
	}
	return hits
}

// sweep drops destroyed entities from items in place, detaching them from
// the scene. It returns the survivors and how many were removed.
func sweep[T actor.Entity](items []T, scene Scene) ([]T, int) {
	kept := items[:0]
	for _, it := range items {
		if it.Destroyed() {
			scene.Remove(it)
			continue
		}
		kept = append(kept, it)
	}
	removed := len(items) - len(kept)
	clear(items[len(kept):])
	return kept, removed
}
