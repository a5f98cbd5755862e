package level

// Variant is the level-specific policy plugged into the engine.
// The set of variants is closed; the catalog maps config names to them.
type Variant interface {
	// BuildView prepares the HUD when the level is constructed.
	BuildView(e *Engine, v View)
	// SpawnTick adds enemies at the start of a tick.
	SpawnTick(e *Engine)
	// RefreshView pushes per-tick HUD state after cleanup.
	RefreshView(e *Engine, v View)
	// CheckTermination decides the tick's outcome.
	CheckTermination(e *Engine) Outcome
}

// finish maps a completed level to its outcome.
func finish(next string) Outcome {
	if next == "" {
		return Win()
	}
	return Advance(next)
}
