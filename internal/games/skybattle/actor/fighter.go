package actor

// fighter is a destructible entity with integer health.
// Health never goes below zero and reaches zero exactly when destroyed.
type fighter struct {
	body
	health int
}

// Health returns the remaining health.
func (f *fighter) Health() int {
	return f.health
}

// TakeDamage removes one point of health, destroying the fighter at zero.
// Damage to an already destroyed fighter is ignored.
func (f *fighter) TakeDamage() {
	if f.destroyed {
		return
	}
	f.health--
	if f.health <= 0 {
		f.health = 0
		f.Destroy()
	}
}

// Destroy marks the fighter destroyed and drops its health to zero.
func (f *fighter) Destroy() {
	f.health = 0
	f.body.Destroy()
}
