package actor

import "github.com/vovakirdan/skybattle/internal/config"

// Projectile flies in a straight horizontal line and dies on any damage.
type Projectile struct {
	body
	velocity float64
}

// NewProjectile creates a projectile of the given kind at (x, y).
func NewProjectile(kind Kind, x, y float64, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		body:     newBody(kind, x, y, cfg.Sprite),
		velocity: cfg.Velocity,
	}
}

// Velocity returns the horizontal displacement per tick.
func (p *Projectile) Velocity() float64 {
	return p.velocity
}

// UpdatePosition advances the projectile by one tick.
func (p *Projectile) UpdatePosition() {
	p.moveHorizontally(p.velocity)
}

func (p *Projectile) UpdateActor() {
	p.UpdatePosition()
}

// TakeDamage destroys the projectile.
func (p *Projectile) TakeDamage() {
	p.Destroy()
}
