package actor

import "github.com/vovakirdan/skybattle/internal/config"

// Enemy is a regular enemy craft. It flies leftwards at a constant speed
// and fires with a fixed probability each tick.
type Enemy struct {
	fighter
	cfg        config.EnemyConfig
	projectile config.ProjectileConfig
	rng        Rand
}

// NewEnemy creates an enemy craft of the given kind at (x, y).
func NewEnemy(kind Kind, x, y float64, cfg config.EnemyConfig, projectile config.ProjectileConfig, rng Rand) *Enemy {
	return &Enemy{
		fighter: fighter{
			body:   newBody(kind, x, y, cfg.Sprite),
			health: cfg.Health,
		},
		cfg:        cfg,
		projectile: projectile,
		rng:        rng,
	}
}

// UpdatePosition advances the craft by one tick.
func (e *Enemy) UpdatePosition() {
	e.moveHorizontally(e.cfg.Velocity)
}

func (e *Enemy) UpdateActor() {
	e.UpdatePosition()
}

// FireProjectile rolls the fire rate and returns a projectile on success.
func (e *Enemy) FireProjectile() *Projectile {
	if !roll(e.rng, e.cfg.FireRate) {
		return nil
	}
	return NewProjectile(
		KindEnemyProjectile,
		e.X()+e.cfg.ProjectileOffsetX,
		e.Y()+e.cfg.ProjectileOffsetY,
		e.projectile,
	)
}
