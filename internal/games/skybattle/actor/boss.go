package actor

import "github.com/vovakirdan/skybattle/internal/config"

// Boss is the flagship of the boss level.
//
// It drifts vertically following a shuffled pattern of moves and may raise
// a shield that blocks all damage for a bounded number of frames.
type Boss struct {
	fighter
	cfg        config.BossConfig
	projectile config.ProjectileConfig
	rng        Rand

	pattern        []float64
	moveIndex      int
	sameMove       int
	shielded       bool
	framesShielded int
}

// NewBoss creates a boss with the given health at its start position.
func NewBoss(health int, cfg config.BossConfig, projectile config.ProjectileConfig, rng Rand) *Boss {
	b := &Boss{
		fighter: fighter{
			body:   newBody(KindBoss, cfg.StartX, cfg.StartY, cfg.Sprite),
			health: health,
		},
		cfg:        cfg,
		projectile: projectile,
		rng:        rng,
	}
	b.pattern = make([]float64, 0, 3*cfg.MovesPerCycle)
	for i := 0; i < cfg.MovesPerCycle; i++ {
		b.pattern = append(b.pattern, cfg.VerticalVelocity, -cfg.VerticalVelocity, 0)
	}
	b.shuffle()
	return b
}

func (b *Boss) shuffle() {
	b.rng.Shuffle(len(b.pattern), func(i, j int) {
		b.pattern[i], b.pattern[j] = b.pattern[j], b.pattern[i]
	})
}

// NextMove returns the current pattern slot. After MaxSameMove uses the
// pattern is reshuffled and the index advances, wrapping at the end.
func (b *Boss) NextMove() float64 {
	move := b.pattern[b.moveIndex]
	b.sameMove++
	if b.sameMove == b.cfg.MaxSameMove {
		b.shuffle()
		b.sameMove = 0
		b.moveIndex++
	}
	if b.moveIndex == len(b.pattern) {
		b.moveIndex = 0
	}
	return move
}

// UpdatePosition applies the next move, rolling back when it would leave
// the vertical band.
func (b *Boss) UpdatePosition() {
	prev := b.translateY
	b.moveVertically(b.NextMove())
	if y := b.Y(); y < b.cfg.MinY || y > b.cfg.MaxY {
		b.translateY = prev
	}
}

// UpdateActor moves the boss, then advances the shield state machine.
func (b *Boss) UpdateActor() {
	b.UpdatePosition()
	b.updateShield()
}

func (b *Boss) updateShield() {
	if b.shielded {
		b.framesShielded++
	} else if roll(b.rng, b.cfg.ShieldProbability) {
		b.shielded = true
	}
	if b.framesShielded == b.cfg.MaxShieldFrames {
		b.shielded = false
		b.framesShielded = 0
	}
}

// TakeDamage is ignored while the shield is up.
func (b *Boss) TakeDamage() {
	if b.shielded {
		return
	}
	b.fighter.TakeDamage()
}

// FireProjectile rolls the fire rate. Fireballs launch from a fixed column.
func (b *Boss) FireProjectile() *Projectile {
	if !roll(b.rng, b.cfg.FireRate) {
		return nil
	}
	return NewProjectile(
		KindBossProjectile,
		b.projectile.SpawnX,
		b.Y()+b.cfg.ProjectileOffsetY,
		b.projectile,
	)
}

// Shielded reports whether the shield is up.
func (b *Boss) Shielded() bool {
	return b.shielded
}

// ShieldFrames returns how many frames the current shield has been up.
func (b *Boss) ShieldFrames() int {
	return b.framesShielded
}

// Pattern returns a copy of the current move pattern.
func (b *Boss) Pattern() []float64 {
	return append([]float64(nil), b.pattern...)
}

// MoveIndex returns the pattern slot the next move will read.
func (b *Boss) MoveIndex() int {
	return b.moveIndex
}
