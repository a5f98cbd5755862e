package actor

import "github.com/vovakirdan/skybattle/internal/config"

// Player is the user-controlled craft.
//
// Movement is driven by two multipliers in {-1, 0, 1}. A step that would
// leave the play-field rectangle is rolled back, restoring the previous
// translation exactly.
type Player struct {
	fighter
	cfg        config.PlayerConfig
	projectile config.ProjectileConfig
	vertical   int
	horizontal int
	kills      int
}

// NewPlayer creates a player craft at its start position.
func NewPlayer(health int, cfg config.PlayerConfig, projectile config.ProjectileConfig) *Player {
	return &Player{
		fighter: fighter{
			body:   newBody(KindPlayer, cfg.StartX, cfg.StartY, cfg.Sprite),
			health: health,
		},
		cfg:        cfg,
		projectile: projectile,
	}
}

func (p *Player) MoveUp()         { p.vertical = -1 }
func (p *Player) MoveDown()       { p.vertical = 1 }
func (p *Player) MoveLeft()       { p.horizontal = -1 }
func (p *Player) MoveRight()      { p.horizontal = 1 }
func (p *Player) StopVertical()   { p.vertical = 0 }
func (p *Player) StopHorizontal() { p.horizontal = 0 }

// VerticalMultiplier returns -1 (up), 0 or 1 (down).
func (p *Player) VerticalMultiplier() int { return p.vertical }

// HorizontalMultiplier returns -1 (left), 0 or 1 (right).
func (p *Player) HorizontalMultiplier() int { return p.horizontal }

// UpdatePosition moves the craft one tick along each active axis.
func (p *Player) UpdatePosition() {
	if p.vertical != 0 {
		prev := p.translateY
		p.moveVertically(p.cfg.Velocity * float64(p.vertical))
		if y := p.Y(); y < p.cfg.MinY || y > p.cfg.MaxY {
			p.translateY = prev
		}
	}
	if p.horizontal != 0 {
		prev := p.translateX
		p.moveHorizontally(p.cfg.Velocity * float64(p.horizontal))
		if x := p.X(); x < p.cfg.MinX || x > p.cfg.MaxX {
			p.translateX = prev
		}
	}
}

func (p *Player) UpdateActor() {
	p.UpdatePosition()
}

// FireProjectile always fires, from the craft's nose.
func (p *Player) FireProjectile() *Projectile {
	return NewProjectile(
		KindUserProjectile,
		p.X()+p.cfg.ProjectileOffsetX,
		p.Y()+p.cfg.ProjectileOffsetY,
		p.projectile,
	)
}

// Kills returns the number of enemies credited to the player.
func (p *Player) Kills() int {
	return p.kills
}

// AddKills credits n kills.
func (p *Player) AddKills(n int) {
	if n > 0 {
		p.kills += n
	}
}
