// Package actor holds the entities of a Sky Battle level: the player craft,
// enemy craft, the boss and their projectiles.
//
// Every entity has a layout position fixed at construction and a
// translation that movement mutates, so the on-screen position is always
// layout + translation. Entities never log and never touch the world they
// live in; the level engine owns collections and the scene.
package actor

import (
	"sync/atomic"

	"github.com/vovakirdan/skybattle/internal/config"
	"github.com/vovakirdan/skybattle/internal/core"
)

// Kind classifies an entity for rendering and bookkeeping.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindInterceptor
	KindBoss
	KindUserProjectile
	KindEnemyProjectile
	KindBossProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindInterceptor:
		return "interceptor"
	case KindBoss:
		return "boss"
	case KindUserProjectile:
		return "user_projectile"
	case KindEnemyProjectile:
		return "enemy_projectile"
	case KindBossProjectile:
		return "boss_projectile"
	default:
		return "unknown"
	}
}

// Entity is anything that lives in a level world.
type Entity interface {
	ID() uint64
	Kind() Kind
	// Position is layout + translation.
	Position() (x, y float64)
	// TranslateX is the horizontal offset from the layout position.
	TranslateX() float64
	// Bounds is the bounding box at the current position.
	Bounds() core.Box
	// UpdateActor is the per-tick entry point.
	UpdateActor()
	TakeDamage()
	Destroy()
	Destroyed() bool
}

// Shooter is an entity that may emit a projectile on a given tick.
// A nil result means it held fire.
type Shooter interface {
	Entity
	FireProjectile() *Projectile
}

var lastID atomic.Uint64

func nextID() uint64 {
	return lastID.Add(1)
}

// body carries identity, position and the destroyed flag shared by every
// entity.
type body struct {
	id         uint64
	kind       Kind
	layoutX    float64
	layoutY    float64
	translateX float64
	translateY float64
	width      float64
	height     float64
	destroyed  bool
}

func newBody(kind Kind, x, y float64, sprite config.SpriteConfig) body {
	return body{
		id:      nextID(),
		kind:    kind,
		layoutX: x,
		layoutY: y,
		width:   sprite.Width,
		height:  sprite.Height,
	}
}

func (b *body) ID() uint64 { return b.id }
func (b *body) Kind() Kind { return b.kind }

// X returns the horizontal position (layout + translation).
func (b *body) X() float64 { return b.layoutX + b.translateX }

// Y returns the vertical position (layout + translation).
func (b *body) Y() float64 { return b.layoutY + b.translateY }

func (b *body) Position() (x, y float64) { return b.X(), b.Y() }

// TranslateX returns the horizontal offset accumulated since spawn.
func (b *body) TranslateX() float64 { return b.translateX }

// TranslateY returns the vertical offset accumulated since spawn.
func (b *body) TranslateY() float64 { return b.translateY }

func (b *body) Bounds() core.Box {
	return core.NewBox(b.X(), b.Y(), b.width, b.height)
}

func (b *body) moveHorizontally(dx float64) { b.translateX += dx }
func (b *body) moveVertically(dy float64)   { b.translateY += dy }

// Destroy marks the entity destroyed. It is idempotent and never reverts.
func (b *body) Destroy() { b.destroyed = true }

func (b *body) Destroyed() bool { return b.destroyed }
