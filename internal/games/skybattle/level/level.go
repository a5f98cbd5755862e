// Package level runs one Sky Battle level: it owns the actor collections,
// advances the world once per tick, resolves collisions and decides when
// the level is won, lost or hands over to the next one.
//
// The engine is single-threaded. An external scheduler calls Step at a
// fixed interval and applies player commands between ticks. Rendering and
// HUD updates leave the package through the Scene and View collaborators.
package level

import "github.com/vovakirdan/skybattle/internal/games/skybattle/actor"

// Scene receives entities as they enter and leave the world.
// Removing an entity that was never added must be a no-op.
type Scene interface {
	Add(e actor.Entity)
	Remove(e actor.Entity)
}

// View is the level's heads-up display.
type View interface {
	UpdateHealth(n int)
	ShowKillTarget(target int)
	UpdateKillCount(n int)
	ShowBossHealth(max int)
	UpdateBossHealth(n int)
	HideBossHealth()
	ShowShield()
	HideShield()
	ShowPowerUp()
	ShowWin()
	ShowGameOver()
}

// Commander is the set of discrete player commands. Each command is an
// idempotent state change applied between ticks.
type Commander interface {
	MoveUp()
	MoveDown()
	MoveLeft()
	MoveRight()
	StopVertical()
	StopHorizontal()
	Fire()
}

// NopScene discards scene changes.
type NopScene struct{}

func (NopScene) Add(actor.Entity)    {}
func (NopScene) Remove(actor.Entity) {}

// NopView discards HUD updates.
type NopView struct{}

func (NopView) UpdateHealth(int)     {}
func (NopView) ShowKillTarget(int)   {}
func (NopView) UpdateKillCount(int)  {}
func (NopView) ShowBossHealth(int)   {}
func (NopView) UpdateBossHealth(int) {}
func (NopView) HideBossHealth()      {}
func (NopView) ShowShield()          {}
func (NopView) HideShield()          {}
func (NopView) ShowPowerUp()         {}
func (NopView) ShowWin()             {}
func (NopView) ShowGameOver()        {}
