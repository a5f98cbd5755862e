package skybattle

import (
	"strings"

	"github.com/vovakirdan/skybattle/internal/config"
)

// HUD records what the level asked to display. Render reads it each frame.
type HUD struct {
	presentation config.PresentationConfig

	health     int
	killTarget int // 0 when the level has no kill target
	kills      int

	bossVisible bool
	bossMax     int
	bossHealth  int
	shield      bool

	powerUp  int // ticks the power-up marker stays up
	powerUps int

	won      bool
	gameOver bool
}

// NewHUD creates an empty display.
func NewHUD(p config.PresentationConfig) *HUD {
	return &HUD{presentation: p}
}

func (h *HUD) UpdateHealth(n int) {
	h.health = max(n, 0)
}

func (h *HUD) ShowKillTarget(target int) {
	h.killTarget = target
}

func (h *HUD) UpdateKillCount(n int) {
	h.kills = n
}

func (h *HUD) ShowBossHealth(maxHealth int) {
	h.bossVisible = true
	h.bossMax = maxHealth
	h.bossHealth = maxHealth
}

func (h *HUD) UpdateBossHealth(n int) {
	h.bossHealth = max(n, 0)
}

func (h *HUD) HideBossHealth() {
	h.bossVisible = false
}

func (h *HUD) ShowShield() { h.shield = true }
func (h *HUD) HideShield() { h.shield = false }

// ShowPowerUp raises the power-up marker for the configured duration.
func (h *HUD) ShowPowerUp() {
	h.powerUp = h.presentation.PowerUpTicks
	h.powerUps++
}

func (h *HUD) ShowWin()      { h.won = true }
func (h *HUD) ShowGameOver() { h.gameOver = true }

// Tick advances display timers by one frame.
func (h *HUD) Tick() {
	if h.powerUp > 0 {
		h.powerUp--
	}
}

// Health returns the displayed number of hearts.
func (h *HUD) Health() int { return h.health }

// Hearts renders the health display.
func (h *HUD) Hearts() string {
	return strings.Repeat("♥", h.health)
}

// Kills returns the displayed kill count.
func (h *HUD) Kills() int { return h.kills }

// KillTarget returns the displayed kill target, 0 if there is none.
func (h *HUD) KillTarget() int { return h.killTarget }

// BossHealth reports the boss health bar state.
func (h *HUD) BossHealth() (current, maxHealth int, visible bool) {
	return h.bossHealth, h.bossMax, h.bossVisible
}

// Shield reports whether the shield indicator is shown.
func (h *HUD) Shield() bool { return h.shield }

// PowerUpActive reports whether the power-up marker is shown.
func (h *HUD) PowerUpActive() bool { return h.powerUp > 0 }

// PowerUps returns how many power-up markers were raised.
func (h *HUD) PowerUps() int { return h.powerUps }

// Won reports whether the win banner was requested.
func (h *HUD) Won() bool { return h.won }

// GameOver reports whether the game-over banner was requested.
func (h *HUD) GameOver() bool { return h.gameOver }
