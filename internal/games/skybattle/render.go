package skybattle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/actor"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/campaign"
)

const (
	minScreenW = 40
	minScreenH = 12
)

type spriteStyle struct {
	fill  rune
	color core.Color
}

var spriteStyles = map[actor.Kind]spriteStyle{
	actor.KindPlayer:          {'█', core.ColorBrightCyan},
	actor.KindEnemy:           {'▓', core.ColorRed},
	actor.KindInterceptor:     {'▓', core.ColorMagenta},
	actor.KindBoss:            {'█', core.ColorBrightRed},
	actor.KindUserProjectile:  {'─', core.ColorBrightYellow},
	actor.KindEnemyProjectile: {'•', core.ColorOrange},
	actor.KindBossProjectile:  {'●', core.ColorBrightMagenta},
}

var shieldStyle = spriteStyle{'▒', core.ColorBrightBlue}

// Render draws the world scaled from play-field units to the screen, the
// HUD line above it and any banner for the current phase.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}
	if g.campaign == nil {
		return
	}

	dst.DrawBox(core.NewRect(0, 1, w, h-1), core.ColorGray)
	inner := core.NewRect(1, 2, w-2, h-3)

	g.drawWorld(dst, inner)
	g.drawHUD(dst)
	g.drawBanner(dst, inner)
}

func (g *Game) drawWorld(dst *core.Screen, area core.Rect) {
	sx := float64(area.W) / g.cfg.Field.Width
	sy := float64(area.H) / g.cfg.Field.Height

	for _, e := range g.scene.Entities() {
		if e.Destroyed() {
			continue
		}
		r := e.Bounds().Scale(sx, sy)
		r.X += area.X
		r.Y += area.Y

		style := spriteStyles[e.Kind()]
		boss, isBoss := e.(*actor.Boss)
		if isBoss && boss.Shielded() {
			style = shieldStyle
		}
		dst.FillRect(clip(r, area), style.fill, style.color)

		if isBoss {
			g.drawBossBar(dst, r, area)
		}
	}
}

// drawBossBar puts the boss health bar right above the boss, or below it
// when the boss hugs the top edge.
func (g *Game) drawBossBar(dst *core.Screen, boss, area core.Rect) {
	cur, maxHealth, visible := g.hud.BossHealth()
	if !visible || maxHealth <= 0 {
		return
	}
	y := boss.Y - 1
	if y < area.Y {
		y = boss.Bottom()
	}
	if y >= area.Bottom() {
		return
	}

	filled := boss.W * cur / maxHealth
	for i := 0; i < boss.W; i++ {
		x := boss.X + i
		if x < area.X || x >= area.Right() {
			continue
		}
		if i < filled {
			dst.SetColored(x, y, '▬', core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, '▭', core.ColorGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put(g.hud.Hearts(), core.ColorRed)
	if target := g.hud.KillTarget(); target > 0 {
		put(fmt.Sprintf("Kills %d/%d", g.hud.Kills(), target), core.ColorWhite)
	}
	if cur, maxHealth, visible := g.hud.BossHealth(); visible {
		put(fmt.Sprintf("Boss %d/%d", cur, maxHealth), core.ColorBrightRed)
	}
	if g.hud.Shield() {
		put("SHIELD", core.ColorBrightBlue)
	}
	if g.hud.PowerUpActive() {
		put("★ POWER UP", core.ColorBrightYellow)
	}

	if e := g.campaign.Engine(); e != nil {
		name := e.Definition().Name
		dst.DrawTextColored(dst.Width()-len([]rune(name))-1, 0, name, core.ColorGray)
	}
}

func (g *Game) drawBanner(dst *core.Screen, area core.Rect) {
	var lines []string
	color := core.ColorWhite

	switch g.campaign.Phase() {
	case campaign.PhaseTransition:
		lines = []string{"LEVEL CLEAR", "Next: " + g.levelName(g.campaign.Next())}
		color = core.ColorBrightGreen
	case campaign.PhaseWon:
		lines = []string{"VICTORY!", fmt.Sprintf("Enemies downed: %d", g.campaign.TotalKills()), "Press R to play again"}
		color = core.ColorBrightGreen
	case campaign.PhaseLost:
		lines = []string{"GAME OVER", fmt.Sprintf("Enemies downed: %d", g.campaign.TotalKills()), "Press R to restart"}
		color = core.ColorRed
	case campaign.PhaseFailed:
		msg := "unknown error"
		if g.alert != nil {
			msg = g.alert.Error()
		}
		lines = []string{"LEVEL FAILED TO LOAD", truncate(msg, area.W-6), "Press R to retry"}
		color = core.ColorRed
	default:
		if g.paused {
			lines = []string{"PAUSED", "Press P to resume"}
			color = core.ColorYellow
		}
	}
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(
		area.X+(area.W-width-4)/2,
		area.Y+(area.H-len(lines)-2)/2,
		width+4,
		len(lines)+2,
	)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		c := color
		if i > 0 {
			c = core.ColorWhite
		}
		dst.DrawTextColored(box.X+2+(width-len([]rune(l)))/2, box.Y+1+i, l, c)
	}
}

func (g *Game) levelName(id string) string {
	if l, ok := g.cfg.Level(id); ok && l.Name != "" {
		return l.Name
	}
	return id
}

func clip(r, area core.Rect) core.Rect {
	x0, y0 := max(r.X, area.X), max(r.Y, area.Y)
	x1, y1 := min(r.Right(), area.Right()), min(r.Bottom(), area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-3])) + "..."
}
