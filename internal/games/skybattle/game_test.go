package skybattle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/campaign"
	"github.com/vovakirdan/skybattle/internal/registry"
)

// newTestGame resets a game with package settings cleared and no config
// files on the search path.
func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	SetStartLevel("")
	t.Cleanup(func() { SetStartLevel("") })

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 42})
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"skybattle", "skybattle_boss"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestGameStartLevels(t *testing.T) {
	tests := []struct {
		name     string
		game     *Game
		expected string
	}{
		{"campaign", New(), "level-one"},
		{"boss rush", NewBossRush(), "level-two"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, tc.game)
			snap := g.Snapshot()
			if snap.Level != tc.expected {
				t.Errorf("opening level = %q, expected %q", snap.Level, tc.expected)
			}
			if snap.State != StatePlaying || snap.Health != 5 {
				t.Errorf("snapshot = %+v", snap)
			}
		})
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, New())

	g.Step(frame(core.ActionPause))
	if !g.State().Paused || g.Snapshot().Tick != 0 {
		t.Fatal("pause should stop the simulation")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %q, expected paused", g.Snapshot().State)
	}

	g.Step(frame(core.ActionFire))
	if g.Snapshot().Tick != 0 {
		t.Error("paused game should not tick")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused || g.Snapshot().Tick != 1 {
		t.Error("unpausing should resume on the same frame")
	}
}

func TestGameMovesPlayer(t *testing.T) {
	g := newTestGame(t, New())
	_, y0 := g.Campaign().Engine().Player().Position()

	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionFire))

	snap := g.Snapshot()
	if snap.PlayerY <= y0 {
		t.Errorf("player should have moved down from %v, at %v", y0, snap.PlayerY)
	}
	if snap.UserProjectiles != 1 {
		t.Errorf("UserProjectiles = %d, expected 1 after firing", snap.UserProjectiles)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, New())
		return Fly(g, NewAutopilot(3, 25), 600)
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("same seed and input should give the same run:\n%+v\n%+v", a, b)
	}
	if a.Tick == 0 {
		t.Error("autopilot run should have ticked")
	}
}

func TestGameOpeningFailure(t *testing.T) {
	g := New()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetStartLevel("no-such-level")
	t.Cleanup(func() { SetStartLevel("") })
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.Campaign().Phase() != campaign.PhaseFailed || g.Alerted() == nil {
		t.Fatalf("phase = %v alert = %v", g.Campaign().Phase(), g.Alerted())
	}
	if !g.State().GameOver {
		t.Error("a failed campaign is over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "LEVEL FAILED TO LOAD") {
		t.Error("failure banner should be drawn")
	}

	// Restart is driven by the platform through Reset, not by Step
	g.Step(frame(core.ActionRestart))
	if g.Campaign().Phase() != campaign.PhaseFailed {
		t.Errorf("Step should not restart, phase = %v", g.Campaign().Phase())
	}

	SetStartLevel("")
	g.Reset(core.RuntimeConfig{Seed: 2})
	if g.Campaign().Phase() != campaign.PhasePlaying || g.Alerted() != nil {
		t.Errorf("reset should start a fresh campaign, phase = %v", g.Campaign().Phase())
	}
}

func TestGameRejectsCustomConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown variant", "levels:\n  - id: level-one\n    name: Broken\n    variant: nope\n    player_health: 5\n"},
		{"bad yaml", "levels: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "skybattle.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			g := newTestGame(t, New())
			SetConfigPath(path)
			t.Cleanup(func() { SetConfigPath("") })
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

			if g.Alerted() == nil {
				t.Fatal("a broken custom config should be alerted")
			}
			if g.Campaign().Phase() != campaign.PhaseFailed || !g.State().GameOver {
				t.Errorf("phase = %v, expected failed", g.Campaign().Phase())
			}
			if g.Campaign().Engine() != nil {
				t.Error("no level should be flying")
			}

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.String(), "LEVEL FAILED TO LOAD") {
				t.Error("failure banner should be drawn")
			}
		})
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"♥♥♥♥♥", "Kills 0/8", "Coastal Patrol"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD row %q should contain %q", hud, want)
		}
	}

	found := false
	for y := 2; y < screen.Height()-1 && !found; y++ {
		for x := 1; x < screen.Width()-1; x++ {
			if c := screen.GetCell(x, y); c.Rune == '█' && c.Color == core.ColorBrightCyan {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("player sprite should be drawn in the field")
	}
}

func TestGameRenderBoss(t *testing.T) {
	g := newTestGame(t, NewBossRush())
	g.Step(frame())

	screen := core.NewScreen(100, 30)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Boss 15/15") {
		t.Errorf("HUD should show boss health, got %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), '▬') {
		t.Error("boss health bar should follow the boss")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("small terminals should get a notice")
	}
}
