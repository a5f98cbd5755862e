package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/campaign"
	"github.com/vovakirdan/skybattle/internal/storage"
)

// stubGame ends after a fixed number of steps and records its input.
type stubGame struct {
	steps   int
	endAt   int
	resets  int
	inputs  []core.InputFrame
	score   int
	endWith campaign.Phase
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) over() bool               { return g.steps >= g.endAt }
func (g *stubGame) State() core.GameState    { return core.GameState{Score: g.score, GameOver: g.over()} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Report() campaign.Report {
	return campaign.Report{
		Phase:         g.endWith,
		StartLevel:    "level-one",
		LevelsCleared: 1,
		TotalKills:    g.score,
		Ticks:         uint64(g.steps),
		Levels: []campaign.LevelSummary{
			{ID: "level-one", Name: "Coastal Patrol", Outcome: "advance", Ticks: 3, Kills: g.score},
		},
	}
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelForwardsInput(t *testing.T) {
	g := &stubGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 20, Seed: 1})
	m.Init()

	m = step(t, m, runeKey('w'))
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionUp) || !g.inputs[0].Has(core.ActionFire) {
		t.Error("first tick should carry the buffered keys")
	}
	if !g.inputs[1].Empty() {
		t.Error("input should be cleared after each tick")
	}
}

func TestGameModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &stubGame{endAt: 2, score: 7, endWith: campaign.PhaseLost}
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	m.Init()

	for i := 0; i < 5; i++ {
		m = step(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("stub game should be over")
	}

	scores, _ := store.TopScores("stub", 10)
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Errorf("expected exactly one score of 7, got %+v", scores)
	}
	runs, _ := store.RecentRuns("stub", 10)
	if len(runs) != 1 {
		t.Fatalf("expected one stored run, got %d", len(runs))
	}
	if runs[0].Outcome != "lost" || runs[0].TotalKills != 7 || len(runs[0].Levels) != 1 {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestGameModelRestartAndBack(t *testing.T) {
	g := &stubGame{endAt: 1}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	m.Init()
	m = step(t, m, TickMsg{})

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("restart after game over should reset, resets = %d", g.resets)
	}

	m = step(t, m, TickMsg{})
	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b after game over should go back to the menu")
	}

	m = step(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestScreenRendererPlain(t *testing.T) {
	r := NewScreenRenderer(lipgloss.NewRenderer(&bytes.Buffer{}))

	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	if got := r.Render(s); got != s.String() {
		t.Errorf("without color support the output should be plain text, got %q", got)
	}
}

func TestRunRecord(t *testing.T) {
	rec := runRecord("skybattle", (&stubGame{score: 4, steps: 9, endWith: campaign.PhaseWon}).Report())

	if rec.GameID != "skybattle" || rec.Outcome != "won" || rec.Ticks != 9 || rec.TotalKills != 4 {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.Levels) != 1 || rec.Levels[0].Name != "Coastal Patrol" || rec.Levels[0].Kills != 4 {
		t.Errorf("levels = %+v", rec.Levels)
	}
}
