package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/registry"
	"github.com/vovakirdan/skybattle/internal/storage"
)

// helpRows is the space reserved under the game for the key help line.
const helpRows = 1

// GameModel is the Bubble Tea model running one game, locally or inside
// an SSH session.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	renderer *ScreenRenderer
	logger   *log.Logger
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	state    core.GameState

	quitting   bool
	backToMenu bool
	saved      bool // result of the current game already stored
}

// NewGameModel creates a model for the given game. A zero seed is
// replaced with a time-based one.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:    store,
		renderer: NewScreenRenderer(nil),
		logger:   log.New(io.Discard),
		config:   cfg,
		input:    core.NewInputFrame(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// WithRenderer returns the model drawing through r.
func (m GameModel) WithRenderer(r *ScreenRenderer) GameModel {
	m.renderer = r
	return m
}

// WithLogger returns the model logging to l.
func (m GameModel) WithLogger(l *log.Logger) GameModel {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales its world to whatever screen it gets, so a
		// resize does not restart it.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Restart is handled here only, so every new game gets a fresh seed.
	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.saved = false
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.input)
	m.state = result.State

	if m.state.GameOver && !m.saved {
		m.saveResult()
		m.saved = true
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the score and, for campaign games, the run record.
func (m *GameModel) saveResult() {
	if m.store == nil {
		return
	}
	id, err := SaveResult(m.store, m.game)
	if err != nil {
		m.logger.Warn("could not save result", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("result saved", "game", m.game.ID(), "run", id)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skybattle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the game and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState { return m.state }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run plays a game in the local terminal. It reports whether the player
// asked to go back to the menu rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
