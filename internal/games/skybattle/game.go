// Package skybattle plugs the Sky Battle campaign into the terminal
// platform. It owns the per-session campaign, maps input frames to player
// commands and draws the world and HUD into the terminal screen.
package skybattle

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybattle/internal/config"
	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/campaign"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/level"
	"github.com/vovakirdan/skybattle/internal/registry"
)

// Mode selects where a session starts.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeBoss     Mode = "boss"
)

// Game is one Sky Battle session.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.SkybattleConfig
	rng     *rand.Rand

	campaign *campaign.Campaign
	scene    *Scene
	hud      *HUD
	controls *Controls

	tick   uint64
	paused bool
	alert  error
}

// Package-level settings, set from CLI flags before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config as written.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel makes campaign sessions open at the given level ID.
// Empty means the first level.
func SetStartLevel(id string) {
	startLevel = id
}

// SetLogger sets the logger sessions report level events to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a campaign session.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewBossRush creates a session that opens at the boss level.
func NewBossRush() *Game {
	return &Game{mode: ModeBoss}
}

func init() {
	registry.Register("skybattle", "Fly the full campaign: patrol, flagship, interceptors", func() registry.Game {
		return New()
	})
	registry.Register("skybattle_boss", "Skip straight to the flagship fight", func() registry.Game {
		return NewBossRush()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBoss {
		return "skybattle_boss"
	}
	return "skybattle"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBoss {
		return "Sky Battle (Boss Rush)"
	}
	return "Sky Battle"
}

// Reset loads the configuration and starts a fresh campaign. A custom
// config that cannot be loaded leaves the campaign failed and alerted.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.paused = false
	g.alert = nil

	cfg, err := config.LoadSkybattle(configPath)
	if err != nil {
		// The rejected file is not used even for presentation.
		cfg = config.DefaultSkybattleConfig()
	}
	if difficultyPreset != "" {
		config.ApplySkybattlePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.controls = NewControls(cfg.Presentation.HoldTicks)
	g.scene = NewScene()
	g.hud = NewHUD(cfg.Presentation)

	opts := campaign.Options{
		Catalog: level.NewCatalog(cfg),
		Start:   g.openingLevel(),
		Rand:    g.rng,
		NewScene: func() level.Scene {
			g.scene = NewScene()
			return g.scene
		},
		NewView: func() level.View {
			g.hud = NewHUD(cfg.Presentation)
			return g.hud
		},
		Alerter:         g,
		Logger:          logger,
		TransitionTicks: cfg.Presentation.TransitionTicks,
	}
	if err != nil {
		g.campaign = campaign.NewFailed(opts, fmt.Errorf("config: %w", err))
		return
	}

	// A failed opening level is alerted through g.Alert and leaves the
	// campaign in its failed phase.
	g.campaign, _ = campaign.New(opts)
}

func (g *Game) openingLevel() string {
	if g.mode == ModeBoss {
		for _, l := range g.cfg.Levels {
			if l.Variant == config.VariantBoss {
				return l.ID
			}
		}
	}
	return startLevel
}

// Alert records a level construction failure for display.
func (g *Game) Alert(err error) {
	g.alert = err
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.campaign == nil {
		return core.StepResult{}
	}
	// Restart is the platform's job: it reseeds and calls Reset.
	finished := g.campaign.Phase().Finished()
	if in.Has(core.ActionPause) && !finished {
		g.paused = !g.paused
	}
	if g.paused || finished {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	before := g.campaign.Engine()
	g.controls.Apply(in, g.campaign)
	g.campaign.Step()
	if g.campaign.Engine() != before {
		g.controls.Reset()
	}
	g.hud.Tick()

	return core.StepResult{State: g.State()}
}

// State returns the platform-facing state. The score is the campaign's
// total kill count.
func (g *Game) State() core.GameState {
	if g.campaign == nil {
		return core.GameState{}
	}
	phase := g.campaign.Phase()
	return core.GameState{
		Score:    g.campaign.TotalKills(),
		GameOver: phase.Finished(),
		Paused:   g.paused,
		Won:      phase == campaign.PhaseWon,
	}
}

// Campaign returns the running campaign.
func (g *Game) Campaign() *campaign.Campaign { return g.campaign }

// Report summarizes the session so far.
func (g *Game) Report() campaign.Report {
	if g.campaign == nil {
		return campaign.Report{}
	}
	return g.campaign.Report()
}

// Scene returns the render list of the current level.
func (g *Game) Scene() *Scene { return g.scene }

// HUD returns the display state of the current level.
func (g *Game) HUD() *HUD { return g.hud }

// Config returns the configuration the session was started with.
func (g *Game) Config() config.SkybattleConfig { return g.cfg }

// Alerted returns the last construction failure, if any.
func (g *Game) Alerted() error { return g.alert }
