// Package campaign drives a sequence of Sky Battle levels. It polls each
// level's outcome after every tick, plays a short transition between
// levels and keeps the per-level record of the run.
package campaign

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybattle/internal/games/skybattle/actor"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/level"
)

// Phase is the campaign's coarse state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseTransition
	PhaseWon
	PhaseLost
	PhaseFailed // a level could not be constructed
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseTransition:
		return "transition"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Finished reports whether the campaign has ended.
func (p Phase) Finished() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseFailed
}

// Alerter tells the user about failures the campaign cannot recover from.
type Alerter interface {
	Alert(err error)
}

// AlertFunc adapts a function to the Alerter interface.
type AlertFunc func(err error)

func (f AlertFunc) Alert(err error) { f(err) }

// Options configure a campaign.
type Options struct {
	Catalog *level.Catalog
	// Start is the opening level; empty means the catalog's first level.
	Start string
	Rand  actor.Rand
	// NewScene and NewView are called once per level. Nil means no-op
	// collaborators.
	NewScene        func() level.Scene
	NewView         func() level.View
	Alerter         Alerter
	Logger          *log.Logger
	TransitionTicks int
}

// Campaign runs levels one after another.
type Campaign struct {
	opts   Options
	logger *log.Logger

	phase      Phase
	engine     *level.Engine
	scene      level.Scene
	view       level.View
	next       string
	transition int
	ticks      uint64
	levels     []LevelSummary
	err        error
}

// New builds the opening level. A construction failure is alerted,
// logged and returned; the campaign is then in PhaseFailed.
func New(opts Options) (*Campaign, error) {
	if opts.Catalog == nil {
		return nil, errors.New("campaign: nil catalog")
	}
	if opts.Start == "" {
		opts.Start = opts.Catalog.First()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Campaign{opts: opts, logger: logger}
	if err := c.load(opts.Start); err != nil {
		return c, err
	}
	return c, nil
}

// NewFailed returns a campaign that could not start at all, for example
// because its configuration was rejected. The error is alerted and logged
// like a level construction failure.
func NewFailed(opts Options, err error) *Campaign {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Campaign{opts: opts, logger: logger}
	c.fail(err)
	return c
}

// load constructs a level. There is exactly one attempt per level.
func (c *Campaign) load(id string) error {
	scene := level.Scene(level.NopScene{})
	if c.opts.NewScene != nil {
		scene = c.opts.NewScene()
	}
	view := level.View(level.NopView{})
	if c.opts.NewView != nil {
		view = c.opts.NewView()
	}

	engine, err := c.opts.Catalog.Build(id, level.Deps{
		Rand:  c.opts.Rand,
		Scene: scene,
		View:  view,
	})
	if err != nil {
		c.fail(fmt.Errorf("campaign: loading level %q: %w", id, err))
		return c.err
	}

	c.engine = engine
	c.scene = scene
	c.view = view
	c.phase = PhasePlaying
	def := engine.Definition()
	c.logger.Info("level started", "level", def.ID, "name", def.Name, "variant", def.Variant)
	return nil
}

func (c *Campaign) fail(err error) {
	c.err = err
	c.phase = PhaseFailed
	c.logger.Error("level construction failed", "error", err)
	if c.opts.Alerter != nil {
		c.opts.Alerter.Alert(err)
	}
}

// Step advances the campaign by one tick.
func (c *Campaign) Step() Phase {
	switch c.phase {
	case PhasePlaying:
		c.ticks++
		c.handle(c.engine.Step())
	case PhaseTransition:
		c.ticks++
		c.transition--
		if c.transition <= 0 {
			c.load(c.next) //nolint:errcheck // failure is alerted and moves to PhaseFailed
		}
	}
	return c.phase
}

func (c *Campaign) handle(out level.Outcome) {
	if !out.Final() {
		return
	}
	c.record(out)

	switch out.Kind {
	case level.OutcomeWin:
		c.phase = PhaseWon
		c.logger.Info("campaign won", "kills", c.TotalKills(), "ticks", c.ticks)
	case level.OutcomeLose:
		c.phase = PhaseLost
		c.logger.Info("campaign lost", "level", c.engine.Definition().ID, "kills", c.TotalKills())
	case level.OutcomeAdvance:
		c.next = out.Next
		c.transition = c.opts.TransitionTicks
		c.logger.Info("level cleared", "level", c.engine.Definition().ID, "next", out.Next)
		if c.transition <= 0 {
			c.load(c.next) //nolint:errcheck // failure is alerted and moves to PhaseFailed
			return
		}
		c.phase = PhaseTransition
	}
}

func (c *Campaign) record(out level.Outcome) {
	def := c.engine.Definition()
	st := c.engine.Stats()
	c.levels = append(c.levels, LevelSummary{
		ID:             def.ID,
		Name:           def.Name,
		Outcome:        out.Kind.String(),
		Ticks:          st.Ticks,
		Kills:          st.Kills,
		ShotsFired:     st.ShotsFired,
		EnemiesSpawned: st.EnemiesSpawned,
		Penetrations:   st.Penetrations,
		HitsTaken:      st.HitsTaken,
	})
}

// Player commands are forwarded to the running level and dropped during
// transitions and after the end.

func (c *Campaign) commander() level.Commander {
	if c.phase != PhasePlaying {
		return nil
	}
	return c.engine
}

func (c *Campaign) MoveUp() {
	if cmd := c.commander(); cmd != nil {
		cmd.MoveUp()
	}
}

func (c *Campaign) MoveDown() {
	if cmd := c.commander(); cmd != nil {
		cmd.MoveDown()
	}
}

func (c *Campaign) MoveLeft() {
	if cmd := c.commander(); cmd != nil {
		cmd.MoveLeft()
	}
}

func (c *Campaign) MoveRight() {
	if cmd := c.commander(); cmd != nil {
		cmd.MoveRight()
	}
}

func (c *Campaign) StopVertical() {
	if cmd := c.commander(); cmd != nil {
		cmd.StopVertical()
	}
}

func (c *Campaign) StopHorizontal() {
	if cmd := c.commander(); cmd != nil {
		cmd.StopHorizontal()
	}
}

func (c *Campaign) Fire() {
	if cmd := c.commander(); cmd != nil {
		cmd.Fire()
	}
}

// Phase returns the current phase.
func (c *Campaign) Phase() Phase { return c.phase }

// Engine returns the current (or last) level engine. It is nil only when
// the opening level failed to build.
func (c *Campaign) Engine() *level.Engine { return c.engine }

// Scene returns the scene of the current level.
func (c *Campaign) Scene() level.Scene { return c.scene }

// View returns the HUD of the current level.
func (c *Campaign) View() level.View { return c.view }

// Next returns the level being transitioned to.
func (c *Campaign) Next() string { return c.next }

// TransitionRemaining returns the ticks left before the next level loads.
func (c *Campaign) TransitionRemaining() int {
	if c.phase != PhaseTransition {
		return 0
	}
	return c.transition
}

// Ticks returns the number of campaign ticks run.
func (c *Campaign) Ticks() uint64 { return c.ticks }

// Err returns the construction error that ended the campaign, if any.
func (c *Campaign) Err() error { return c.err }

// LevelsCleared returns how many levels were completed.
func (c *Campaign) LevelsCleared() int {
	n := 0
	for _, l := range c.levels {
		if l.Outcome == level.OutcomeAdvance.String() || l.Outcome == level.OutcomeWin.String() {
			n++
		}
	}
	return n
}

// TotalKills returns kills over finished levels plus the running one.
func (c *Campaign) TotalKills() int {
	total := 0
	for _, l := range c.levels {
		total += l.Kills
	}
	if c.phase == PhasePlaying && c.engine != nil {
		total += c.engine.Player().Kills()
	}
	return total
}
