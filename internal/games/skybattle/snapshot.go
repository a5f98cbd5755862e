package skybattle

import (
	"math"

	"github.com/vovakirdan/skybattle/internal/games/skybattle/campaign"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/level"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying    GameStateType = "playing"
	StatePaused     GameStateType = "paused"
	StateTransition GameStateType = "transition"
	StateWin        GameStateType = "win"
	StateGameOver   GameStateType = "game_over"
	StateFailed     GameStateType = "failed"
)

// Snapshot captures the session state for determinism testing and the
// headless simulate command.
type Snapshot struct {
	Tick             uint64
	Level            string
	State            GameStateType
	Health           int
	LevelKills       int
	TotalKills       int
	LevelsCleared    int
	Enemies          int
	UserProjectiles  int
	EnemyProjectiles int
	PlayerX          float64
	PlayerY          float64
	BossHealth       int
	BossShielded     bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.campaign == nil {
		return Snapshot{}
	}

	snap := Snapshot{
		Tick:          g.tick,
		State:         g.stateType(),
		TotalKills:    g.campaign.TotalKills(),
		LevelsCleared: g.campaign.LevelsCleared(),
	}

	e := g.campaign.Engine()
	if e == nil {
		return snap
	}
	p := e.Player()
	snap.Level = e.Definition().ID
	snap.Health = p.Health()
	snap.LevelKills = p.Kills()
	snap.Enemies = e.EnemyCount()
	snap.UserProjectiles = len(e.UserProjectiles())
	snap.EnemyProjectiles = len(e.EnemyProjectiles())
	snap.PlayerX, snap.PlayerY = p.Position()

	if bf, ok := e.Variant().(*level.BossFight); ok {
		if b := bf.Boss(); b != nil {
			snap.BossHealth = b.Health()
			snap.BossShielded = b.Shielded()
		}
	}
	return snap
}

func (g *Game) stateType() GameStateType {
	switch g.campaign.Phase() {
	case campaign.PhaseTransition:
		return StateTransition
	case campaign.PhaseWon:
		return StateWin
	case campaign.PhaseLost:
		return StateGameOver
	case campaign.PhaseFailed:
		return StateFailed
	}
	if g.paused {
		return StatePaused
	}
	return StatePlaying
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Level {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Health)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelKills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalKills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelsCleared)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Enemies)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.UserProjectiles)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyProjectiles) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.BossHealth) //#nosec G115 -- hash computation
	if snap.BossShielded {
		h = h*31 + 1
	}
	return h
}
