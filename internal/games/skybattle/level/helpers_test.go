package level

import (
	"github.com/vovakirdan/skybattle/internal/config"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/actor"
)

// fixedRand returns the same value for every roll and never reorders.
type fixedRand struct {
	value float64
}

func (r *fixedRand) Float64() float64            { return r.value }
func (r *fixedRand) Shuffle(int, func(i, j int)) {}

// recordingView counts HUD calls.
type recordingView struct {
	health     int
	kills      int
	killTarget int
	bossMax    int
	bossHealth int
	bossHidden bool
	shield     bool
	shieldOns  int
	powerUps   int
	wins       int
	gameOvers  int
}

func (v *recordingView) UpdateHealth(n int)     { v.health = n }
func (v *recordingView) ShowKillTarget(n int)   { v.killTarget = n }
func (v *recordingView) UpdateKillCount(n int)  { v.kills = n }
func (v *recordingView) ShowBossHealth(n int)   { v.bossMax = n; v.bossHidden = false }
func (v *recordingView) UpdateBossHealth(n int) { v.bossHealth = n }
func (v *recordingView) HideBossHealth()        { v.bossHidden = true }
func (v *recordingView) ShowShield()            { v.shield = true; v.shieldOns++ }
func (v *recordingView) HideShield()            { v.shield = false }
func (v *recordingView) ShowPowerUp()           { v.powerUps++ }
func (v *recordingView) ShowWin()               { v.wins++ }
func (v *recordingView) ShowGameOver()          { v.gameOvers++ }

// recordingScene tracks which entities are attached.
type recordingScene struct {
	live    map[uint64]actor.Entity
	removed int
}

func newRecordingScene() *recordingScene {
	return &recordingScene{live: make(map[uint64]actor.Entity)}
}

func (s *recordingScene) Add(e actor.Entity) { s.live[e.ID()] = e }

func (s *recordingScene) Remove(e actor.Entity) {
	if _, ok := s.live[e.ID()]; ok {
		delete(s.live, e.ID())
		s.removed++
	}
}

// idleVariant never spawns and only ends when the player dies.
type idleVariant struct{}

func (idleVariant) BuildView(*Engine, View)   {}
func (idleVariant) SpawnTick(*Engine)         {}
func (idleVariant) RefreshView(*Engine, View) {}

func (idleVariant) CheckTermination(e *Engine) Outcome {
	if e.Player().Destroyed() {
		return Lose()
	}
	return Continue()
}

func newIdleEngine(cfg config.SkybattleConfig, rng actor.Rand) (*Engine, *recordingScene, *recordingView) {
	scene := newRecordingScene()
	view := &recordingView{}
	def, _ := cfg.Level("level-one")
	e := NewEngine(cfg, def, idleVariant{}, Deps{Rand: rng, Scene: scene, View: view})
	return e, scene, view
}

func newEnemyAt(cfg config.SkybattleConfig, kind actor.Kind, x, y float64, rng actor.Rand) *actor.Enemy {
	ec := cfg.Enemy
	if kind == actor.KindInterceptor {
		ec = cfg.Interceptor
	}
	return actor.NewEnemy(kind, x, y, ec, cfg.Projectiles.Enemy, rng)
}
