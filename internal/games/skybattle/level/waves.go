package level

import (
	"github.com/vovakirdan/skybattle/internal/config"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/actor"
)

// Waves keeps up to MaxEnemies enemies on the field, spawning each free
// slot with a fixed probability per tick. The level completes at the kill
// target.
type Waves struct {
	def         config.LevelConfig
	enemy       config.EnemyConfig
	kind        actor.Kind
	difficulty  *config.DifficultyManager
	lastPowerUp int
}

func newWaves(def config.LevelConfig, cfg config.SkybattleConfig) (Variant, error) {
	enemy, ok := cfg.EnemyKind(def.Enemy)
	if !ok {
		return nil, fmtVariantErr(def, "unknown enemy kind %q", def.Enemy)
	}
	kind := actor.KindEnemy
	if def.Enemy == config.EnemyInterceptor {
		kind = actor.KindInterceptor
	}
	return &Waves{
		def:        def,
		enemy:      enemy,
		kind:       kind,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}, nil
}

func (w *Waves) BuildView(e *Engine, v View) {
	v.ShowKillTarget(w.def.KillTarget)
	v.UpdateKillCount(0)
}

// SpawnTick rolls once per free slot. The number of free slots is fixed
// before rolling, so the cap is never exceeded.
func (w *Waves) SpawnTick(e *Engine) {
	cfg := e.Config()
	rng := e.Rand()
	p := w.difficulty.SpawnProbability(w.def.SpawnProbability, e.Player().Kills(), int(e.Tick()))

	free := w.def.MaxEnemies - e.EnemyCount()
	for i := 0; i < free; i++ {
		if rng.Float64() < p {
			y := rng.Float64() * cfg.Field.EnemyMaxY()
			e.AddEnemy(actor.NewEnemy(w.kind, cfg.Field.Width, y, w.enemy, cfg.Projectiles.Enemy, rng))
		}
	}
}

// RefreshView updates the kill counter and raises the power-up marker
// each time the kill count crosses a multiple of PowerUpEvery.
func (w *Waves) RefreshView(e *Engine, v View) {
	kills := e.Player().Kills()
	v.UpdateKillCount(kills)

	if every := w.def.PowerUpEvery; every > 0 {
		milestone := kills / every * every
		if milestone > 0 && milestone > w.lastPowerUp {
			w.lastPowerUp = milestone
			v.ShowPowerUp()
		}
	}
}

func (w *Waves) CheckTermination(e *Engine) Outcome {
	if e.Player().Destroyed() {
		return Lose()
	}
	if e.Player().Kills() >= w.def.KillTarget {
		return finish(w.def.Next)
	}
	return Continue()
}
