package level

import (
	"github.com/vovakirdan/skybattle/internal/config"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/actor"
)

// BossFight pits the player against a single boss. The level completes
// when the boss is destroyed.
type BossFight struct {
	def     config.LevelConfig
	health  int
	boss    *actor.Boss
	shield  bool
	spawned bool
}

func newBossFight(def config.LevelConfig, cfg config.SkybattleConfig) (Variant, error) {
	health := def.BossHealth
	if health == 0 {
		health = cfg.Boss.Health
	}
	if health < 0 {
		return nil, fmtVariantErr(def, "boss health %d", health)
	}
	return &BossFight{def: def, health: health}, nil
}

// Boss returns the boss, or nil before it has entered the field.
func (b *BossFight) Boss() *actor.Boss {
	return b.boss
}

func (b *BossFight) BuildView(e *Engine, v View) {
	v.ShowBossHealth(b.health)
	v.HideShield()
}

// SpawnTick brings the boss in once the field is clear.
func (b *BossFight) SpawnTick(e *Engine) {
	if b.spawned || e.EnemyCount() != 0 {
		return
	}
	cfg := e.Config()
	b.boss = actor.NewBoss(b.health, cfg.Boss, cfg.Projectiles.Boss, e.Rand())
	b.spawned = true
	e.AddEnemy(b.boss)
}

func (b *BossFight) RefreshView(e *Engine, v View) {
	if b.boss == nil {
		return
	}
	if b.boss.Shielded() != b.shield {
		b.shield = b.boss.Shielded()
		if b.shield {
			v.ShowShield()
		} else {
			v.HideShield()
		}
	}
	v.UpdateBossHealth(b.boss.Health())
	if b.boss.Destroyed() || e.Player().Destroyed() {
		v.HideBossHealth()
	}
}

func (b *BossFight) CheckTermination(e *Engine) Outcome {
	if e.Player().Destroyed() {
		return Lose()
	}
	if b.boss != nil && b.boss.Destroyed() {
		return finish(b.def.Next)
	}
	return Continue()
}
