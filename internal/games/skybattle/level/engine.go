package level

import (
	"math"

	"github.com/vovakirdan/skybattle/internal/config"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/actor"
)

// Deps are the collaborators an engine is wired to.
// Nil Scene or View are replaced by no-op implementations.
type Deps struct {
	Rand  actor.Rand
	Scene Scene
	View  View
}

// Stats summarize a level run.
type Stats struct {
	Ticks          uint64
	Kills          int
	ShotsFired     int
	EnemiesSpawned int
	Penetrations   int
	HitsTaken      int
}

// Engine owns the world of one level.
type Engine struct {
	cfg     config.SkybattleConfig
	def     config.LevelConfig
	variant Variant
	rng     actor.Rand
	scene   Scene
	view    View

	player           *actor.Player
	friendlies       []actor.Entity
	enemies          []actor.Shooter
	userProjectiles  []*actor.Projectile
	enemyProjectiles []*actor.Projectile

	enemySnapshot int
	cullMargin    float64
	pendingFire   int
	tick          uint64
	outcome       Outcome
	stats         Stats
}

// NewEngine builds the world of a level: the player is placed and the
// HUD is prepared, but no tick has run yet.
func NewEngine(cfg config.SkybattleConfig, def config.LevelConfig, variant Variant, deps Deps) *Engine {
	if deps.Scene == nil {
		deps.Scene = NopScene{}
	}
	if deps.View == nil {
		deps.View = NopView{}
	}

	e := &Engine{
		cfg:     cfg,
		def:     def,
		variant: variant,
		rng:     deps.Rand,
		scene:   deps.Scene,
		view:    deps.View,
		outcome: Continue(),
		// Enemies spawn with their left edge on the field's right edge.
		cullMargin: max(cfg.Enemy.Sprite.Width, cfg.Interceptor.Sprite.Width),
	}

	e.player = actor.NewPlayer(def.PlayerHealth, cfg.Player, cfg.Projectiles.User)
	e.friendlies = append(e.friendlies, e.player)
	e.scene.Add(e.player)

	e.view.UpdateHealth(e.player.Health())
	variant.BuildView(e, e.view)
	return e
}

// Step advances the world by one tick and returns the level outcome.
// Once the outcome is final, Step keeps returning it without simulating.
func (e *Engine) Step() Outcome {
	if e.outcome.Final() {
		return e.outcome
	}
	e.tick++
	e.stats.Ticks = e.tick

	e.flushFire()
	e.variant.SpawnTick(e)
	e.updateActors()
	e.generateEnemyFire()
	e.enemySnapshot = len(e.enemies)
	e.handlePenetration()

	collide(e.userProjectiles, e.enemies)
	collide(e.enemyProjectiles, e.friendlies)
	collide(e.enemyProjectiles, e.userProjectiles)
	collide(e.friendlies, e.enemies)

	e.cullProjectiles()
	killed := e.removeDestroyed()
	e.player.AddKills(killed)
	e.stats.Kills = e.player.Kills()
	e.stats.HitsTaken = e.def.PlayerHealth - e.player.Health()

	e.view.UpdateHealth(e.player.Health())
	e.variant.RefreshView(e, e.view)

	e.outcome = e.variant.CheckTermination(e)
	switch e.outcome.Kind {
	case OutcomeWin:
		e.view.ShowWin()
	case OutcomeLose:
		e.view.ShowGameOver()
	}
	return e.outcome
}

// flushFire turns queued fire requests into projectiles.
func (e *Engine) flushFire() {
	for ; e.pendingFire > 0; e.pendingFire-- {
		if e.player.Destroyed() {
			continue
		}
		p := e.player.FireProjectile()
		e.userProjectiles = append(e.userProjectiles, p)
		e.scene.Add(p)
		e.stats.ShotsFired++
	}
}

func (e *Engine) updateActors() {
	for _, a := range e.friendlies {
		a.UpdateActor()
	}
	for _, a := range e.enemies {
		a.UpdateActor()
	}
	for _, p := range e.userProjectiles {
		p.UpdateActor()
	}
	for _, p := range e.enemyProjectiles {
		p.UpdateActor()
	}
}

func (e *Engine) generateEnemyFire() {
	for _, en := range e.enemies {
		if en.Destroyed() {
			continue
		}
		if p := en.FireProjectile(); p != nil {
			e.enemyProjectiles = append(e.enemyProjectiles, p)
			e.scene.Add(p)
		}
	}
}

// handlePenetration punishes the player for every enemy that flew past
// the left edge.
func (e *Engine) handlePenetration() {
	for _, en := range e.enemies {
		if e.penetrated(en) {
			e.player.TakeDamage()
			en.Destroy()
			e.stats.Penetrations++
		}
	}
}

func (e *Engine) penetrated(en actor.Entity) bool {
	return math.Abs(en.TranslateX()) > e.cfg.Field.Width
}

// cullProjectiles retires projectiles that can no longer hit anything.
// On the right a shot stays live until it is past the widest enemy that
// could still spawn at the edge. Nothing friendly lives left of x = 0.
func (e *Engine) cullProjectiles() {
	limit := e.cfg.Field.Width + e.cullMargin
	for _, list := range [][]*actor.Projectile{e.userProjectiles, e.enemyProjectiles} {
		for _, p := range list {
			if b := p.Bounds(); b.Right() < 0 || b.X > limit {
				p.Destroy()
			}
		}
	}
}

// removeDestroyed sweeps all four collections and returns how many enemy
// units left the world this tick.
func (e *Engine) removeDestroyed() int {
	var killed int
	e.friendlies, _ = sweep(e.friendlies, e.scene)
	e.enemies, killed = sweep(e.enemies, e.scene)
	e.userProjectiles, _ = sweep(e.userProjectiles, e.scene)
	e.enemyProjectiles, _ = sweep(e.enemyProjectiles, e.scene)
	return killed
}

// AddEnemy places an enemy unit in the world.
func (e *Engine) AddEnemy(en actor.Shooter) {
	e.enemies = append(e.enemies, en)
	e.scene.Add(en)
	e.stats.EnemiesSpawned++
}

// Commands. Fire is queued and resolved at the start of the next tick.

func (e *Engine) MoveUp()         { e.player.MoveUp() }
func (e *Engine) MoveDown()       { e.player.MoveDown() }
func (e *Engine) MoveLeft()       { e.player.MoveLeft() }
func (e *Engine) MoveRight()      { e.player.MoveRight() }
func (e *Engine) StopVertical()   { e.player.StopVertical() }
func (e *Engine) StopHorizontal() { e.player.StopHorizontal() }

func (e *Engine) Fire() {
	if e.outcome.Final() {
		return
	}
	e.pendingFire++
}

// Config returns the configuration the level was built from.
func (e *Engine) Config() config.SkybattleConfig { return e.cfg }

// Definition returns the level definition.
func (e *Engine) Definition() config.LevelConfig { return e.def }

// Rand returns the engine's random source.
func (e *Engine) Rand() actor.Rand { return e.rng }

// Player returns the player craft.
func (e *Engine) Player() *actor.Player { return e.player }

// EnemyCount returns the number of enemy units currently in the world.
func (e *Engine) EnemyCount() int { return len(e.enemies) }

// EnemySnapshot returns the enemy count recorded after this tick's fire
// phase.
func (e *Engine) EnemySnapshot() int { return e.enemySnapshot }

// Enemies returns the enemy units. The slice is valid until the next Step.
func (e *Engine) Enemies() []actor.Shooter { return e.enemies }

// Friendlies returns the friendly units. The slice is valid until the next Step.
func (e *Engine) Friendlies() []actor.Entity { return e.friendlies }

// UserProjectiles returns the player's projectiles in flight.
func (e *Engine) UserProjectiles() []*actor.Projectile { return e.userProjectiles }

// EnemyProjectiles returns the enemy projectiles in flight.
func (e *Engine) EnemyProjectiles() []*actor.Projectile { return e.enemyProjectiles }

// Tick returns the number of ticks simulated.
func (e *Engine) Tick() uint64 { return e.tick }

// Outcome returns the latest outcome.
func (e *Engine) Outcome() Outcome { return e.outcome }

// Stats returns the level statistics so far.
func (e *Engine) Stats() Stats { return e.stats }

// Variant returns the level's variant policy.
func (e *Engine) Variant() Variant { return e.variant }
