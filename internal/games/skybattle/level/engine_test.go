package level

import (
	"testing"

	"github.com/vovakirdan/skybattle/internal/config"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/actor"
)

func TestKillCountFromCleanup(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	rng := &fixedRand{value: 1}
	e, _, _ := newIdleEngine(cfg, rng)

	var enemies []*actor.Enemy
	for i := 0; i < 3; i++ {
		en := newEnemyAt(cfg, actor.KindEnemy, 1200, float64(i*100), rng)
		enemies = append(enemies, en)
		e.AddEnemy(en)
	}
	enemies[0].Destroy()
	enemies[2].Destroy()

	e.Step()

	if e.EnemySnapshot() != 3 {
		t.Errorf("enemy snapshot = %d, expected 3", e.EnemySnapshot())
	}
	if e.EnemyCount() != 1 {
		t.Errorf("enemy count = %d, expected 1", e.EnemyCount())
	}
	if e.Player().Kills() != 2 {
		t.Errorf("kills = %d, expected 2", e.Player().Kills())
	}
}

func TestCollisionDamagesBothMembers(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	rng := &fixedRand{value: 1}
	e, _, _ := newIdleEngine(cfg, rng)

	// After the update phase the interceptor sits at x=142 and the shot at x=160
	en := newEnemyAt(cfg, actor.KindInterceptor, 150, 300, rng)
	e.AddEnemy(en)
	e.Fire()
	e.Step()

	if en.Health() != 1 {
		t.Errorf("enemy health = %d, expected 1", en.Health())
	}
	if len(e.UserProjectiles()) != 0 {
		t.Errorf("projectile should be destroyed and swept, %d left", len(e.UserProjectiles()))
	}
	if e.Player().Kills() != 0 {
		t.Errorf("damaged enemy is not a kill, got %d", e.Player().Kills())
	}
}

func TestCollisionPassHasNoEarlyExit(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	rng := &fixedRand{value: 1}
	e, _, _ := newIdleEngine(cfg, rng)

	// One shot overlapping two stacked enemies damages both
	e.AddEnemy(newEnemyAt(cfg, actor.KindEnemy, 150, 290, rng))
	e.AddEnemy(newEnemyAt(cfg, actor.KindEnemy, 150, 310, rng))
	e.Fire()
	e.Step()

	if e.EnemyCount() != 0 {
		t.Errorf("both enemies should be destroyed, %d left", e.EnemyCount())
	}
	if e.Player().Kills() != 2 {
		t.Errorf("kills = %d, expected 2", e.Player().Kills())
	}
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	rng := &fixedRand{value: 1}
	e, _, view := newIdleEngine(cfg, rng)

	// Enemy parked far right fires once, straight at the player's row
	en := newEnemyAt(cfg, actor.KindEnemy, 200, 290, rng)
	rng.value = 0.01
	p := en.FireProjectile()
	rng.value = 1
	e.enemyProjectiles = append(e.enemyProjectiles, p)

	for i := 0; i < 10 && p != nil && !p.Destroyed(); i++ {
		e.Step()
	}

	if e.Player().Health() != 4 {
		t.Errorf("player health = %d, expected 4", e.Player().Health())
	}
	if view.health != 4 {
		t.Errorf("view health = %d, expected 4", view.health)
	}
	if e.Stats().HitsTaken != 1 {
		t.Errorf("hits taken = %d, expected 1", e.Stats().HitsTaken)
	}
}

func TestProjectilesCancelOut(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	rng := &fixedRand{value: 1}
	e, _, _ := newIdleEngine(cfg, rng)

	// Enemy shot flying left into the player's shot
	ep := actor.NewProjectile(actor.KindEnemyProjectile, 175, 318, cfg.Projectiles.Enemy)
	e.enemyProjectiles = append(e.enemyProjectiles, ep)
	e.Fire()
	e.Step()

	if len(e.UserProjectiles()) != 0 || len(e.EnemyProjectiles()) != 0 {
		t.Errorf("projectiles should destroy each other: user=%d enemy=%d",
			len(e.UserProjectiles()), len(e.EnemyProjectiles()))
	}
	if e.Player().Health() != 5 {
		t.Errorf("player should be untouched, health = %d", e.Player().Health())
	}
}

func TestPenetrationDamagesPlayer(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	cfg.Enemy.Velocity = -1201
	rng := &fixedRand{value: 1}
	e, scene, _ := newIdleEngine(cfg, rng)

	en := newEnemyAt(cfg, actor.KindEnemy, 1200, 0, rng)
	e.AddEnemy(en)
	e.Step()

	if e.Player().Health() != 4 {
		t.Errorf("player health = %d, expected 4", e.Player().Health())
	}
	if !en.Destroyed() || e.EnemyCount() != 0 {
		t.Error("penetrating enemy should be destroyed and swept")
	}
	if _, ok := scene.live[en.ID()]; ok {
		t.Error("penetrating enemy should leave the scene")
	}
	if e.Stats().Penetrations != 1 {
		t.Errorf("penetrations = %d, expected 1", e.Stats().Penetrations)
	}
}

func TestPenetrationThreshold(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	cfg.Enemy.Velocity = -1200
	rng := &fixedRand{value: 1}
	e, _, _ := newIdleEngine(cfg, rng)

	// |translateX| == width is not past the edge yet
	e.AddEnemy(newEnemyAt(cfg, actor.KindEnemy, 1200, 0, rng))
	e.Step()
	if e.Player().Health() != 5 || e.EnemyCount() != 1 {
		t.Errorf("enemy at exactly the width should not penetrate: health=%d enemies=%d",
			e.Player().Health(), e.EnemyCount())
	}
}

func TestFinalOutcomeIsSticky(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	cfg.Enemy.Velocity = -1300
	rng := &fixedRand{value: 1}
	scene := newRecordingScene()
	view := &recordingView{}
	def, _ := cfg.Level("level-one")
	def.PlayerHealth = 1
	e := NewEngine(cfg, def, idleVariant{}, Deps{Rand: rng, Scene: scene, View: view})

	e.AddEnemy(newEnemyAt(cfg, actor.KindEnemy, 1200, 0, rng))
	if out := e.Step(); out.Kind != OutcomeLose {
		t.Fatalf("outcome = %v, expected lose", out)
	}
	tick := e.Tick()

	e.Fire()
	if out := e.Step(); out.Kind != OutcomeLose {
		t.Errorf("final outcome should repeat, got %v", out)
	}
	if e.Tick() != tick {
		t.Error("no tick should run after a final outcome")
	}
	if view.gameOvers != 1 {
		t.Errorf("ShowGameOver called %d times, expected 1", view.gameOvers)
	}
	if _, ok := scene.live[e.Player().ID()]; ok {
		t.Error("destroyed player should leave the scene")
	}
}

func TestDestroyedActorsNeverSurviveCleanup(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	rng := &fixedRand{value: 0.01}
	scene := newRecordingScene()
	def, _ := cfg.Level("level-one")
	def.SpawnProbability = 0.5
	variant, err := newWaves(def, cfg)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(cfg, def, variant, Deps{Rand: rng, Scene: scene})

	for i := 0; i < 300; i++ {
		if i%3 == 0 {
			e.Fire()
		}
		if e.Step().Final() {
			break
		}
		for _, a := range e.Friendlies() {
			if a.Destroyed() {
				t.Fatalf("tick %d: destroyed friendly survived", i)
			}
		}
		for _, a := range e.Enemies() {
			if a.Destroyed() {
				t.Fatalf("tick %d: destroyed enemy survived", i)
			}
		}
		for _, p := range e.UserProjectiles() {
			if p.Destroyed() {
				t.Fatalf("tick %d: destroyed user projectile survived", i)
			}
		}
		for _, p := range e.EnemyProjectiles() {
			if p.Destroyed() {
				t.Fatalf("tick %d: destroyed enemy projectile survived", i)
			}
		}
		live := len(e.Friendlies()) + len(e.Enemies()) + len(e.UserProjectiles()) + len(e.EnemyProjectiles())
		if len(scene.live) != live {
			t.Fatalf("tick %d: scene holds %d entities, world holds %d", i, len(scene.live), live)
		}
	}
}

func TestFireIsQueued(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	e, _, _ := newIdleEngine(cfg, &fixedRand{value: 1})

	e.Fire()
	e.Fire()
	if len(e.UserProjectiles()) != 0 {
		t.Fatal("fire requests should wait for the next tick")
	}
	e.Step()

	if len(e.UserProjectiles()) != 2 {
		t.Fatalf("user projectiles = %d, expected 2", len(e.UserProjectiles()))
	}
	x, y := e.UserProjectiles()[0].Position()
	if x != 160 || y != 321 {
		t.Errorf("projectile after first tick at (%g, %g), expected (160, 321)", x, y)
	}
	if e.Stats().ShotsFired != 2 {
		t.Errorf("shots fired = %d, expected 2", e.Stats().ShotsFired)
	}
}

func TestCommandsReachPlayer(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	e, _, _ := newIdleEngine(cfg, &fixedRand{value: 1})

	var c Commander = e
	c.MoveUp()
	c.MoveRight()
	if e.Player().VerticalMultiplier() != -1 || e.Player().HorizontalMultiplier() != 1 {
		t.Error("move commands should set multipliers")
	}
	c.StopVertical()
	c.StopHorizontal()
	if e.Player().VerticalMultiplier() != 0 || e.Player().HorizontalMultiplier() != 0 {
		t.Error("stop commands should clear multipliers")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		out      Outcome
		expected string
		final    bool
	}{
		{Continue(), "continue", false},
		{Win(), "win", true},
		{Lose(), "lose", true},
		{Advance("level-two"), "advance(level-two)", true},
	}
	for _, tc := range tests {
		if tc.out.String() != tc.expected || tc.out.Final() != tc.final {
			t.Errorf("%v: String()=%q Final()=%v", tc.out, tc.out.String(), tc.out.Final())
		}
	}
}

func TestShotPastEdgeStillHitsNewEnemy(t *testing.T) {
	cfg := config.DefaultSkybattleConfig()
	rng := &fixedRand{value: 1}
	e, _, _ := newIdleEngine(cfg, rng)

	// The shot has just crossed the right edge
	shot := actor.NewProjectile(actor.KindUserProjectile, 1200, 310, cfg.Projectiles.User)
	e.userProjectiles = append(e.userProjectiles, shot)
	e.Step()

	if shot.Destroyed() || len(e.UserProjectiles()) != 1 {
		t.Fatal("a shot just past the edge should stay in flight")
	}

	// An enemy entering at the edge flies into it on the next tick
	en := newEnemyAt(cfg, actor.KindEnemy, cfg.Field.Width, 300, rng)
	e.AddEnemy(en)
	e.Step()

	if !en.Destroyed() {
		t.Errorf("enemy health = %d, expected the shot to land", en.Health())
	}
	if e.Player().Kills() != 1 {
		t.Errorf("kills = %d, expected 1", e.Player().Kills())
	}
}

func TestOffFieldProjectilesAreRetired(t *testing.T) {
	tests := []struct {
		name  string
		kind  actor.Kind
		x     float64
		alive bool
	}{
		// After one tick the user shot sits at 1310, the last live position
		{"user shot at limit", actor.KindUserProjectile, 1295, true},
		{"user shot past limit", actor.KindUserProjectile, 1296, false},
		// Enemy shot right edge at -1 after one tick
		{"enemy shot past left edge", actor.KindEnemyProjectile, -21, false},
		{"enemy shot touching left edge", actor.KindEnemyProjectile, -20, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultSkybattleConfig()
			rng := &fixedRand{value: 1}
			e, scene, _ := newIdleEngine(cfg, rng)

			var p *actor.Projectile
			if tc.kind == actor.KindUserProjectile {
				p = actor.NewProjectile(tc.kind, tc.x, 100, cfg.Projectiles.User)
				e.userProjectiles = append(e.userProjectiles, p)
			} else {
				p = actor.NewProjectile(tc.kind, tc.x, 100, cfg.Projectiles.Enemy)
				e.enemyProjectiles = append(e.enemyProjectiles, p)
			}
			scene.Add(p)
			e.Step()

			if p.Destroyed() == tc.alive {
				t.Errorf("destroyed = %v, expected alive = %v", p.Destroyed(), tc.alive)
			}
			if _, inScene := scene.live[p.ID()]; inScene != tc.alive {
				t.Errorf("in scene = %v, expected %v", inScene, tc.alive)
			}
			if e.Player().Kills() != 0 {
				t.Errorf("culling is not a kill, got %d", e.Player().Kills())
			}
		})
	}
}
