// Package config provides YAML-based configuration loading and difficulty
// management for Sky Battle.
package config

// SkybattleConfig contains every tunable of the simulation.
// Units are logical play-field pixels and ticks.
type SkybattleConfig struct {
	Field        FieldConfig        `yaml:"field"`
	Player       PlayerConfig       `yaml:"player"`
	Enemy        EnemyConfig        `yaml:"enemy"`
	Interceptor  EnemyConfig        `yaml:"interceptor"`
	Boss         BossConfig         `yaml:"boss"`
	Projectiles  ProjectilesConfig  `yaml:"projectiles"`
	Levels       []LevelConfig      `yaml:"levels"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
	Presentation PresentationConfig `yaml:"presentation"`
}

// FieldConfig defines the logical play field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// EnemyBandAdjust is subtracted from Height to get the lowest spawn row.
	EnemyBandAdjust float64 `yaml:"enemy_band_adjust"`
}

// EnemyMaxY returns the exclusive upper bound of enemy spawn rows.
func (f FieldConfig) EnemyMaxY() float64 {
	return f.Height - f.EnemyBandAdjust
}

// SpriteConfig is the extent of an actor's bounding box.
type SpriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	StartX            float64      `yaml:"start_x"`
	StartY            float64      `yaml:"start_y"`
	Sprite            SpriteConfig `yaml:"sprite"`
	Velocity          float64      `yaml:"velocity"`
	MinX              float64      `yaml:"min_x"`
	MaxX              float64      `yaml:"max_x"`
	MinY              float64      `yaml:"min_y"`
	MaxY              float64      `yaml:"max_y"`
	ProjectileOffsetX float64      `yaml:"projectile_offset_x"`
	ProjectileOffsetY float64      `yaml:"projectile_offset_y"`
}

// EnemyConfig defines a regular enemy craft type.
type EnemyConfig struct {
	Sprite            SpriteConfig `yaml:"sprite"`
	Velocity          float64      `yaml:"velocity"`
	Health            int          `yaml:"health"`
	FireRate          float64      `yaml:"fire_rate"`
	ProjectileOffsetX float64      `yaml:"projectile_offset_x"`
	ProjectileOffsetY float64      `yaml:"projectile_offset_y"`
}

// BossConfig defines the boss craft.
type BossConfig struct {
	StartX            float64      `yaml:"start_x"`
	StartY            float64      `yaml:"start_y"`
	Sprite            SpriteConfig `yaml:"sprite"`
	Health            int          `yaml:"health"`
	FireRate          float64      `yaml:"fire_rate"`
	ShieldProbability float64      `yaml:"shield_probability"`
	MaxShieldFrames   int          `yaml:"max_shield_frames"`
	VerticalVelocity  float64      `yaml:"vertical_velocity"`
	MovesPerCycle     int          `yaml:"moves_per_cycle"`
	MaxSameMove       int          `yaml:"max_same_move"`
	MinY              float64      `yaml:"min_y"`
	MaxY              float64      `yaml:"max_y"`
	ProjectileOffsetY float64      `yaml:"projectile_offset_y"`
}

// ProjectileConfig defines one projectile kind.
type ProjectileConfig struct {
	Sprite   SpriteConfig `yaml:"sprite"`
	Velocity float64      `yaml:"velocity"`
	// SpawnX, when non-zero, is a fixed launch column (boss fireballs).
	SpawnX float64 `yaml:"spawn_x"`
}

// ProjectilesConfig groups the projectile kinds.
type ProjectilesConfig struct {
	User  ProjectileConfig `yaml:"user"`
	Enemy ProjectileConfig `yaml:"enemy"`
	Boss  ProjectileConfig `yaml:"boss"`
}

// Level variants.
const (
	VariantWaves = "waves"
	VariantBoss  = "boss"
)

// Enemy kinds.
const (
	EnemyBasic       = "basic"
	EnemyInterceptor = "interceptor"
)

// LevelConfig defines one level of the campaign.
type LevelConfig struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Variant          string  `yaml:"variant"`
	Enemy            string  `yaml:"enemy,omitempty"`
	MaxEnemies       int     `yaml:"max_enemies,omitempty"`
	SpawnProbability float64 `yaml:"spawn_probability,omitempty"`
	KillTarget       int     `yaml:"kill_target,omitempty"`
	PlayerHealth     int     `yaml:"player_health"`
	BossHealth       int     `yaml:"boss_health,omitempty"` // 0 uses boss.health
	PowerUpEvery     int     `yaml:"power_up_every,omitempty"`
	Next             string  `yaml:"next,omitempty"` // empty means the campaign is won
}

// PresentationConfig holds front-end timings, in ticks.
type PresentationConfig struct {
	TransitionTicks int `yaml:"transition_ticks"`
	PowerUpTicks    int `yaml:"power_up_ticks"`
	HoldTicks       int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the optional spawn ramp.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "kills", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Kills/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to spawn probability factor at max difficulty
}

// Level returns the level with the given ID.
func (c SkybattleConfig) Level(id string) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// FirstLevel returns the ID of the campaign's opening level.
func (c SkybattleConfig) FirstLevel() string {
	if len(c.Levels) == 0 {
		return ""
	}
	return c.Levels[0].ID
}

// EnemyKind returns the enemy definition for a kind name.
func (c SkybattleConfig) EnemyKind(kind string) (EnemyConfig, bool) {
	switch kind {
	case EnemyBasic, "":
		return c.Enemy, true
	case EnemyInterceptor:
		return c.Interceptor, true
	default:
		return EnemyConfig{}, false
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial ramp level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
