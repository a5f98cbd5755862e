package config

import (
	_ "embed"
)

//go:embed defaults/skybattle.yaml
var defaultSkybattleYAML []byte

// DefaultSkybattleConfig returns the built-in configuration. It mirrors
// defaults/skybattle.yaml and is the last fallback of LoadSkybattle.
func DefaultSkybattleConfig() SkybattleConfig {
	return SkybattleConfig{
		Field: FieldConfig{
			Width:           1200,
			Height:          650,
			EnemyBandAdjust: 150,
		},
		Player: PlayerConfig{
			StartX:            5,
			StartY:            300,
			Sprite:            SpriteConfig{Width: 100, Height: 40},
			Velocity:          10,
			MinX:              0,
			MaxX:              600,
			MinY:              5,
			MaxY:              560,
			ProjectileOffsetX: 140,
			ProjectileOffsetY: 21,
		},
		Enemy: EnemyConfig{
			Sprite:            SpriteConfig{Width: 110, Height: 50},
			Velocity:          -6,
			Health:            1,
			FireRate:          0.02,
			ProjectileOffsetX: -50,
			ProjectileOffsetY: 22,
		},
		Interceptor: EnemyConfig{
			Sprite:            SpriteConfig{Width: 110, Height: 50},
			Velocity:          -8,
			Health:            2,
			FireRate:          0.03,
			ProjectileOffsetX: -50,
			ProjectileOffsetY: 22,
		},
		Boss: BossConfig{
			StartX:            800,
			StartY:            400,
			Sprite:            SpriteConfig{Width: 250, Height: 110},
			Health:            15,
			FireRate:          0.04,
			ShieldProbability: 0.002,
			MaxShieldFrames:   200,
			VerticalVelocity:  8,
			MovesPerCycle:     5,
			MaxSameMove:       10,
			MinY:              50,
			MaxY:              510,
			ProjectileOffsetY: 60,
		},
		Projectiles: ProjectilesConfig{
			User:  ProjectileConfig{Sprite: SpriteConfig{Width: 40, Height: 12}, Velocity: 15},
			Enemy: ProjectileConfig{Sprite: SpriteConfig{Width: 30, Height: 18}, Velocity: -10},
			Boss:  ProjectileConfig{Sprite: SpriteConfig{Width: 60, Height: 50}, Velocity: -15, SpawnX: 700},
		},
		Levels: []LevelConfig{
			{
				ID:               "level-one",
				Name:             "Coastal Patrol",
				Variant:          VariantWaves,
				Enemy:            EnemyBasic,
				MaxEnemies:       5,
				SpawnProbability: 0.20,
				KillTarget:       8,
				PlayerHealth:     5,
				Next:             "level-two",
			},
			{
				ID:           "level-two",
				Name:         "The Flagship",
				Variant:      VariantBoss,
				PlayerHealth: 5,
				Next:         "level-three",
			},
			{
				ID:               "level-three",
				Name:             "Interceptor Storm",
				Variant:          VariantWaves,
				Enemy:            EnemyInterceptor,
				MaxEnemies:       5,
				SpawnProbability: 0.05,
				KillTarget:       15,
				PlayerHealth:     5,
				PowerUpEvery:     10,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "kills",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier: 1.0,
			},
		},
		Presentation: PresentationConfig{
			TransitionTicks: 40,
			PowerUpTicks:    60,
			HoldTicks:       10,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSkybattleYAML
}
