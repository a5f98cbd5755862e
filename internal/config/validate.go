package config

import (
	"errors"
	"fmt"
)

// Validate reports the first inconsistency found in the configuration.
func (c SkybattleConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field: size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.Field.EnemyMaxY() <= 0 {
		return fmt.Errorf("field: enemy_band_adjust %g leaves no spawn band", c.Field.EnemyBandAdjust)
	}
	if c.Player.MinX > c.Player.MaxX || c.Player.MinY > c.Player.MaxY {
		return errors.New("player: bounds are inverted")
	}
	if err := validateEnemy("enemy", c.Enemy); err != nil {
		return err
	}
	if err := validateEnemy("interceptor", c.Interceptor); err != nil {
		return err
	}
	if err := c.Boss.validate(); err != nil {
		return err
	}
	if len(c.Levels) == 0 {
		return errors.New("levels: at least one level is required")
	}

	seen := make(map[string]bool, len(c.Levels))
	for _, l := range c.Levels {
		if l.ID == "" {
			return errors.New("levels: level without id")
		}
		if seen[l.ID] {
			return fmt.Errorf("levels: duplicate id %q", l.ID)
		}
		seen[l.ID] = true
	}
	for _, l := range c.Levels {
		if err := c.validateLevel(l, seen); err != nil {
			return fmt.Errorf("level %q: %w", l.ID, err)
		}
	}
	return nil
}

func (c SkybattleConfig) validateLevel(l LevelConfig, ids map[string]bool) error {
	if l.PlayerHealth <= 0 {
		return fmt.Errorf("player_health must be positive, got %d", l.PlayerHealth)
	}
	if l.Next != "" && !ids[l.Next] {
		return fmt.Errorf("next level %q is not defined", l.Next)
	}
	if l.Next == l.ID {
		return errors.New("level cannot lead to itself")
	}
	switch l.Variant {
	case VariantWaves:
		if _, ok := c.EnemyKind(l.Enemy); !ok {
			return fmt.Errorf("unknown enemy kind %q", l.Enemy)
		}
		if l.MaxEnemies <= 0 {
			return fmt.Errorf("max_enemies must be positive, got %d", l.MaxEnemies)
		}
		if l.KillTarget <= 0 {
			return fmt.Errorf("kill_target must be positive, got %d", l.KillTarget)
		}
		if err := probability("spawn_probability", l.SpawnProbability); err != nil {
			return err
		}
	case VariantBoss:
		if l.BossHealth < 0 {
			return fmt.Errorf("boss_health must not be negative, got %d", l.BossHealth)
		}
	default:
		return fmt.Errorf("unknown variant %q", l.Variant)
	}
	if l.PowerUpEvery < 0 {
		return fmt.Errorf("power_up_every must not be negative, got %d", l.PowerUpEvery)
	}
	return nil
}

func validateEnemy(name string, e EnemyConfig) error {
	if e.Health <= 0 {
		return fmt.Errorf("%s: health must be positive, got %d", name, e.Health)
	}
	if err := probability(name+": fire_rate", e.FireRate); err != nil {
		return err
	}
	return nil
}

func (b BossConfig) validate() error {
	if b.Health <= 0 {
		return fmt.Errorf("boss: health must be positive, got %d", b.Health)
	}
	if err := probability("boss: fire_rate", b.FireRate); err != nil {
		return err
	}
	if err := probability("boss: shield_probability", b.ShieldProbability); err != nil {
		return err
	}
	if b.MaxShieldFrames <= 0 || b.MaxSameMove <= 0 || b.MovesPerCycle <= 0 {
		return errors.New("boss: max_shield_frames, max_same_move and moves_per_cycle must be positive")
	}
	if b.MinY > b.MaxY {
		return errors.New("boss: vertical band is inverted")
	}
	return nil
}

func probability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %g", name, p)
	}
	return nil
}
