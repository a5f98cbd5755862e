package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const skybattleFile = "skybattle.yaml"

// LoadSkybattle loads the Sky Battle configuration.
// Search order: customPath -> ~/.skybattle/configs/skybattle.yaml ->
// ./configs/skybattle.yaml -> embedded default -> DefaultSkybattleConfig.
//
// Files are decoded on top of the built-in defaults, so a file only needs
// the keys it changes. A custom path that cannot be read, parsed or
// validated is an error; the implicit locations are skipped when broken.
func LoadSkybattle(customPath string) (SkybattleConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readSkybattle(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(skybattleFile),
		filepath.Join("configs", skybattleFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readSkybattle(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultSkybattleConfig()
	if err := yaml.Unmarshal(defaultSkybattleYAML, &cfg); err != nil {
		return DefaultSkybattleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readSkybattle(path string) (SkybattleConfig, error) {
	cfg := DefaultSkybattleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skybattle", "configs", filename)
}

// ApplySkybattlePreset modifies the config based on a difficulty preset.
// Easy gives the player more health, thins out the waves and turns the
// spawn ramp off. Normal ramps from 30%. Hard takes health away, thickens
// the waves and ramps from 70%.
func ApplySkybattlePreset(cfg *SkybattleConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	switch preset {
	case DifficultyEasy:
		for i := range cfg.Levels {
			cfg.Levels[i].PlayerHealth += 2
			cfg.Levels[i].SpawnProbability *= 0.75
		}
		cfg.Difficulty.Enabled = false
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		for i := range cfg.Levels {
			cfg.Levels[i].PlayerHealth = max(1, cfg.Levels[i].PlayerHealth-2)
			cfg.Levels[i].SpawnProbability = min(1, cfg.Levels[i].SpawnProbability*1.5)
		}
		cfg.Boss.ShieldProbability *= 2
		cfg.Difficulty.Enabled = true
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
