package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybattle/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows the levels of the campaign in flight order, as loaded from
the built-in defaults or a custom config.

Examples:
  skybattle levels
  skybattle levels --config ./my-skybattle.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadSkybattle(flagConfig)
	if err != nil {
		return err
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range cfg.Levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Campaign:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-20s  %s\n", maxIDLen, "ID", "Variant", "Name", "Goal")
	fmt.Printf("  %-*s  %-7s  %-20s  %s\n", maxIDLen, "--", "-------", "----", "----")

	// Follow the chain from the first level; levels off the chain are
	// listed afterwards.
	seen := make(map[string]bool)
	for id := cfg.FirstLevel(); id != "" && !seen[id]; {
		l, ok := cfg.Level(id)
		if !ok {
			break
		}
		seen[id] = true
		printLevel(maxIDLen, l, cfg.Boss.Health)
		id = l.Next
	}
	for _, l := range cfg.Levels {
		if !seen[l.ID] {
			printLevel(maxIDLen, l, cfg.Boss.Health)
		}
	}

	fmt.Println()
	fmt.Println("Run 'skybattle play --level <id>' to start from a level.")
	return nil
}

func printLevel(idWidth int, l config.LevelConfig, defaultBossHealth int) {
	goal := fmt.Sprintf("%d kills of %s", l.KillTarget, l.Enemy)
	if l.Variant == config.VariantBoss {
		health := l.BossHealth
		if health == 0 {
			health = defaultBossHealth
		}
		goal = fmt.Sprintf("flagship, %d hits", health)
	}
	if l.Next == "" {
		goal += " (final)"
	}
	fmt.Printf("  %-*s  %-7s  %-20s  %s\n", idWidth, l.ID, l.Variant, l.Name, goal)
}
