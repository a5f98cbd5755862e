package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybattle/internal/platform/tui"
	"github.com/vovakirdan/skybattle/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Sky Battle with a mode picker menu",
	Long: `Start Sky Battle in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a flight ends, B returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  skybattle menu
  skybattle menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	applyGameFlags()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("could not create game", "game", result.GameID, "error", err)
			continue
		}

		// Every flight from the menu gets a fresh seed unless one was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
