package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/games/skybattle"
	"github.com/vovakirdan/skybattle/internal/platform/tui"
	"github.com/vovakirdan/skybattle/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagBoss       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the campaign",
	Long: `Start the Sky Battle campaign in this terminal.

Controls:
  W/S/Up/Down     - Climb/Dive
  A/D/Left/Right  - Back/Forward
  Space/F         - Fire
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - More health, thinner waves, no spawn ramp
  normal - Spawn ramp starting at 30%
  hard   - Less health, denser waves, ramp starting at 70%
  fixed  - No spawn ramp

Examples:
  skybattle play
  skybattle play --level level-three
  skybattle play --boss --difficulty hard
  skybattle play --config ./my-skybattle.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagBoss, "boss", false, "Skip straight to the flagship fight")
}

// addGameFlags registers the flags that shape a campaign.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to start from (see 'skybattle levels')")
}

func applyGameFlags() {
	skybattle.SetConfigPath(flagConfig)
	skybattle.SetDifficultyPreset(flagDifficulty)
	skybattle.SetStartLevel(flagLevel)
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID := "skybattle"
	if flagBoss {
		gameID = "skybattle_boss"
	}

	applyGameFlags()
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if g, ok := game.(*skybattle.Game); ok {
		printReport(g.Report())
	}
	return nil
}
