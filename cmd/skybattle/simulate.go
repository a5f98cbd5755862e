package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/games/skybattle"
	"github.com/vovakirdan/skybattle/internal/platform/tui"
)

var (
	flagTicks     int
	flagFireEvery int
	flagSweep     int
	flagSave      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot campaign",
	Long: `Fly the campaign without a terminal using a scripted autopilot
that fires on a fixed rhythm and sweeps up and down. The same seed always
produces the same flight, so the printed hash can be compared between
runs and builds.

Examples:
  skybattle simulate --seed 42
  skybattle simulate --seed 7 --ticks 5000 --fire-every 2
  skybattle simulate --boss --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().BoolVar(&flagBoss, "boss", false, "Skip straight to the flagship fight")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Maximum number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 3, "Autopilot fires every N ticks (0 = never)")
	simulateCmd.Flags().IntVar(&flagSweep, "sweep", 25, "Autopilot ticks per vertical sweep (0 = hold still)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store the result in the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	applyGameFlags()

	g := skybattle.New()
	if flagBoss {
		g = skybattle.NewBossRush()
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	snap := skybattle.Fly(g, skybattle.NewAutopilot(flagFireEvery, flagSweep), flagTicks)
	report := g.Report()

	fmt.Printf("Seed: %d  Ticks: %d  State: %s  Hash: %016x\n", seed, snap.Tick, snap.State, snap.Hash())
	fmt.Printf("Level: %s  Health: %d  Kills: %d/%d total\n", snap.Level, snap.Health, snap.LevelKills, snap.TotalKills)
	if snap.BossHealth > 0 {
		fmt.Printf("Boss health: %d  Shielded: %v\n", snap.BossHealth, snap.BossShielded)
	}
	fmt.Println()
	printReport(report)

	if flagSave && g.State().GameOver {
		store := openStore()
		if store == nil {
			return fmt.Errorf("cannot save: database unavailable")
		}
		defer store.Close()
		id, err := tui.SaveResult(store, g)
		if err != nil {
			return err
		}
		fmt.Printf("\nSaved run %s\n", id)
	}
	return nil
}
