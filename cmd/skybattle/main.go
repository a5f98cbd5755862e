// skybattle is a side-scrolling air combat game for the terminal.
//
// Usage:
//
//	skybattle play             - Fly the campaign
//	skybattle play --boss      - Skip straight to the flagship
//	skybattle menu             - Pick a mode interactively
//	skybattle levels           - List the campaign levels
//	skybattle simulate         - Run a headless autopilot campaign
//	skybattle serve            - Start SSH server for remote play
//	skybattle scores           - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 20)
//	--seed <value>       - Set RNG seed for reproducible flights
//	--db <path>          - Set database path (default: ~/.skybattle/skybattle.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybattle/internal/games/skybattle"
	"github.com/vovakirdan/skybattle/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skybattle",
	Short: "Sky Battle - air combat in your terminal",
	Long: `Sky Battle is a side-scrolling air combat game. Clear the coastal
patrol, bring down the flagship, then survive the interceptors.

Available commands:
  play      - Fly the campaign directly
  menu      - Interactive mode picker
  levels    - List the campaign levels
  simulate  - Headless autopilot run
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs

Examples:
  skybattle play
  skybattle play --level level-two --difficulty hard
  skybattle simulate --seed 42
  skybattle serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skybattle",
			Level:           level,
		})
		skybattle.SetLogger(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openStore opens the score database, returning nil when it is unusable.
// The game still works without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
