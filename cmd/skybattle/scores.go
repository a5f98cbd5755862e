package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybattle/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 kill counts and the most recent campaign runs.

The game defaults to the campaign; pass skybattle_boss for boss rush.

Examples:
  skybattle scores
  skybattle scores skybattle_boss --runs 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "skybattle"
	if len(args) == 1 {
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", gameID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Kills", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		if best, err := store.HighScore(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-6s  %-5s  %-6s  %s\n", "Date", "Result", "Levels", "Kills", "Ticks", "ID")
	fmt.Printf("  %-16s  %-8s  %-6s  %-5s  %-6s  %s\n", "----", "------", "------", "-----", "-----", "--")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %-6d  %-5d  %-6d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.LevelsCleared, r.TotalKills, r.Ticks, r.ID)
	}
	return nil
}
