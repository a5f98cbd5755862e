package main

import (
	"fmt"

	"github.com/vovakirdan/skybattle/internal/games/skybattle/campaign"
)

// printReport writes the end-of-run summary to stdout.
func printReport(r campaign.Report) {
	fmt.Printf("Result: %s\n", r.Phase)
	fmt.Printf("Levels cleared: %d  Kills: %d  Ticks: %d\n", r.LevelsCleared, r.TotalKills, r.Ticks)
	if r.Err != nil {
		fmt.Printf("Error: %v\n", r.Err)
	}
	if len(r.Levels) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-12s  %-20s  %-9s  %6s  %5s  %5s  %4s\n", "Level", "Name", "Outcome", "Ticks", "Kills", "Shots", "Hits")
	fmt.Printf("  %-12s  %-20s  %-9s  %6s  %5s  %5s  %4s\n", "-----", "----", "-------", "-----", "-----", "-----", "----")
	for _, l := range r.Levels {
		fmt.Printf("  %-12s  %-20s  %-9s  %6d  %5d  %5d  %4d\n",
			l.ID, l.Name, l.Outcome, l.Ticks, l.Kills, l.ShotsFired, l.HitsTaken)
	}
}
