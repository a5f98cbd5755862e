package tui

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/skybattle/internal/games/skybattle/campaign"
	"github.com/vovakirdan/skybattle/internal/registry"
	"github.com/vovakirdan/skybattle/internal/storage"
)

// RunReporter is implemented by games that keep a campaign record.
type RunReporter interface {
	Report() campaign.Report
}

// runRecord converts a finished campaign into its stored form.
func runRecord(gameID string, r campaign.Report) storage.RunRecord {
	levels := make([]storage.LevelRecord, 0, len(r.Levels))
	for _, l := range r.Levels {
		levels = append(levels, storage.LevelRecord{
			ID:             l.ID,
			Name:           l.Name,
			Outcome:        l.Outcome,
			Ticks:          l.Ticks,
			Kills:          l.Kills,
			ShotsFired:     l.ShotsFired,
			EnemiesSpawned: l.EnemiesSpawned,
			Penetrations:   l.Penetrations,
			HitsTaken:      l.HitsTaken,
		})
	}
	return storage.RunRecord{
		GameID:        gameID,
		Outcome:       r.Phase.String(),
		StartLevel:    r.StartLevel,
		LevelsCleared: r.LevelsCleared,
		TotalKills:    r.TotalKills,
		Ticks:         r.Ticks,
		Levels:        levels,
	}
}

// SaveResult stores a finished game's score and, for games that keep a
// campaign record, the run. The run ID is uuid.Nil when there is none.
func SaveResult(store *storage.Store, game registry.Game) (uuid.UUID, error) {
	if score := game.State().Score; score > 0 {
		if _, err := store.SaveScore(game.ID(), score); err != nil {
			return uuid.Nil, fmt.Errorf("save score: %w", err)
		}
	}
	r, ok := game.(RunReporter)
	if !ok {
		return uuid.Nil, nil
	}
	id, err := store.SaveRun(runRecord(game.ID(), r.Report()))
	if err != nil {
		return uuid.Nil, fmt.Errorf("save run: %w", err)
	}
	return id, nil
}
