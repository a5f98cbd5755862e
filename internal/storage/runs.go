package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// LevelRecord is one level of a stored run.
type LevelRecord struct {
	ID             string `msgpack:"id"`
	Name           string `msgpack:"name"`
	Outcome        string `msgpack:"outcome"`
	Ticks          uint64 `msgpack:"ticks"`
	Kills          int    `msgpack:"kills"`
	ShotsFired     int    `msgpack:"shots"`
	EnemiesSpawned int    `msgpack:"spawned"`
	Penetrations   int    `msgpack:"penetrations"`
	HitsTaken      int    `msgpack:"hits"`
}

// RunRecord is a finished campaign. Levels are stored as a msgpack blob.
type RunRecord struct {
	ID            uuid.UUID
	GameID        string
	Outcome       string // "won", "lost" or "failed"
	StartLevel    string
	LevelsCleared int
	TotalKills    int
	Ticks         uint64
	Levels        []LevelRecord
	CreatedAt     time.Time
}

const runColumns = `id, game_id, outcome, start_level, levels_cleared, total_kills, ticks, levels, created_at`

// SaveRun stores a run. A zero ID is replaced with a fresh one; the ID
// used is returned.
func (s *Store) SaveRun(run RunRecord) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	blob, err := msgpack.Marshal(run.Levels)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot encode run levels: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, game_id, outcome, start_level, levels_cleared, total_kills, ticks, levels)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.GameID,
		run.Outcome,
		run.StartLevel,
		run.LevelsCleared,
		run.TotalKills,
		int64(run.Ticks), //#nosec G115 -- tick counts stay far below 2^63
		blob,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RunByID retrieves a run. Returns nil, nil when there is no such run.
func (s *Store) RunByID(id uuid.UUID) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id.String())
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs, newest first. An empty
// gameID lists runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunRecord, error) {
	var (
		run       RunRecord
		id        string
		ticks     int64
		blob      []byte
		createdAt any
	)
	err := row.Scan(&id, &run.GameID, &run.Outcome, &run.StartLevel,
		&run.LevelsCleared, &run.TotalKills, &ticks, &blob, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan run: %w", err)
	}

	if run.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
	}
	if len(blob) > 0 {
		if err := msgpack.Unmarshal(blob, &run.Levels); err != nil {
			return nil, fmt.Errorf("storage: cannot decode run %s levels: %w", id, err)
		}
	}
	run.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	run.CreatedAt = parseTimestamp(createdAt)
	return &run, nil
}
