package storage

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func sampleRun() RunRecord {
	return RunRecord{
		GameID:        "skybattle",
		Outcome:       "won",
		StartLevel:    "level-one",
		LevelsCleared: 3,
		TotalKills:    24,
		Ticks:         4321,
		Levels: []LevelRecord{
			{ID: "level-one", Name: "Coastal Patrol", Outcome: "advance", Ticks: 900, Kills: 8, ShotsFired: 40, EnemiesSpawned: 12, Penetrations: 2, HitsTaken: 3},
			{ID: "level-two", Name: "The Flagship", Outcome: "advance", Ticks: 1200, Kills: 1, ShotsFired: 90, EnemiesSpawned: 1},
			{ID: "level-three", Name: "Interceptor Storm", Outcome: "win", Ticks: 2221, Kills: 15, ShotsFired: 120, EnemiesSpawned: 20, HitsTaken: 4},
		},
	}
}

func TestSaveRunAndLoad(t *testing.T) {
	store := openTestStore(t)

	run := sampleRun()
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("SaveRun() should assign an ID")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a stored run")
	}
	if got.ID != id || got.Outcome != "won" || got.TotalKills != 24 || got.Ticks != 4321 {
		t.Errorf("run = %+v", got)
	}
	if !reflect.DeepEqual(got.Levels, run.Levels) {
		t.Errorf("levels = %+v, expected %+v", got.Levels, run.Levels)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	run := sampleRun()
	run.ID = uuid.New()
	id, err := store.SaveRun(run)
	if err != nil || id != run.ID {
		t.Fatalf("SaveRun() = %v, %v; expected %v", id, err, run.ID)
	}

	if _, err := store.SaveRun(run); err == nil {
		t.Error("saving the same ID twice should fail")
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.New())
	if err != nil || got != nil {
		t.Errorf("RunByID() on unknown id = %v, %v; expected nil, nil", got, err)
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		run := sampleRun()
		run.TotalKills = i
		if _, err := store.SaveRun(run); err != nil {
			t.Fatal(err)
		}
	}
	boss := sampleRun()
	boss.GameID = "skybattle_boss"
	boss.Levels = nil
	if _, err := store.SaveRun(boss); err != nil {
		t.Fatal(err)
	}

	runs, err := store.RecentRuns("skybattle", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 skybattle runs, got %d", len(runs))
	}
	if runs[0].TotalKills != 2 {
		t.Errorf("newest run should come first, got kills %d", runs[0].TotalKills)
	}

	all, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].GameID != "skybattle_boss" {
		t.Errorf("empty game id should list every game, newest first: %+v", all)
	}
	if len(all[0].Levels) != 0 {
		t.Error("run without levels should decode to no levels")
	}
}
