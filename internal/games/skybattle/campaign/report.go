package campaign

// LevelSummary records how one level went.
type LevelSummary struct {
	ID             string
	Name           string
	Outcome        string
	Ticks          uint64
	Kills          int
	ShotsFired     int
	EnemiesSpawned int
	Penetrations   int
	HitsTaken      int
}

// Report is the end-of-run summary of a campaign.
type Report struct {
	Phase         Phase
	StartLevel    string
	LevelsCleared int
	TotalKills    int
	Ticks         uint64
	Levels        []LevelSummary
	Err           error
}

// Report summarizes the campaign so far.
func (c *Campaign) Report() Report {
	return Report{
		Phase:         c.phase,
		StartLevel:    c.opts.Start,
		LevelsCleared: c.LevelsCleared(),
		TotalKills:    c.TotalKills(),
		Ticks:         c.ticks,
		Levels:        append([]LevelSummary(nil), c.levels...),
		Err:           c.err,
	}
}
