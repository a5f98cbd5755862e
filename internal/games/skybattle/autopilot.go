package skybattle

import "github.com/vovakirdan/skybattle/internal/core"

// Autopilot is a scripted pilot for headless runs. It fires every
// FireEvery ticks and sweeps down and up, SweepTicks ticks each way.
type Autopilot struct {
	FireEvery  int
	SweepTicks int
	tick       int
}

// NewAutopilot creates a pilot with the given rhythm.
func NewAutopilot(fireEvery, sweepTicks int) *Autopilot {
	return &Autopilot{FireEvery: fireEvery, SweepTicks: sweepTicks}
}

// Next returns the input for the next tick.
func (a *Autopilot) Next() core.InputFrame {
	a.tick++
	in := core.NewInputFrame()
	if a.FireEvery > 0 && a.tick%a.FireEvery == 0 {
		in.Set(core.ActionFire)
	}
	if a.SweepTicks > 0 {
		if (a.tick/a.SweepTicks)%2 == 0 {
			in.Set(core.ActionDown)
		} else {
			in.Set(core.ActionUp)
		}
	}
	return in
}

// Fly steps the game with the pilot's input until the campaign ends or
// maxTicks ticks have run, and returns the final snapshot.
func Fly(g *Game, pilot *Autopilot, maxTicks int) Snapshot {
	for i := 0; i < maxTicks; i++ {
		if res := g.Step(pilot.Next()); res.State.GameOver {
			break
		}
	}
	return g.Snapshot()
}
