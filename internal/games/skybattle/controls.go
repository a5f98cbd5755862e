package skybattle

import (
	"github.com/vovakirdan/skybattle/internal/core"
	"github.com/vovakirdan/skybattle/internal/games/skybattle/level"
)

// Controls turns key presses into player commands.
//
// Terminals report key repeats but no releases, so a direction counts as
// held while it keeps repeating. Once it has been quiet for holdTicks
// ticks the matching Stop command is issued.
type Controls struct {
	holdTicks int

	vertical   int // -1 up, 1 down
	horizontal int // -1 left, 1 right
	vIdle      int
	hIdle      int
}

// NewControls creates a control mapper. holdTicks below 1 is treated as 1.
func NewControls(holdTicks int) *Controls {
	return &Controls{holdTicks: max(holdTicks, 1)}
}

// Apply issues the commands for one input frame.
func (c *Controls) Apply(in core.InputFrame, cmd level.Commander) {
	switch {
	case in.Has(core.ActionUp):
		cmd.MoveUp()
		c.vertical, c.vIdle = -1, 0
	case in.Has(core.ActionDown):
		cmd.MoveDown()
		c.vertical, c.vIdle = 1, 0
	case c.vertical != 0:
		c.vIdle++
		if c.vIdle >= c.holdTicks {
			cmd.StopVertical()
			c.vertical, c.vIdle = 0, 0
		}
	}

	switch {
	case in.Has(core.ActionLeft):
		cmd.MoveLeft()
		c.horizontal, c.hIdle = -1, 0
	case in.Has(core.ActionRight):
		cmd.MoveRight()
		c.horizontal, c.hIdle = 1, 0
	case c.horizontal != 0:
		c.hIdle++
		if c.hIdle >= c.holdTicks {
			cmd.StopHorizontal()
			c.horizontal, c.hIdle = 0, 0
		}
	}

	if in.Has(core.ActionFire) {
		cmd.Fire()
	}
}

// Reset forgets held directions.
func (c *Controls) Reset() {
	c.vertical, c.horizontal = 0, 0
	c.vIdle, c.hIdle = 0, 0
}

// Held returns the directions currently considered held.
func (c *Controls) Held() (vertical, horizontal int) {
	return c.vertical, c.horizontal
}
