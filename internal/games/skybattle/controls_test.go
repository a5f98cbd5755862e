package skybattle

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/skybattle/internal/core"
)

type recordingCommander struct {
	calls []string
}

func (r *recordingCommander) MoveUp()         { r.calls = append(r.calls, "up") }
func (r *recordingCommander) MoveDown()       { r.calls = append(r.calls, "down") }
func (r *recordingCommander) MoveLeft()       { r.calls = append(r.calls, "left") }
func (r *recordingCommander) MoveRight()      { r.calls = append(r.calls, "right") }
func (r *recordingCommander) StopVertical()   { r.calls = append(r.calls, "stop-v") }
func (r *recordingCommander) StopHorizontal() { r.calls = append(r.calls, "stop-h") }
func (r *recordingCommander) Fire()           { r.calls = append(r.calls, "fire") }

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestControlsHoldEmulation(t *testing.T) {
	tests := []struct {
		name     string
		frames   []core.InputFrame
		expected []string
	}{
		{
			name:     "release after hold ticks",
			frames:   []core.InputFrame{frame(core.ActionUp), frame(), frame(), frame()},
			expected: []string{"up", "stop-v"},
		},
		{
			name:     "repeat keeps the direction held",
			frames:   []core.InputFrame{frame(core.ActionUp), frame(), frame(core.ActionUp), frame(), frame()},
			expected: []string{"up", "up"},
		},
		{
			name:     "axes are independent",
			frames:   []core.InputFrame{frame(core.ActionDown, core.ActionRight), frame(), frame(core.ActionRight), frame()},
			expected: []string{"down", "right", "right", "stop-v"},
		},
		{
			name:     "fire passes straight through",
			frames:   []core.InputFrame{frame(core.ActionFire), frame(core.ActionFire)},
			expected: []string{"fire", "fire"},
		},
		{
			name:     "no input issues nothing",
			frames:   []core.InputFrame{frame(), frame(), frame(), frame()},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewControls(3)
			rec := &recordingCommander{}
			for _, in := range tc.frames {
				c.Apply(in, rec)
			}
			if !reflect.DeepEqual(rec.calls, tc.expected) {
				t.Errorf("calls = %v, expected %v", rec.calls, tc.expected)
			}
		})
	}
}

func TestControlsReset(t *testing.T) {
	c := NewControls(0)
	rec := &recordingCommander{}
	c.Apply(frame(core.ActionLeft, core.ActionUp), rec)

	if v, h := c.Held(); v != -1 || h != -1 {
		t.Fatalf("Held() = (%d, %d), expected (-1, -1)", v, h)
	}

	c.Reset()
	c.Apply(frame(), rec)
	if len(rec.calls) != 2 {
		t.Errorf("after Reset no stop commands expected, got %v", rec.calls)
	}
}
