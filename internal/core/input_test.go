package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionFire)
	if !f.Has(ActionUp) || !f.Has(ActionFire) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("unset action should not be reported")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionFire, "Fire"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
