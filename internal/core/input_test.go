package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionPause)

	got := f.Actions()
	want := []Action{ActionUp, ActionLeft, ActionPause}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	f.Clear()
	if len(f.Actions()) != 0 {
		t.Errorf("Actions() after Clear = %v", f.Actions())
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleObstacles.String() != "ToggleObstacles" {
		t.Errorf("String() = %q", ActionToggleObstacles.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("String() for unknown action = %q", Action(999).String())
	}
}
