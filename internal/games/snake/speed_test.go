package snake

import (
	"testing"
	"time"
)

func TestSpeedEndpoints(t *testing.T) {
	if got := SpeedToInterval(1, 1, 10); got != 220*time.Millisecond {
		t.Errorf("min speed = %v, want 220ms", got)
	}
	if got := SpeedToInterval(10, 1, 10); got != 70*time.Millisecond {
		t.Errorf("max speed = %v, want 70ms", got)
	}
}

func TestSpeedMonotonic(t *testing.T) {
	prev := SpeedToInterval(1, 1, 10)
	for v := 2; v <= 10; v++ {
		cur := SpeedToInterval(v, 1, 10)
		if cur > prev {
			t.Errorf("interval grew from %v to %v at value %d", prev, cur, v)
		}
		prev = cur
	}
}

func TestSpeedEqualBounds(t *testing.T) {
	if got := SpeedToInterval(3, 3, 3); got != 220*time.Millisecond {
		t.Errorf("zero-width range = %v, want 220ms", got)
	}
}

func TestSpeedLabel(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{1, "Snail"},
		{5, "Medium"},
		{10, "Lightning"},
		{0, "Medium"},
		{42, "Medium"},
	}
	for _, tt := range tests {
		if got := SpeedLabel(tt.value, 1); got != tt.want {
			t.Errorf("SpeedLabel(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestClock(t *testing.T) {
	var c Clock
	c.SetInterval(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	if c.Due(t0) {
		t.Fatal("stopped clock is due")
	}

	c.Start()
	if !c.Due(t0) {
		t.Fatal("fresh clock should fire immediately")
	}
	c.Fire(t0)
	if c.Due(t0.Add(99 * time.Millisecond)) {
		t.Error("due before the interval elapsed")
	}
	if !c.Due(t0.Add(100 * time.Millisecond)) {
		t.Error("not due after a full interval")
	}

	c.Reset()
	if !c.Due(t0.Add(time.Millisecond)) {
		t.Error("reset clock should fire immediately")
	}

	c.Stop()
	if c.Running() || c.Due(t0.Add(time.Hour)) {
		t.Error("stopped clock still running")
	}

	t1 := t0.Add(time.Second)
	c.StartAt(t1)
	if c.Due(t1.Add(50 * time.Millisecond)) {
		t.Error("StartAt should wait a full interval")
	}
	if !c.Due(t1.Add(100 * time.Millisecond)) {
		t.Error("StartAt not due after a full interval")
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Left, Right}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%v and %v are not opposites", p[0], p[1])
		}
		if !p[0].IsOpposite(p[1]) {
			t.Errorf("IsOpposite(%v, %v) = false", p[0], p[1])
		}
	}
	if Up.IsOpposite(Left) {
		t.Error("a 90 degree turn is not a reversal")
	}
}
