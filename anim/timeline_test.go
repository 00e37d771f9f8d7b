package anim

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTimelineProgressMonotonic(t *testing.T) {
	tl := NewTimeline()
	if !tl.Start(epoch, ToBack, 600*time.Millisecond, nil) {
		t.Fatal("Expected Start to accept on an idle timeline")
	}

	steps := []time.Duration{
		0,
		100 * time.Millisecond,
		150 * time.Millisecond,
		150 * time.Millisecond, // repeated frame time
		300 * time.Millisecond,
		450 * time.Millisecond,
	}

	last := -1.0
	for _, d := range steps {
		tl.Advance(epoch.Add(d))
		p := tl.Progress()
		if p < last {
			t.Errorf("Progress decreased from %v to %v at t=%v", last, p, d)
		}
		if p < 0 || p >= 1 {
			t.Errorf("Expected mid-transition progress in [0,1), got %v at t=%v", p, d)
		}
		last = p
	}

	if !tl.Running() {
		t.Error("Expected timeline to still be running before duration elapsed")
	}
}

func TestTimelineCompletionFiresOnce(t *testing.T) {
	tl := NewTimeline()

	completions := 0
	var observed float64
	tl.Start(epoch, ToBack, 600*time.Millisecond, func() {
		completions++
		observed = tl.Progress()
	})

	tl.Advance(epoch.Add(600 * time.Millisecond))
	tl.Advance(epoch.Add(700 * time.Millisecond))
	tl.Advance(epoch.Add(time.Hour))

	if completions != 1 {
		t.Errorf("Expected exactly 1 completion, got %d", completions)
	}
	if observed != 1 {
		t.Errorf("Expected progress to be exactly 1 inside completion, got %v", observed)
	}
	if tl.Progress() != 0 {
		t.Errorf("Expected progress to reset to 0 after completion, got %v", tl.Progress())
	}
	if tl.Running() {
		t.Error("Expected timeline to be at rest after completion")
	}
}

func TestTimelineRejectsOverlappingStart(t *testing.T) {
	tl := NewTimeline()
	tl.Start(epoch, ToBack, 600*time.Millisecond, nil)

	if tl.Start(epoch.Add(100*time.Millisecond), ToFront, 600*time.Millisecond, nil) {
		t.Error("Expected Start to be rejected while a transition is in flight")
	}
	if tl.Direction() != ToBack {
		t.Errorf("Expected in-flight direction to stay ToBack, got %v", tl.Direction())
	}
}

func TestTimelineCancelDropsCompletion(t *testing.T) {
	tl := NewTimeline()

	fired := false
	tl.Start(epoch, ToBack, 600*time.Millisecond, func() { fired = true })
	tl.Advance(epoch.Add(300 * time.Millisecond))

	tl.Cancel()

	tl.Advance(epoch.Add(time.Hour))
	if fired {
		t.Error("Expected no completion callback after Cancel")
	}
	if tl.Progress() != 0 {
		t.Errorf("Expected progress 0 after Cancel, got %v", tl.Progress())
	}
	if tl.Running() {
		t.Error("Expected timeline at rest after Cancel")
	}
}

func TestTimelineZeroDurationCompletesImmediately(t *testing.T) {
	tl := NewTimeline()

	completions := 0
	tl.Start(epoch, ToBack, 0, func() { completions++ })
	tl.Advance(epoch)

	if completions != 1 {
		t.Errorf("Expected immediate completion for zero duration, got %d completions", completions)
	}
}

func TestTimelineRestartAfterCompletion(t *testing.T) {
	tl := NewTimeline()

	tl.Start(epoch, ToBack, 100*time.Millisecond, nil)
	tl.Advance(epoch.Add(100 * time.Millisecond))

	if !tl.Start(epoch.Add(time.Second), ToFront, 100*time.Millisecond, nil) {
		t.Fatal("Expected Start to accept after previous transition settled")
	}
	if tl.Direction() != ToFront {
		t.Errorf("Expected direction ToFront, got %v", tl.Direction())
	}
	if tl.Progress() != 0 {
		t.Errorf("Expected fresh transition to begin at 0, got %v", tl.Progress())
	}
}

func TestPulseDipsAndRecovers(t *testing.T) {
	p := NewPulse(100*time.Millisecond, 200*time.Millisecond, 0.95)

	if p.Scale() != 1.0 {
		t.Errorf("Expected rest scale 1.0, got %v", p.Scale())
	}

	p.Start(epoch)

	p.Advance(epoch.Add(50 * time.Millisecond))
	if p.Scale() >= 1.0 || p.Scale() <= 0.95 {
		t.Errorf("Expected mid-dip scale in (0.95, 1.0), got %v", p.Scale())
	}

	p.Advance(epoch.Add(200 * time.Millisecond))
	if p.Scale() >= 1.0 || p.Scale() <= 0.95 {
		t.Errorf("Expected mid-recovery scale in (0.95, 1.0), got %v", p.Scale())
	}

	p.Advance(epoch.Add(300 * time.Millisecond))
	if p.Scale() != 1.0 {
		t.Errorf("Expected scale to recover to exactly 1.0, got %v", p.Scale())
	}
	if p.Running() {
		t.Error("Expected pulse to be finished")
	}
}

func TestPulseCancelSnapsToRest(t *testing.T) {
	p := NewPulse(100*time.Millisecond, 200*time.Millisecond, 0.95)
	p.Start(epoch)
	p.Advance(epoch.Add(80 * time.Millisecond))

	p.Cancel()

	if p.Running() {
		t.Error("Expected pulse stopped after Cancel")
	}
	if p.Scale() != 1.0 {
		t.Errorf("Expected scale 1.0 after Cancel, got %v", p.Scale())
	}
}
