package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/halcyard/calmdeck/content"
	"github.com/halcyard/calmdeck/flip"
	"github.com/halcyard/calmdeck/haptic"
	"github.com/halcyard/calmdeck/input"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	haptics := haptic.NewService()
	haptics.Init(true)
	haptics.Start() // degrades to silent mode without an audio device
	t.Cleanup(func() { haptics.Stop() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApp(screen, content.BuiltinDeck(), cfg, haptics, logger)
}

func TestAppMountsAtRest(t *testing.T) {
	a := newTestApp(t)
	if a.widget.Phase() != flip.PhaseShowingFront {
		t.Errorf("Expected freshly mounted widget at ShowingFront, got %s", a.widget.Phase())
	}
}

func TestAppFlipGesture(t *testing.T) {
	a := newTestApp(t)

	if !a.handle(input.NewEvent(input.IntentFlip)) {
		t.Fatal("Expected flip gesture to keep the app running")
	}
	if a.widget.Phase() != flip.PhaseTransitioningToBack {
		t.Errorf("Expected flip gesture to start a transition, got %s", a.widget.Phase())
	}
}

func TestAppFavoriteGestureDoesNotFlip(t *testing.T) {
	a := newTestApp(t)

	a.handle(input.NewEvent(input.IntentFavorite))
	if a.widget.Phase() != flip.PhaseShowingFront {
		t.Errorf("Expected favorite gesture to leave phase untouched, got %s", a.widget.Phase())
	}
	if !a.deck.Current().Favorite {
		t.Error("Expected favorite gesture to toggle the deck's flag")
	}
}

func TestAppConsumedFlipGestureIsDropped(t *testing.T) {
	a := newTestApp(t)

	ev := input.NewEvent(input.IntentFlip)
	ev.Consume()
	a.handle(ev)

	if a.widget.Phase() != flip.PhaseShowingFront {
		t.Errorf("Expected consumed gesture to never reach Toggle, got %s", a.widget.Phase())
	}
}

func TestAppNavigationRemounts(t *testing.T) {
	a := newTestApp(t)

	a.handle(input.NewEvent(input.IntentFlip))
	first := a.widget

	a.handle(input.NewEvent(input.IntentNextCard))
	if a.widget == first {
		t.Error("Expected navigation to mount a fresh widget")
	}
	if a.widget.Phase() != flip.PhaseShowingFront {
		t.Errorf("Expected remounted widget at rest, got %s", a.widget.Phase())
	}
	if a.deck.Index() != 1 {
		t.Errorf("Expected deck cursor on card 1, got %d", a.deck.Index())
	}

	a.handle(input.NewEvent(input.IntentPrevCard))
	if a.deck.Index() != 0 {
		t.Errorf("Expected deck cursor back on card 0, got %d", a.deck.Index())
	}

	if first.Toggle() {
		t.Error("Expected unmounted widget to reject Toggle after teardown")
	}
}

func TestAppQuitGesture(t *testing.T) {
	a := newTestApp(t)
	if a.handle(input.NewEvent(input.IntentQuit)) {
		t.Error("Expected quit gesture to stop the app")
	}
}
