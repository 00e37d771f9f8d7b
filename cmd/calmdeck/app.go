package main

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/halcyard/calmdeck/card"
	"github.com/halcyard/calmdeck/config"
	"github.com/halcyard/calmdeck/engine"
	"github.com/halcyard/calmdeck/flip"
	"github.com/halcyard/calmdeck/haptic"
	"github.com/halcyard/calmdeck/input"
	"github.com/halcyard/calmdeck/parameter"
	"github.com/halcyard/calmdeck/render"
)

// app wires the deck, flip engine, renderer and input routing into the
// frame loop. Each card gets a fresh flip engine on mount; navigation
// unmounts the old one, which cancels its timers and timelines.
type app struct {
	screen   tcell.Screen
	deck     *card.Deck
	cfg      *config.Config
	haptics  *haptic.HapticService
	logger   *slog.Logger
	clock    engine.Clock
	renderer *render.Renderer

	widget *flip.Engine
}

func newApp(screen tcell.Screen, deck *card.Deck, cfg *config.Config, haptics *haptic.HapticService, logger *slog.Logger) *app {
	a := &app{
		screen:   screen,
		deck:     deck,
		cfg:      cfg,
		haptics:  haptics,
		logger:   logger,
		clock:    engine.NewMonotonicClock(),
		renderer: render.NewRenderer(screen),
	}
	a.mount()
	return a
}

// mount creates the flip engine for the current card. Phase and progress
// start at rest; the auto-flip scheduler arms from this instant.
func (a *app) mount() {
	c := a.deck.Current()
	a.widget = flip.New(a.clock, flip.Config{
		Duration:      time.Duration(a.cfg.Flip.DurationMs) * time.Millisecond,
		AutoFlip:      a.cfg.Flip.AutoFlip && c.HasBack(),
		AutoFlipDelay: time.Duration(a.cfg.Flip.AutoFlipDelayMs) * time.Millisecond,
		Haptic:        a.haptics.Adapter(),
		OnFlip: func(isShowingBack bool) {
			a.deck.RecordFlip()
			a.logger.Debug("flip settled", "card", c.ID, "back", isShowingBack)
		},
		OnFavorite: func() {
			fav := a.deck.ToggleFavorite()
			a.logger.Debug("favorite toggled", "card", c.ID, "favorite", fav)
		},
	})
}

// unmount tears the current widget down, releasing its timer and any
// in-flight transition before the card changes
func (a *app) unmount() {
	if a.widget != nil {
		a.widget.Teardown()
		a.widget = nil
	}
}

func (a *app) run() {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frames := engine.NewFrameTicker(parameter.FrameInterval)
	frames.Start()
	defer frames.Stop()
	defer a.unmount()

	a.draw()
	for {
		select {
		case now := <-frames.Frames():
			a.widget.Advance(now)
			a.draw()

		case tev := <-events:
			ev := input.Translate(tev, a.renderer)
			if ev == nil {
				continue
			}
			if !a.handle(ev) {
				return
			}
		}
	}
}

// handle routes one gesture; returns false to quit
func (a *app) handle(ev *input.Event) bool {
	switch ev.Intent {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		a.screen.Sync()

	case input.IntentFavorite:
		// The favorite control owns its gesture outright: Favorite
		// consumes the event, so it can never fall through to the flip
		// entry point below
		a.widget.Favorite(ev)

	case input.IntentFlip:
		if !ev.Consumed() {
			a.widget.Toggle()
		}

	case input.IntentNextCard:
		a.unmount()
		a.deck.Next()
		a.mount()

	case input.IntentPrevCard:
		a.unmount()
		a.deck.Prev()
		a.mount()

	case input.IntentToggleMute:
		a.haptics.SetMuted(!a.haptics.Muted())
	}

	a.draw()
	return true
}

func (a *app) draw() {
	now := a.clock.Now()
	a.renderer.Draw(a.deck.Current(), a.widget.Phase(), a.widget.Surface(), render.Status{
		Index:         a.deck.Index(),
		Total:         a.deck.Len(),
		FlipCount:     a.deck.FlipCount(),
		Muted:         a.haptics.Muted(),
		AutoFlipArmed: a.widget.AutoFlipPending(),
		AutoFlipIn:    a.widget.AutoFlipRemaining(now),
	})
}
