package flip

import (
	"time"

	"github.com/halcyard/calmdeck/anim"
	"github.com/halcyard/calmdeck/engine"
	"github.com/halcyard/calmdeck/haptic"
	"github.com/halcyard/calmdeck/input"
	"github.com/halcyard/calmdeck/parameter"
)

// Config is the constructor surface of the flip engine. Everything except
// the clock is optional; zero values fall back to the package defaults.
type Config struct {
	// Duration of the rotation/opacity transition
	Duration time.Duration

	// OnFlip is called exactly once per completed transition with the new
	// resting orientation
	OnFlip func(isShowingBack bool)

	// OnFavorite is called once per favorite activation. The favorite
	// boolean itself is owned by the caller, never by the engine.
	OnFavorite func()

	// Haptic adapter for tactile feedback, best-effort
	Haptic haptic.Adapter

	// AutoFlip arms a one-shot unattended flip after AutoFlipDelay
	AutoFlip      bool
	AutoFlipDelay time.Duration
}

// Engine is the flip widget state machine. It owns the discrete phase, one
// rotation/opacity timeline and one cosmetic scale pulse, and raises the
// OnFlip notification once the visual transition settles.
//
// The engine is cooperatively scheduled: the host frame loop calls Advance,
// and all mutation happens on that one logical thread. At most one flip
// transition is in flight at a time; a Toggle arriving mid-transition is
// silently dropped, never queued.
type Engine struct {
	clock engine.Clock
	cfg   Config

	phase    Phase
	timeline *anim.Timeline
	pulse    *anim.Pulse
	autoFlip *AutoFlip

	tornDown bool
}

// New creates a flip engine at rest on its front face, arming the auto-flip
// scheduler if configured. Construction is the widget's mount point.
func New(clock engine.Clock, cfg Config) *Engine {
	if cfg.Duration <= 0 {
		cfg.Duration = parameter.FlipDuration
	}
	if cfg.AutoFlipDelay <= 0 {
		cfg.AutoFlipDelay = parameter.AutoFlipDefaultDelay
	}
	if cfg.Haptic == nil {
		cfg.Haptic = haptic.Nop{}
	}

	e := &Engine{
		clock:    clock,
		cfg:      cfg,
		phase:    PhaseShowingFront,
		timeline: anim.NewTimeline(),
		pulse:    anim.NewPulse(parameter.PulseDownDuration, parameter.PulseUpDuration, parameter.PulseScale),
	}
	e.autoFlip = NewAutoFlip(cfg.AutoFlip, cfg.AutoFlipDelay, clock.Now(), e.Toggle)
	return e
}

// Toggle requests a flip toward the opposite face. Returns true if the
// transition was accepted. While a transition is in flight the call is a
// silent no-op — policy, not failure.
func (e *Engine) Toggle() bool {
	if e.tornDown || e.phase.Transitioning() {
		return false
	}

	next := PhaseTransitioningToBack
	dir := anim.ToBack
	if e.phase == PhaseShowingBack {
		next = PhaseTransitioningToFront
		dir = anim.ToFront
	}
	if !CanTransition(e.phase, next) {
		return false
	}

	// Tactile cue fires before the visual transition starts; this matches
	// the press feel of the gesture rather than its visual outcome
	e.cfg.Haptic.Pulse(haptic.Light)

	now := e.clock.Now()
	e.timeline.Start(now, dir, e.cfg.Duration, e.settle)
	e.pulse.Start(now)
	e.phase = next
	return true
}

// settle is the timeline completion hook: the phase becomes the new resting
// state and OnFlip fires exactly once
func (e *Engine) settle() {
	switch e.phase {
	case PhaseTransitioningToBack:
		e.phase = PhaseShowingBack
	case PhaseTransitioningToFront:
		e.phase = PhaseShowingFront
	}

	if e.cfg.OnFlip != nil {
		e.cfg.OnFlip(e.phase.ShowingBack())
	}
}

// Favorite dispatches the favorite gesture. It never changes the phase, and
// it consumes the originating event so the gesture cannot also reach Toggle.
func (e *Engine) Favorite(ev *input.Event) {
	if ev != nil {
		ev.Consume()
	}
	if e.tornDown {
		return
	}

	e.cfg.Haptic.Pulse(haptic.Medium)
	if e.cfg.OnFavorite != nil {
		e.cfg.OnFavorite()
	}
}

// Advance drives the scheduler and both timelines from the host frame loop
func (e *Engine) Advance(now time.Time) {
	if e.tornDown {
		return
	}

	e.autoFlip.Advance(now)
	e.timeline.Advance(now)
	e.pulse.Advance(now)
}

// Teardown cancels the auto-flip timer and both timelines. No completion,
// flip or auto-flip callback fires afterward — guaranteed release, not
// best-effort cleanup.
func (e *Engine) Teardown() {
	if e.tornDown {
		return
	}
	e.tornDown = true
	e.autoFlip.Cancel()
	e.timeline.Cancel()
	e.pulse.Cancel()
}

// Phase returns the current discrete phase
func (e *Engine) Phase() Phase {
	return e.phase
}

// Progress returns the normalized progress of the in-flight transition,
// 0 when at rest
func (e *Engine) Progress() float64 {
	return e.timeline.Progress()
}

// AutoFlipPending reports whether the unattended flip is still armed
func (e *Engine) AutoFlipPending() bool {
	return e.autoFlip.Pending()
}

// AutoFlipRemaining returns the time left before the unattended flip fires
func (e *Engine) AutoFlipRemaining(now time.Time) time.Duration {
	return e.autoFlip.Remaining(now)
}

// Surface snapshots the derived channel values for the renderer. The
// renderer is a pure read-only consumer of this plus Phase.
func (e *Engine) Surface() anim.Surface {
	var s anim.Surface
	if e.phase.Transitioning() {
		s = anim.Channels(e.timeline.Progress(), e.timeline.Direction())
	} else {
		s = anim.RestSurface(e.phase.ShowingBack())
	}
	s.Scale = e.pulse.Scale()
	return s
}
