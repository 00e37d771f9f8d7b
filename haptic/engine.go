package haptic

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine renders haptic pulses as audible clicks through the beep speaker.
// Terminal hosts have no vibration motor, so a short click is the closest
// available tactile cue. Failure to open an audio backend flips the engine
// into silent mode: every later Pulse is a cheap no-op and callers never
// observe the difference.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewEngine creates a haptic engine, not yet attached to a speaker
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio backend. Failure is not an error to callers;
// the engine degrades to silent mode instead.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Pulse mixes in the click for the given intensity. No-op while muted,
// uninitialized, or in silent mode.
func (e *Engine) Pulse(intensity Intensity) {
	if e.muted.Load() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Add(NewClick(intensity, sampleRate))
	speaker.Unlock()
}

// SetMuted toggles pulse delivery without touching the backend
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Muted reports the current mute state
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// Cleanup drops all pending clicks and detaches from the mixer
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()

	// beep provides no speaker Close; clearing the mixer is enough to
	// guarantee no audio artifacts after teardown
	e.initialized = false
}
