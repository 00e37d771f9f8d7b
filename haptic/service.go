package haptic

import "sync/atomic"

// HapticService wraps Engine as a Service
// Handles graceful degradation when no audio backend is available
type HapticService struct {
	engine   *Engine
	disabled atomic.Bool
}

// NewService creates a new haptic service
func NewService() *HapticService {
	return &HapticService{}
}

// Name implements Service
func (s *HapticService) Name() string {
	return "haptic"
}

// Dependencies implements Service
func (s *HapticService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - initial mute state (default unmuted)
func (s *HapticService) Init(args ...any) error {
	engine := NewEngine()

	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			engine.SetMuted(muted)
		}
	}

	s.engine = engine
	return nil
}

// Start implements Service
// Opens the audio backend; sets disabled on failure (no error returned)
func (s *HapticService) Start() error {
	if s.engine == nil {
		s.disabled.Store(true)
		return nil
	}

	if err := s.engine.Initialize(); err != nil {
		s.disabled.Store(true)
		s.engine = nil
		return nil
	}
	return nil
}

// Stop implements Service
func (s *HapticService) Stop() error {
	if s.engine != nil {
		s.engine.Cleanup()
	}
	return nil
}

// Adapter returns the pulse adapter backed by this service, or a Nop
// adapter when the backend is unavailable
func (s *HapticService) Adapter() Adapter {
	if s.disabled.Load() || s.engine == nil {
		return Nop{}
	}
	return s.engine
}

// SetMuted forwards the mute toggle to the engine if present
func (s *HapticService) SetMuted(muted bool) {
	if s.engine != nil {
		s.engine.SetMuted(muted)
	}
}

// Muted reports the engine mute state (true when disabled)
func (s *HapticService) Muted() bool {
	if s.engine == nil {
		return true
	}
	return s.engine.Muted()
}
