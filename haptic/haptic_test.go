package haptic

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestIntensityString(t *testing.T) {
	tests := []struct {
		intensity Intensity
		expected  string
	}{
		{Light, "light"},
		{Medium, "medium"},
		{Heavy, "heavy"},
		{Intensity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.intensity.String(); got != tt.expected {
			t.Errorf("Intensity(%d).String() = %q, expected %q", tt.intensity, got, tt.expected)
		}
	}
}

func TestRecorderCapturesOrder(t *testing.T) {
	rec := &Recorder{}
	rec.Pulse(Light)
	rec.Pulse(Medium)
	rec.Pulse(Light)

	got := rec.Pulses()
	want := []Intensity{Light, Medium, Light}
	if len(got) != len(want) {
		t.Fatalf("Expected %d pulses, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected pulse[%d]=%v, got %v", i, want[i], got[i])
		}
	}
}

func TestNopPulseIsSafe(t *testing.T) {
	var a Adapter = Nop{}
	// Must never panic regardless of intensity
	a.Pulse(Light)
	a.Pulse(Medium)
	a.Pulse(Heavy)
}

func TestClickStreamerDrainsToSilence(t *testing.T) {
	rate := beep.SampleRate(48000)
	streamer := NewClick(Light, rate)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			}
			if buf[i][0] != buf[i][1] {
				t.Fatal("Expected identical left/right samples")
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total == 0 {
		t.Fatal("Expected the click to produce samples")
	}
	if total > rate.N(100*time.Millisecond) { // sanity upper bound
		t.Errorf("Click ran too long: %d samples", total)
	}
	if peak <= 0 {
		t.Error("Expected non-silent click")
	}
	if peak > 1.0 {
		t.Errorf("Expected samples within [-1,1], peak %v", peak)
	}
	if streamer.Err() != nil {
		t.Errorf("Expected nil Err, got %v", streamer.Err())
	}
}

func TestUninitializedEnginePulseIsNoop(t *testing.T) {
	e := NewEngine()
	// Never initialized: pulses must be swallowed, not panic
	e.Pulse(Light)
	e.Pulse(Heavy)
	e.Cleanup()
}

func TestServiceAdapterDegradesToNop(t *testing.T) {
	s := NewService()
	// Start without Init: engine missing, adapter must still be usable
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error, expected silent degradation: %v", err)
	}

	a := s.Adapter()
	if _, ok := a.(Nop); !ok {
		t.Errorf("Expected Nop adapter when backend unavailable, got %T", a)
	}
	a.Pulse(Medium)
}
