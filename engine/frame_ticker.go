package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameTicker pumps fixed-interval frames to the app loop without busy-wait.
// Deadlines are tracked absolutely so render jitter does not accumulate drift;
// when the loop falls more than two intervals behind, the deadline is re-based
// instead of firing a burst of catch-up frames.
type FrameTicker struct {
	interval time.Duration
	frames   chan time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frameCount atomic.Uint64
}

// NewFrameTicker creates a ticker firing every interval
func NewFrameTicker(interval time.Duration) *FrameTicker {
	return &FrameTicker{
		interval: interval,
		frames:   make(chan time.Time, 1),
		stopChan: make(chan struct{}),
	}
}

// Frames returns the channel frame timestamps are delivered on.
// A slow consumer drops frames rather than backing up the ticker.
func (ft *FrameTicker) Frames() <-chan time.Time {
	return ft.frames
}

// FrameCount returns the number of frames fired since Start
func (ft *FrameTicker) FrameCount() uint64 {
	return ft.frameCount.Load()
}

// Start begins the frame loop
func (ft *FrameTicker) Start() {
	if ft.running.CompareAndSwap(false, true) {
		ft.wg.Add(1)
		go ft.loop()
	}
}

// Stop halts the frame loop, idempotent
func (ft *FrameTicker) Stop() {
	ft.stopOnce.Do(func() {
		if ft.running.CompareAndSwap(true, false) {
			close(ft.stopChan)
			ft.wg.Wait()
		}
	})
}

func (ft *FrameTicker) loop() {
	defer ft.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	deadline := time.Now().Add(ft.interval)

	for {
		sleep := time.Until(deadline)
		if sleep < 0 {
			sleep = 0
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-ft.stopChan:
			return
		}

		now := time.Now()
		select {
		case ft.frames <- now:
		default:
		}
		ft.frameCount.Add(1)

		deadline = deadline.Add(ft.interval)
		if now.Sub(deadline) > ft.interval*2 {
			deadline = now.Add(ft.interval)
		}
	}
}
