package engine

import (
	"context"
	"sync"
	"time"
)

// InternalClock stands in for the external clock line when nothing is
// wired to it: it feeds ClockCapture rising edges at a steady 16th-note
// rate for the configured tempo.
type InternalClock struct {
	mu    sync.Mutex
	bpm   int
	clock *ClockCapture
}

// NewInternalClock creates a ticker driving the given capture.
func NewInternalClock(bpm int, clock *ClockCapture) *InternalClock {
	c := &InternalClock{clock: clock}
	c.SetTempo(bpm)
	return c
}

// SetTempo sets the BPM, clamped to 20..300.
func (c *InternalClock) SetTempo(bpm int) {
	if bpm < 20 {
		bpm = 20
	}
	if bpm > 300 {
		bpm = 300
	}
	c.mu.Lock()
	c.bpm = bpm
	c.mu.Unlock()
}

// Tempo returns the current BPM.
func (c *InternalClock) Tempo() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bpm
}

func (c *InternalClock) interval() time.Duration {
	// 4 edges per beat: the clock line runs at 16th notes.
	return time.Minute / time.Duration(c.Tempo()*4)
}

// Run emits edges until ctx is cancelled (blocking - run in goroutine).
func (c *InternalClock) Run(ctx context.Context) {
	t := time.NewTimer(c.interval())
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.clock.Edge()
			t.Reset(c.interval())
		}
	}
}
