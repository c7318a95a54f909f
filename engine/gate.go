package engine

import "time"

// GateLine is one digital output the scheduler drives.
type GateLine interface {
	Set(high bool)
}

// GateState tracks one channel's output pulse. Created once at startup and
// reused for the life of the engine.
type GateState struct {
	line   GateLine
	active bool
	offAt  time.Time
}

// GateScheduler owns one independent timed gate per channel. Fire turns a
// gate on and Scan turns it off once its window elapses; neither blocks the
// control loop. Scan granularity is bounded by how often the loop polls, so
// it runs every iteration.
type GateScheduler struct {
	gates [NumChannels]GateState
}

// NewGateScheduler creates a scheduler driving the given output lines. A
// nil line is allowed and simply drops the transitions.
func NewGateScheduler(lines [NumChannels]GateLine) *GateScheduler {
	g := &GateScheduler{}
	for ch := range g.gates {
		g.gates[ch].line = lines[ch]
	}
	return g
}

// Fire opens a channel's gate for lengthMs milliseconds from now.
// Zero-length pulses are stretched to 1 ms so every hit is observable.
// Refiring an active channel restarts its window; there is never more than
// one pending off per channel.
func (g *GateScheduler) Fire(ch, lengthMs int, now time.Time) {
	if ch < 0 || ch >= NumChannels {
		return
	}
	if lengthMs < 1 {
		lengthMs = 1
	}
	if lengthMs > MaxGateMs {
		lengthMs = MaxGateMs
	}
	gs := &g.gates[ch]
	if gs.line != nil {
		gs.line.Set(true)
	}
	gs.active = true
	gs.offAt = now.Add(time.Duration(lengthMs) * time.Millisecond)
}

// Scan closes any gate whose window has elapsed.
func (g *GateScheduler) Scan(now time.Time) {
	for ch := range g.gates {
		gs := &g.gates[ch]
		if gs.active && !now.Before(gs.offAt) {
			if gs.line != nil {
				gs.line.Set(false)
			}
			gs.active = false
		}
	}
}

// Active reports whether a channel's gate is currently high.
func (g *GateScheduler) Active(ch int) bool {
	if ch < 0 || ch >= NumChannels {
		return false
	}
	return g.gates[ch].active
}
