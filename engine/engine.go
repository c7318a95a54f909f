package engine

import (
	"context"
	"sync"
	"time"

	"gridz/debug"
)

// Options configures a new Engine.
type Options struct {
	Seed  int64
	Base  BaseParams
	Lines [NumChannels]GateLine
	CV    [NumInputs]CVSource
}

// Engine is the explicit context that ties the clock capture, pattern
// table, modulation matrix, step engine and gate scheduler together. All
// sequencing happens on the control loop goroutine; the clock source and
// the UI/protocol touch it only through ClockCapture's atomics and the
// engine's own mutex.
type Engine struct {
	Clock *ClockCapture

	mu    sync.RWMutex
	base  BaseParams
	rt    RuntimeParams
	steps *StepEngine
	gates *GateScheduler
	cv    [NumInputs]CVSource

	lastFired [NumChannels]bool

	// UpdateChan gets a non-blocking poke whenever a step lands, so the
	// UI can redraw without polling.
	UpdateChan chan struct{}
}

// New creates an engine. The base block is sanitized before use; the clock
// division it carries becomes the capture's division factor.
func New(opts Options) *Engine {
	opts.Base.Sanitize()
	e := &Engine{
		Clock:      NewClockCapture(int(opts.Base.ClockDiv)),
		base:       opts.Base,
		steps:      NewStepEngine(opts.Seed),
		gates:      NewGateScheduler(opts.Lines),
		cv:         opts.CV,
		UpdateChan: make(chan struct{}, 1),
	}
	e.rt = Evaluate(&e.base, e.readCV())
	return e
}

// Run drives the control loop until ctx is cancelled. Each iteration reads
// the monotonic clock once, re-evaluates the modulation matrix, consumes at
// most one pending step and scans the gates. The poll period stays well
// under the shortest gate length so turn-offs land on time.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	debug.Log("engine", "control loop started, div=%d", e.Clock.Division())
	for {
		select {
		case <-ctx.Done():
			debug.Log("engine", "control loop stopped")
			return
		case <-ticker.C:
			e.Iterate(time.Now())
		}
	}
}

// Iterate runs one control-loop iteration at the given instant. Exported so
// tests and alternative loops can drive the engine step by step.
func (e *Engine) Iterate(now time.Time) {
	samples := e.readCV()

	e.mu.Lock()
	e.rt = Evaluate(&e.base, samples)
	stepped := false
	if e.Clock.TakeStep() {
		e.lastFired = e.steps.Advance(&e.rt, e.base.MutedChannels(), e.gates, now)
		stepped = true
	}
	e.gates.Scan(now)
	e.mu.Unlock()

	if stepped {
		select {
		case e.UpdateChan <- struct{}{}:
		default:
		}
	}
}

func (e *Engine) readCV() [NumInputs]int {
	e.mu.RLock()
	cv := e.cv
	e.mu.RUnlock()

	var samples [NumInputs]int
	for i, src := range cv {
		if src != nil {
			samples[i] = src()
		}
	}
	return samples
}

// SetCVSource attaches an aux input's sample source. Used when the source
// only comes up after the engine exists (a MIDI port, say).
func (e *Engine) SetCVSource(i int, src CVSource) {
	if i < 0 || i >= NumInputs {
		return
	}
	e.mu.Lock()
	e.cv[i] = src
	e.mu.Unlock()
}

// Base returns a copy of the base parameter block.
func (e *Engine) Base() BaseParams {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.base
}

// Runtime returns a copy of the last published runtime parameters.
func (e *Engine) Runtime() RuntimeParams {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rt
}

// UpdateBase mutates the base block under the engine lock. The block is
// sanitized afterwards, the clock division is pushed into the capture, and
// the runtime parameters are republished so readers see the change without
// waiting for the next loop iteration.
func (e *Engine) UpdateBase(fn func(*BaseParams)) {
	samples := e.readCV()
	e.mu.Lock()
	fn(&e.base)
	e.base.Sanitize()
	e.Clock.SetDivision(int(e.base.ClockDiv))
	e.rt = Evaluate(&e.base, samples)
	e.mu.Unlock()
}

// SetBase replaces the whole base block, as a LOAD does.
func (e *Engine) SetBase(p BaseParams) {
	e.UpdateBase(func(base *BaseParams) {
		*base = p
	})
}

// Step returns the step index the engine will evaluate next.
func (e *Engine) Step() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.steps.Step()
}

// ActiveCell returns the pattern cell the runtime map position resolves to.
func (e *Engine) ActiveCell() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return CellFromPosition(e.rt.MapX, e.rt.MapY)
}

// GateActive reports whether a channel's gate is currently high.
func (e *Engine) GateActive(ch int) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gates.Active(ch)
}

// LastFired returns the fire decisions of the most recent step.
func (e *Engine) LastFired() [NumChannels]bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastFired
}
