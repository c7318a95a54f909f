package engine

import (
	"math/rand"
	"time"
)

// StepEngine decides, once per step-due event, which channels fire. The
// random source is seeded explicitly so firing sequences stay reproducible
// for a given seed.
type StepEngine struct {
	step int
	rng  *rand.Rand
}

// NewStepEngine creates a step engine with a deterministic random source.
func NewStepEngine(seed int64) *StepEngine {
	return &StepEngine{rng: rand.New(rand.NewSource(seed))}
}

// Step returns the current step index, always in [0, NumSteps).
func (e *StepEngine) Step() int {
	return e.step
}

// Advance evaluates one step against the runtime parameters: resolve the
// active cell from the map position, scale each channel's probability by
// its density, draw a byte, and fire the gate on a hit. A step with zero
// table probability can still fire through the chaos parameter; that path
// never applies when the table probability is nonzero. Channels muted by
// modulation-input assignment produce nothing. The step counter wraps at
// NumSteps.
func (e *StepEngine) Advance(rt *RuntimeParams, muted [NumChannels]bool, gates *GateScheduler, now time.Time) [NumChannels]bool {
	cell := CellFromPosition(rt.MapX, rt.MapY)
	var fired [NumChannels]bool
	for c := 0; c < NumChannels; c++ {
		if muted[c] {
			continue
		}
		p := ProbabilityAt(cell, c, e.step)
		base := int(p) * int(rt.Density[c]) / 255
		r := e.rng.Intn(256)
		if r < base || (p == 0 && r < int(rt.Chaos)) {
			gates.Fire(c, int(rt.GateMs[c]), now)
			fired[c] = true
		}
	}
	e.step = (e.step + 1) % NumSteps
	return fired
}
