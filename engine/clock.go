package engine

import "sync/atomic"

// ClockCapture turns rising edges on the external clock line into one-shot
// step-due events, with integer division. Edge is called from the clock
// source goroutine; TakeStep consumes the pending event with an atomic
// take-and-clear so an edge is never lost or double counted.
type ClockCapture struct {
	div   atomic.Uint32
	count atomic.Uint32
	due   atomic.Bool
}

// NewClockCapture creates a capture with the given division factor.
func NewClockCapture(div int) *ClockCapture {
	c := &ClockCapture{}
	c.SetDivision(div)
	return c
}

// SetDivision sets the division factor. Values below 1 are coerced to 1.
func (c *ClockCapture) SetDivision(div int) {
	if div < 1 {
		div = 1
	}
	c.div.Store(uint32(div))
}

// Division returns the current division factor.
func (c *ClockCapture) Division() int {
	return int(c.div.Load())
}

// Edge records one rising edge of the external clock. Every div-th edge
// arms the step-due flag.
func (c *ClockCapture) Edge() {
	if c.count.Add(1) >= c.div.Load() {
		c.count.Store(0)
		c.due.Store(true)
	}
}

// TakeStep reports whether a step is due and clears the flag in the same
// operation.
func (c *ClockCapture) TakeStep() bool {
	return c.due.CompareAndSwap(true, false)
}
