package engine

import "testing"

func TestClockDivisionByFour(t *testing.T) {
	c := NewClockCapture(4)

	steps := 0
	for i := 0; i < 40; i++ {
		c.Edge()
		if c.TakeStep() {
			steps++
		}
	}
	if steps != 10 {
		t.Fatalf("40 edges at div 4: got %d steps, want 10", steps)
	}
}

func TestClockDivisionOne(t *testing.T) {
	c := NewClockCapture(1)
	for i := 0; i < 8; i++ {
		c.Edge()
		if !c.TakeStep() {
			t.Fatalf("edge %d: no step due at div 1", i)
		}
	}
}

func TestClockInvalidDivisionCoerced(t *testing.T) {
	c := NewClockCapture(0)
	if c.Division() != 1 {
		t.Fatalf("division 0 coerced to %d, want 1", c.Division())
	}
	c.SetDivision(-5)
	if c.Division() != 1 {
		t.Fatalf("division -5 coerced to %d, want 1", c.Division())
	}
}

func TestTakeStepClearsFlag(t *testing.T) {
	c := NewClockCapture(1)
	c.Edge()
	if !c.TakeStep() {
		t.Fatal("no step due after edge")
	}
	if c.TakeStep() {
		t.Fatal("step flag not cleared by TakeStep")
	}
}

func TestNoStepBeforeDivisionBoundary(t *testing.T) {
	c := NewClockCapture(3)
	c.Edge()
	c.Edge()
	if c.TakeStep() {
		t.Fatal("step due after 2 of 3 edges")
	}
	c.Edge()
	if !c.TakeStep() {
		t.Fatal("no step due after 3 edges at div 3")
	}
}
