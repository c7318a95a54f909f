package engine

import (
	"testing"
	"time"
)

func TestEngineStepPerDividedEdge(t *testing.T) {
	base := DefaultBase()
	base.ClockDiv = 4
	e := New(Options{Seed: 1, Base: base})

	now := time.Now()
	steps := 0
	last := e.Step()
	for i := 0; i < 40; i++ {
		e.Clock.Edge()
		e.Iterate(now)
		if e.Step() != last {
			steps++
			last = e.Step()
		}
		now = now.Add(time.Millisecond)
	}
	if steps != 10 {
		t.Fatalf("40 edges at div 4: engine advanced %d steps, want 10", steps)
	}
}

func TestEngineProcessesOneStepPerIteration(t *testing.T) {
	e := New(Options{Seed: 1, Base: DefaultBase()})

	// Two edges before the loop runs still arm the one-shot flag once: a
	// pending step is consumed fully before a new one can be recognized.
	e.Clock.Edge()
	e.Clock.Edge()
	e.Iterate(time.Now())
	if e.Step() != 1 {
		t.Fatalf("step = %d after burst of edges, want 1", e.Step())
	}
	e.Iterate(time.Now())
	if e.Step() != 1 {
		t.Fatalf("step = %d after idle iteration, want 1", e.Step())
	}
}

func TestEngineModulationReachesRuntime(t *testing.T) {
	base := DefaultBase()
	base.MapX = 100
	base.Inputs[0].Enabled = true
	base.Inputs[0].Routes[0] = Route{TargetMapX, 127}

	sample := 512
	e := New(Options{
		Seed: 1,
		Base: base,
		CV:   [NumInputs]CVSource{func() int { return sample }, nil},
	})

	e.Iterate(time.Now())
	if rt := e.Runtime(); rt.MapX != 100 {
		t.Fatalf("centered CV: runtime mapX = %d, want 100", rt.MapX)
	}

	sample = 1023
	e.Iterate(time.Now())
	if rt := e.Runtime(); rt.MapX != 226 {
		t.Fatalf("full CV: runtime mapX = %d, want 226", rt.MapX)
	}
}

func TestEngineGateLifecycle(t *testing.T) {
	rec := &recordLine{}
	base := DefaultBase()
	base.MapX, base.MapY = 0, 0 // cell 0: step 0 channel 0 carries p=255
	base.Density = [NumChannels]uint8{255, 255, 255}
	base.GateMs = [NumChannels]uint8{10, 10, 10}
	e := New(Options{Seed: 17, Base: base, Lines: [NumChannels]GateLine{rec, nil, nil}})

	now := time.Now()
	for tries := 0; tries < NumSteps*4; tries++ {
		e.Clock.Edge()
		e.Iterate(now)
		if e.LastFired()[0] {
			break
		}
		now = now.Add(20 * time.Millisecond)
	}
	if !e.GateActive(0) || !rec.high {
		t.Fatal("channel 0 never fired at full probability and density")
	}

	e.Iterate(now.Add(9 * time.Millisecond))
	if !e.GateActive(0) {
		t.Fatal("gate closed before its 10ms length")
	}
	e.Iterate(now.Add(10 * time.Millisecond))
	if e.GateActive(0) || rec.high {
		t.Fatal("gate still open past its length")
	}
}

func TestEngineUpdateBaseSanitizes(t *testing.T) {
	e := New(Options{Seed: 1, Base: DefaultBase()})
	e.UpdateBase(func(p *BaseParams) {
		p.ClockDiv = 0
		p.GateMs[1] = 200
		p.Inputs[0].Routes[0].Target = ModTarget(99)
		p.Inputs[0].Routes[1].Depth = -128
	})

	base := e.Base()
	if base.ClockDiv != 1 {
		t.Errorf("clockDiv = %d, want coerced to 1", base.ClockDiv)
	}
	if e.Clock.Division() != 1 {
		t.Errorf("capture division = %d, want 1", e.Clock.Division())
	}
	if base.GateMs[1] != MaxGateMs {
		t.Errorf("gateMs = %d, want clamped to %d", base.GateMs[1], MaxGateMs)
	}
	if base.Inputs[0].Routes[0].Target != TargetNone {
		t.Errorf("bogus route target = %v, want none", base.Inputs[0].Routes[0].Target)
	}
	if base.Inputs[0].Routes[1].Depth != -127 {
		t.Errorf("route depth = %d, want clamped to -127", base.Inputs[0].Routes[1].Depth)
	}
}

func TestEngineMutedChannelFollowsInputAssignment(t *testing.T) {
	base := DefaultBase()
	base.Inputs[0].Enabled = true
	muted := base.MutedChannels()
	if muted[0] || !muted[1] || muted[2] {
		t.Fatalf("muted = %v, want channel 1 only", muted)
	}
}
