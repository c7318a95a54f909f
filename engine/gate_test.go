package engine

import (
	"testing"
	"time"
)

// recordLine captures the transitions the scheduler drives.
type recordLine struct {
	high        bool
	transitions []bool
}

func (l *recordLine) Set(high bool) {
	l.high = high
	l.transitions = append(l.transitions, high)
}

func newGateFixture() (*GateScheduler, [NumChannels]*recordLine) {
	var recs [NumChannels]*recordLine
	var lines [NumChannels]GateLine
	for ch := range recs {
		recs[ch] = &recordLine{}
		lines[ch] = recs[ch]
	}
	return NewGateScheduler(lines), recs
}

func TestGateFiresForConfiguredLength(t *testing.T) {
	g, recs := newGateFixture()
	now := time.Now()

	g.Fire(0, 10, now)
	if !recs[0].high || !g.Active(0) {
		t.Fatal("gate not high after fire")
	}

	g.Scan(now.Add(9 * time.Millisecond))
	if !recs[0].high {
		t.Fatal("gate dropped before its 10ms window elapsed")
	}

	g.Scan(now.Add(10 * time.Millisecond))
	if recs[0].high || g.Active(0) {
		t.Fatal("gate still high after its window elapsed")
	}
}

func TestGateZeroLengthBecomesOneMs(t *testing.T) {
	g, recs := newGateFixture()
	now := time.Now()

	g.Fire(1, 0, now)
	if !recs[1].high {
		t.Fatal("zero-length fire produced no pulse")
	}
	g.Scan(now)
	if !recs[1].high {
		t.Fatal("minimal pulse closed immediately")
	}
	g.Scan(now.Add(time.Millisecond))
	if recs[1].high {
		t.Fatal("minimal pulse still high after 1ms")
	}
}

func TestGateLengthClampedToMax(t *testing.T) {
	g, _ := newGateFixture()
	now := time.Now()

	g.Fire(0, 500, now)
	g.Scan(now.Add(49 * time.Millisecond))
	if !g.Active(0) {
		t.Fatal("gate closed before the 50ms cap")
	}
	g.Scan(now.Add(50 * time.Millisecond))
	if g.Active(0) {
		t.Fatal("gate open past the 50ms cap")
	}
}

func TestGateRefireRestartsWindow(t *testing.T) {
	g, recs := newGateFixture()
	now := time.Now()

	g.Fire(2, 10, now)
	g.Fire(2, 10, now.Add(5*time.Millisecond))

	g.Scan(now.Add(12 * time.Millisecond))
	if !recs[2].high {
		t.Fatal("refire did not extend the window")
	}
	g.Scan(now.Add(15 * time.Millisecond))
	if recs[2].high {
		t.Fatal("gate open past the restarted window")
	}

	// One on per fire, one off total: at most one pending off per channel.
	want := []bool{true, true, false}
	if len(recs[2].transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", recs[2].transitions, want)
	}
	for i := range want {
		if recs[2].transitions[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", recs[2].transitions, want)
		}
	}
}

func TestGatesIndependentPerChannel(t *testing.T) {
	g, recs := newGateFixture()
	now := time.Now()

	g.Fire(0, 5, now)
	g.Fire(1, 20, now)
	g.Scan(now.Add(5 * time.Millisecond))
	if recs[0].high {
		t.Fatal("channel 0 open past its window")
	}
	if !recs[1].high {
		t.Fatal("channel 1 closed by channel 0's expiry")
	}
}

func TestGateInvalidChannelIgnored(t *testing.T) {
	g, _ := newGateFixture()
	now := time.Now()
	g.Fire(-1, 10, now)
	g.Fire(NumChannels, 10, now)
	if g.Active(-1) || g.Active(NumChannels) {
		t.Fatal("invalid channel reported active")
	}
}
