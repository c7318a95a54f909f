package midi

import (
	"fmt"
	"sync/atomic"

	gomidi "gitlab.com/gomidi/midi/v2"

	"gridz/debug"
	"gridz/engine"
)

// MIDI realtime clock runs at 24 ppqn; one 16th-note edge every 6 ticks.
const ticksPerEdge = 6

// Input listens on one MIDI in port for realtime clock ticks and the two
// CC-driven aux CV inputs. CC values are 7-bit, stretched by 8 into the
// 0..1023 sample range the modulation matrix expects.
type Input struct {
	stop  func()
	cv    [engine.NumInputs]atomic.Int32
	ticks int
}

// OpenInput opens the in port whose name contains portName. cvCC holds the
// CC numbers sampled as CV inputs; when clock is non-nil, realtime clock
// messages drive its edges.
func OpenInput(portName string, cvCC [engine.NumInputs]uint8, clock *engine.ClockCapture) (*Input, error) {
	port, err := findInPort(portName)
	if err != nil {
		return nil, err
	}

	in := &Input{}
	stop, err := gomidi.ListenTo(port, func(msg gomidi.Message, timestampms int32) {
		if clock != nil && msg.Is(gomidi.TimingClockMsg) {
			in.ticks++
			if in.ticks >= ticksPerEdge {
				in.ticks = 0
				clock.Edge()
				debug.LogEvery(64, "midi", "clock edge")
			}
			return
		}
		var channel, cc, value uint8
		if msg.GetControlChange(&channel, &cc, &value) {
			for i := 0; i < engine.NumInputs; i++ {
				if cc == cvCC[i] {
					in.cv[i].Store(int32(value) * 8)
				}
			}
		}
	}, gomidi.UseTimeCode())
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", port.String(), err)
	}
	in.stop = stop

	debug.Log("midi", "input on %s cv=%v", port.String(), cvCC)
	return in, nil
}

// CV returns the CVSource for one aux input.
func (in *Input) CV(i int) engine.CVSource {
	if i < 0 || i >= engine.NumInputs {
		return nil
	}
	return func() int { return int(in.cv[i].Load()) }
}

// Close stops listening.
func (in *Input) Close() {
	if in.stop != nil {
		in.stop()
	}
}
