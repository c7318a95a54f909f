package midi

import (
	"fmt"
	"strings"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"gridz/debug"
	"gridz/engine"
)

// gateNotes maps the three gate channels to GM drum notes: kick, snare,
// closed hat.
var gateNotes = [engine.NumChannels]uint8{36, 38, 42}

// Output owns one MIDI out port and renders gate transitions as notes:
// gate-on is a NoteOn, gate-off the matching NoteOff, so the pulse width
// set in the engine is audible as note length.
type Output struct {
	mu      sync.Mutex
	send    func(gomidi.Message) error
	channel uint8 // 0-15
}

// OpenOutput opens the out port whose name contains portName
// (case-insensitive); an empty name takes the first available port.
// midiChannel is 1-16.
func OpenOutput(portName string, midiChannel uint8) (*Output, error) {
	port, err := findOutPort(portName)
	if err != nil {
		return nil, err
	}
	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", port.String(), err)
	}
	if midiChannel < 1 || midiChannel > 16 {
		midiChannel = 10
	}
	debug.Log("midi", "output on %s channel %d", port.String(), midiChannel)
	return &Output{send: send, channel: midiChannel - 1}, nil
}

// Line returns the GateLine for a channel, or nil for an invalid index.
func (o *Output) Line(ch int) engine.GateLine {
	if ch < 0 || ch >= engine.NumChannels {
		return nil
	}
	return &noteLine{out: o, note: gateNotes[ch]}
}

// Lines returns all three gate lines.
func (o *Output) Lines() [engine.NumChannels]engine.GateLine {
	var lines [engine.NumChannels]engine.GateLine
	for ch := range lines {
		lines[ch] = o.Line(ch)
	}
	return lines
}

type noteLine struct {
	out  *Output
	note uint8
}

func (l *noteLine) Set(high bool) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if high {
		l.out.send(gomidi.NoteOn(l.out.channel, l.note, 100))
	} else {
		l.out.send(gomidi.NoteOff(l.out.channel, l.note))
	}
}

func findOutPort(name string) (drivers.Out, error) {
	ports := gomidi.GetOutPorts()
	if len(ports) == 0 {
		return nil, fmt.Errorf("no MIDI out ports")
	}
	if name == "" {
		return ports[0], nil
	}
	want := strings.ToLower(name)
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.String()), want) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no MIDI out port matching %q", name)
}

func findInPort(name string) (drivers.In, error) {
	ports := gomidi.GetInPorts()
	if len(ports) == 0 {
		return nil, fmt.Errorf("no MIDI in ports")
	}
	if name == "" {
		return ports[0], nil
	}
	want := strings.ToLower(name)
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.String()), want) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no MIDI in port matching %q", name)
}
