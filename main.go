package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gridz/config"
	"gridz/debug"
	"gridz/engine"
	"gridz/midi"
	"gridz/protocol"
	"gridz/store"
	"gridz/theme"
	"gridz/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	if cfg.Debug {
		debug.Enable()
	}

	// Restore the persisted parameter block - the single source of truth
	// on power-up.
	path, err := store.DefaultPath()
	if err != nil {
		fmt.Printf("store path: %v\n", err)
		os.Exit(1)
	}
	st := store.New(path)
	base, err := st.Load()
	if err != nil {
		fmt.Printf("params: %v (using defaults)\n", err)
	}

	// MIDI output is optional: without a port the engine still sequences,
	// the gates just have nowhere to land.
	var lines [engine.NumChannels]engine.GateLine
	if out, err := midi.OpenOutput(cfg.MIDI.OutPort, cfg.MIDI.Channel); err != nil {
		fmt.Printf("midi out: %v (running silent)\n", err)
	} else {
		lines = out.Lines()
	}

	eng := engine.New(engine.Options{
		Seed:  cfg.Seed,
		Base:  base,
		Lines: lines,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Clock source: external MIDI clock when configured, otherwise the
	// internal tempo ticker. The in port also carries the CC-driven CV
	// inputs either way.
	ccs := [engine.NumInputs]uint8{cfg.MIDI.CV1CC, cfg.MIDI.CV2CC}
	var clock *engine.InternalClock
	if cfg.Clock.Source == config.ClockExternal {
		in, err := midi.OpenInput(cfg.MIDI.InPort, ccs, eng.Clock)
		if err != nil {
			fmt.Printf("midi in: %v (falling back to internal clock)\n", err)
			clock = engine.NewInternalClock(cfg.Clock.BPM, eng.Clock)
		} else {
			defer in.Close()
			for i := 0; i < engine.NumInputs; i++ {
				eng.SetCVSource(i, in.CV(i))
			}
		}
	} else {
		clock = engine.NewInternalClock(cfg.Clock.BPM, eng.Clock)
		if cfg.MIDI.InPort != "" {
			if in, err := midi.OpenInput(cfg.MIDI.InPort, ccs, nil); err != nil {
				fmt.Printf("midi in: %v (no CV inputs)\n", err)
			} else {
				defer in.Close()
				for i := 0; i < engine.NumInputs; i++ {
					eng.SetCVSource(i, in.CV(i))
				}
			}
		}
	}

	if clock != nil {
		go clock.Run(ctx)
	}
	go eng.Run(ctx)

	th := theme.Default()
	if cfg.Palette != "" {
		if loaded, err := theme.LoadGPL(cfg.Palette); err != nil {
			fmt.Printf("palette: %v (using built-in)\n", err)
		} else {
			th = loaded
		}
	}

	proto := protocol.New(eng, st)
	m := tui.NewModel(eng, clock, proto, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
