// Command midiprobe lists MIDI ports and monitors incoming clock and CC
// traffic, which helps pick port names and CC numbers for the config file.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func main() {
	defer gomidi.CloseDriver()

	cmd := "list"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "list":
		listPorts()
	case "monitor":
		port := ""
		if len(os.Args) > 2 {
			port = os.Args[2]
		}
		monitor(port)
	default:
		fmt.Fprintf(os.Stderr, "usage: midiprobe [list|monitor [port]]\n")
		os.Exit(1)
	}
}

func listPorts() {
	done := make(chan bool)

	go func() {
		fmt.Println("=== MIDI Input Ports ===")
		ins := gomidi.GetInPorts()
		if len(ins) == 0 {
			fmt.Println("  (none)")
		}
		for i, in := range ins {
			fmt.Printf("  [%d] %s\n", i, in.String())
		}

		fmt.Println("\n=== MIDI Output Ports ===")
		outs := gomidi.GetOutPorts()
		if len(outs) == 0 {
			fmt.Println("  (none)")
		}
		for i, out := range outs {
			fmt.Printf("  [%d] %s\n", i, out.String())
		}

		done <- true
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		fmt.Println("timed out enumerating ports (driver hung?)")
	}
}

// monitor prints timing clock ticks and control changes from a port.
// An empty port name picks the first available input.
func monitor(port string) {
	ins := gomidi.GetInPorts()
	if len(ins) == 0 {
		fmt.Println("no MIDI input ports")
		return
	}

	in := ins[0]
	if port != "" {
		found := false
		for _, p := range ins {
			if p.String() == port {
				in = p
				found = true
				break
			}
		}
		if !found {
			fmt.Printf("port %q not found, using %q\n", port, in.String())
		}
	}
	fmt.Printf("monitoring %q (ctrl-c to quit)\n", in.String())

	ticks := 0
	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		switch {
		case msg.Is(gomidi.TimingClockMsg):
			ticks++
			if ticks%24 == 0 {
				fmt.Printf("clock: %d ticks (%d quarter notes)\n", ticks, ticks/24)
			}
		default:
			var ch, cc, val uint8
			if msg.GetControlChange(&ch, &cc, &val) {
				fmt.Printf("cc: ch=%d cc=%d val=%d\n", ch+1, cc, val)
			}
		}
	}, gomidi.UseTimeCode())
	if err != nil {
		fmt.Printf("failed to listen: %v\n", err)
		return
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	fmt.Println("done")
}
