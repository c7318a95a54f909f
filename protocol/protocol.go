package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"gridz/debug"
	"gridz/engine"
	"gridz/store"
)

// Handler executes one textual command line at a time against the engine's
// base parameters and the parameter store. The surface is forgiving:
// unknown keys and out-of-range values are dropped silently and the rest
// of the line still applies.
type Handler struct {
	eng *engine.Engine
	st  *store.Store
}

// New creates a handler bound to an engine and a store.
func New(eng *engine.Engine, st *store.Store) *Handler {
	return &Handler{eng: eng, st: st}
}

// Execute runs one line (GET, SET k=v;k=v;..., SAVE, LOAD) and returns the
// response text.
func (h *Handler) Execute(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	cmd, rest, _ := strings.Cut(line, " ")
	switch strings.ToUpper(cmd) {
	case "GET":
		return h.get()
	case "SET":
		h.set(rest)
		return "ok"
	case "SAVE":
		if err := h.st.Save(h.eng.Base()); err != nil {
			return "err " + err.Error()
		}
		return "ok"
	case "LOAD":
		p, err := h.st.Load()
		if err != nil {
			return "err " + err.Error()
		}
		h.eng.SetBase(p)
		return "ok"
	default:
		debug.Log("proto", "unknown command %q", cmd)
		return "err unknown command"
	}
}

func (h *Handler) set(args string) {
	changed := 0
	h.eng.UpdateBase(func(p *engine.BaseParams) {
		for _, pair := range strings.Split(args, ";") {
			key, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				continue
			}
			f, ok := fields[strings.ToLower(strings.TrimSpace(key))]
			if !ok {
				continue // unknown key: silently ignored
			}
			f.set(p, n)
			changed++
		}
	})
	debug.Log("proto", "set applied %d fields", changed)
}

func (h *Handler) get() string {
	base := h.eng.Base()
	rt := h.eng.Runtime()

	var out strings.Builder
	for _, key := range fieldOrder {
		fmt.Fprintf(&out, "%s=%d\n", key, fields[key].get(&base))
	}
	fmt.Fprintf(&out, "rt.x=%d\n", rt.MapX)
	fmt.Fprintf(&out, "rt.y=%d\n", rt.MapY)
	for c := 0; c < engine.NumChannels; c++ {
		fmt.Fprintf(&out, "rt.dens%d=%d\n", c+1, rt.Density[c])
	}
	fmt.Fprintf(&out, "rt.chaos=%d\n", rt.Chaos)
	for c := 0; c < engine.NumChannels; c++ {
		fmt.Fprintf(&out, "rt.gate%d=%d\n", c+1, rt.GateMs[c])
	}
	fmt.Fprintf(&out, "step=%d\n", h.eng.Step())
	fmt.Fprintf(&out, "cell=%d", h.eng.ActiveCell())
	return out.String()
}

// field adapts one settable/gettable parameter. Setters clamp to the
// field's legal range before assignment.
type field struct {
	get func(*engine.BaseParams) int
	set func(*engine.BaseParams, int)
}

var (
	fields     map[string]field
	fieldOrder []string
)

func addField(key string, f field) {
	fields[key] = f
	fieldOrder = append(fieldOrder, key)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	fields = make(map[string]field)

	addField("x", field{
		get: func(p *engine.BaseParams) int { return int(p.MapX) },
		set: func(p *engine.BaseParams, v int) { p.MapX = uint8(clampInt(v, 0, 255)) },
	})
	addField("y", field{
		get: func(p *engine.BaseParams) int { return int(p.MapY) },
		set: func(p *engine.BaseParams, v int) { p.MapY = uint8(clampInt(v, 0, 255)) },
	})
	for c := 0; c < engine.NumChannels; c++ {
		c := c
		addField(fmt.Sprintf("dens%d", c+1), field{
			get: func(p *engine.BaseParams) int { return int(p.Density[c]) },
			set: func(p *engine.BaseParams, v int) { p.Density[c] = uint8(clampInt(v, 0, 255)) },
		})
	}
	addField("chaos", field{
		get: func(p *engine.BaseParams) int { return int(p.Chaos) },
		set: func(p *engine.BaseParams, v int) { p.Chaos = uint8(clampInt(v, 0, 255)) },
	})
	for c := 0; c < engine.NumChannels; c++ {
		c := c
		addField(fmt.Sprintf("gate%d", c+1), field{
			get: func(p *engine.BaseParams) int { return int(p.GateMs[c]) },
			set: func(p *engine.BaseParams, v int) { p.GateMs[c] = uint8(clampInt(v, 0, engine.MaxGateMs)) },
		})
	}
	addField("div", field{
		get: func(p *engine.BaseParams) int { return int(p.ClockDiv) },
		set: func(p *engine.BaseParams, v int) { p.ClockDiv = uint8(clampInt(v, 1, 255)) },
	})
	for i := 0; i < engine.NumInputs; i++ {
		i := i
		addField(fmt.Sprintf("in%d", i+1), field{
			get: func(p *engine.BaseParams) int {
				if p.Inputs[i].Enabled {
					return 1
				}
				return 0
			},
			set: func(p *engine.BaseParams, v int) { p.Inputs[i].Enabled = v != 0 },
		})
		for r := 0; r < engine.RoutesPerInput; r++ {
			r := r
			addField(fmt.Sprintf("in%dt%d", i+1, r+1), field{
				get: func(p *engine.BaseParams) int { return int(p.Inputs[i].Routes[r].Target) },
				set: func(p *engine.BaseParams, v int) {
					p.Inputs[i].Routes[r].Target = engine.ModTarget(clampInt(v, 0, int(engine.TargetGate3)))
				},
			})
			addField(fmt.Sprintf("in%dd%d", i+1, r+1), field{
				get: func(p *engine.BaseParams) int { return int(p.Inputs[i].Routes[r].Depth) },
				set: func(p *engine.BaseParams, v int) {
					p.Inputs[i].Routes[r].Depth = int8(clampInt(v, -127, 127))
				},
			})
		}
	}
}
