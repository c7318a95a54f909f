package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridz/engine"
	"gridz/protocol"
	"gridz/theme"
	"gridz/widgets"
)

var channelNames = [engine.NumChannels]string{"BD", "SD", "HH"}

type Model struct {
	Engine *engine.Engine
	Clock  *engine.InternalClock // nil when an external clock drives the engine
	Proto  *protocol.Handler
	Theme  *theme.Theme

	selected int // channel being edited
	cmdMode  bool
	cmdLine  string
	cmdResp  string
	showHelp bool
	quitting bool
}

type StepMsg struct{}

type frameMsg time.Time

func NewModel(eng *engine.Engine, clock *engine.InternalClock, proto *protocol.Handler, th *theme.Theme) Model {
	return Model{
		Engine: eng,
		Clock:  clock,
		Proto:  proto,
		Theme:  th,
	}
}

// ListenForSteps waits for the engine to land a step
func ListenForSteps(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		<-eng.UpdateChan
		return StepMsg{}
	}
}

// frame redraws between steps so gate lamps go dark on time
func frame() tea.Cmd {
	return tea.Tick(time.Second/20, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(ListenForSteps(m.Engine), frame())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.cmdMode {
			return m.updateCommand(msg)
		}
		return m.updateKeys(msg)

	case StepMsg:
		return m, ListenForSteps(m.Engine)

	case frameMsg:
		return m, frame()
	}
	return m, nil
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.cmdResp = m.Proto.Execute(m.cmdLine)
		m.cmdMode = false
		m.cmdLine = ""
	case "esc":
		m.cmdMode = false
		m.cmdLine = ""
	case "backspace":
		if runes := []rune(m.cmdLine); len(runes) > 0 {
			m.cmdLine = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.cmdLine += msg.String()
		}
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	adjust := func(fn func(*engine.BaseParams)) {
		m.Engine.UpdateBase(fn)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case ":":
		m.cmdMode = true
		m.cmdResp = ""

	case "?":
		m.showHelp = !m.showHelp

	case "h", "left":
		adjust(func(p *engine.BaseParams) { p.MapX = sub8(p.MapX) })
	case "l", "right":
		adjust(func(p *engine.BaseParams) { p.MapX = add8(p.MapX) })
	case "k", "up":
		adjust(func(p *engine.BaseParams) { p.MapY = sub8(p.MapY) })
	case "j", "down":
		adjust(func(p *engine.BaseParams) { p.MapY = add8(p.MapY) })

	case "tab":
		m.selected = (m.selected + 1) % engine.NumChannels

	case "+", "=":
		ch := m.selected
		adjust(func(p *engine.BaseParams) { p.Density[ch] = add8(p.Density[ch]) })
	case "-", "_":
		ch := m.selected
		adjust(func(p *engine.BaseParams) { p.Density[ch] = sub8(p.Density[ch]) })

	case "C":
		adjust(func(p *engine.BaseParams) { p.Chaos = add8(p.Chaos) })
	case "c":
		adjust(func(p *engine.BaseParams) { p.Chaos = sub8(p.Chaos) })

	case "G":
		ch := m.selected
		adjust(func(p *engine.BaseParams) {
			if p.GateMs[ch] < engine.MaxGateMs {
				p.GateMs[ch]++
			}
		})
	case "g":
		ch := m.selected
		adjust(func(p *engine.BaseParams) {
			if p.GateMs[ch] > 0 {
				p.GateMs[ch]--
			}
		})

	case "]":
		adjust(func(p *engine.BaseParams) {
			if p.ClockDiv < 32 {
				p.ClockDiv++
			}
		})
	case "[":
		adjust(func(p *engine.BaseParams) {
			if p.ClockDiv > 1 {
				p.ClockDiv--
			}
		})

	case ">", ".":
		if m.Clock != nil {
			m.Clock.SetTempo(m.Clock.Tempo() + 5)
		}
	case "<", ",":
		if m.Clock != nil {
			m.Clock.SetTempo(m.Clock.Tempo() - 5)
		}

	case "1", "2":
		idx := int(msg.String()[0] - '1')
		adjust(func(p *engine.BaseParams) { p.Inputs[idx].Enabled = !p.Inputs[idx].Enabled })

	case "s":
		m.cmdResp = "save: " + m.Proto.Execute("SAVE")
	case "L":
		m.cmdResp = "load: " + m.Proto.Execute("LOAD")
	}
	return m, nil
}

var keyHelp = []widgets.KeySection{
	{
		Title: "Pattern",
		Keys: []widgets.KeyBinding{
			{Key: "h/j/k/l", Desc: "move the map position"},
			{Key: "tab", Desc: "select channel"},
			{Key: "+/-", Desc: "channel density"},
			{Key: "c/C", Desc: "chaos down/up"},
			{Key: "g/G", Desc: "gate length down/up"},
		},
	},
	{
		Title: "Clock",
		Keys: []widgets.KeyBinding{
			{Key: "[/]", Desc: "clock division"},
			{Key: "</>", Desc: "tempo (internal clock)"},
		},
	},
	{
		Title: "Inputs & session",
		Keys: []widgets.KeyBinding{
			{Key: "1/2", Desc: "toggle aux CV inputs"},
			{Key: "s / L", Desc: "save / load parameters"},
			{Key: ":", Desc: "command line (GET/SET/SAVE/LOAD)"},
			{Key: "?", Desc: "toggle this help"},
			{Key: "q", Desc: "quit"},
		},
	},
}

func add8(v uint8) uint8 {
	if v > 247 {
		return 255
	}
	return v + 8
}

func sub8(v uint8) uint8 {
	if v < 8 {
		return 0
	}
	return v - 8
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	base := m.Engine.Base()
	rt := m.Engine.Runtime()
	activeCell := m.Engine.ActiveCell()
	baseCell := engine.CellFromPosition(base.MapX, base.MapY)
	fired := m.Engine.LastFired()
	muted := base.MutedChannels()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	activeStyle := lipgloss.NewStyle().Foreground(m.Theme.Active())
	cmdStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())

	clockInfo := "ext clock"
	if m.Clock != nil {
		clockInfo = fmt.Sprintf("%3dbpm", m.Clock.Tempo())
	}
	header := headerStyle.Render(fmt.Sprintf(
		"gridz  %s  div:%d  step:%02d  cell:%02d", clockInfo, base.ClockDiv, m.Engine.Step(), activeCell))

	// 5x5 pattern map: playing cell bright, base-position cell as cursor
	mapView := widgets.RenderCellGrid(5, 5, func(cell int) [3]uint8 {
		switch cell {
		case activeCell:
			return m.Theme.RGB(theme.RoleActive)
		case baseCell:
			return m.Theme.RGB(theme.RoleCursor)
		default:
			return m.Theme.RGB(theme.RoleSurface)
		}
	})

	// Channel strips
	var strips strings.Builder
	for c := 0; c < engine.NumChannels; c++ {
		cursor := " "
		if c == m.selected {
			cursor = ">"
		}
		lamp := dimStyle.Render("·")
		if m.Engine.GateActive(c) || fired[c] {
			lamp = activeStyle.Render("●")
		}
		status := ""
		if muted[c] {
			status = dimStyle.Render("  (muted: input on CV duty)")
		}
		strips.WriteString(fmt.Sprintf("%s %s %s %s %3d  gate %2dms%s\n",
			cursor, channelNames[c], lamp,
			widgets.RenderBar(int(rt.Density[c]), 255, 16), rt.Density[c],
			rt.GateMs[c], status))
	}

	params := fmt.Sprintf("x:%3d y:%3d  chaos %s %3d", rt.MapX, rt.MapY,
		widgets.RenderBar(int(rt.Chaos), 255, 8), rt.Chaos)

	var inputs strings.Builder
	for i := 0; i < engine.NumInputs; i++ {
		in := base.Inputs[i]
		if !in.Enabled {
			inputs.WriteString(dimStyle.Render(fmt.Sprintf("in%d off", i+1)))
		} else {
			var routes []string
			for _, r := range in.Routes {
				if r.Target != engine.TargetNone && r.Depth != 0 {
					routes = append(routes, fmt.Sprintf("%s%+d", r.Target, r.Depth))
				}
			}
			if len(routes) == 0 {
				routes = append(routes, "no routes")
			}
			inputs.WriteString(fmt.Sprintf("in%d: %s", i+1, strings.Join(routes, " ")))
		}
		if i < engine.NumInputs-1 {
			inputs.WriteString("   ")
		}
	}

	help := dimStyle.Render("?:help  ::cmd  q:quit")
	if m.showHelp {
		help = dimStyle.Render(widgets.RenderKeyHelp(keyHelp))
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(mapView)
	out.WriteString("\n\n")
	out.WriteString(strips.String())
	out.WriteString("\n")
	out.WriteString(params)
	out.WriteString("\n")
	out.WriteString(inputs.String())
	out.WriteString("\n\n")
	out.WriteString(help)

	if m.cmdMode {
		out.WriteString("\n")
		out.WriteString(cmdStyle.Render(":" + m.cmdLine + "▏"))
	} else if m.cmdResp != "" {
		out.WriteString("\n")
		out.WriteString(cmdStyle.Render(m.cmdResp))
	}

	return out.String()
}
