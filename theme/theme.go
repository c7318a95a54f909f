package theme

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RGB is one palette color.
type RGB [3]uint8

// Theme is a color gradient sampled by normalized position. UI roles map
// to fixed positions along the gradient, so swapping the palette restyles
// the whole app at once.
type Theme struct {
	Name   string
	colors []RGB
}

// Default returns the built-in plasma-like gradient, dark purple through
// magenta to yellow, so the app needs no palette file on disk.
func Default() *Theme {
	return &Theme{
		Name: "plasma",
		colors: []RGB{
			{13, 8, 135},
			{84, 2, 163},
			{139, 10, 165},
			{185, 50, 137},
			{219, 92, 104},
			{244, 136, 73},
			{254, 188, 43},
			{240, 249, 33},
		},
	}
}

// LoadGPL reads a GIMP palette file into a Theme. Header lines, comments
// and malformed rows are skipped; a file with no usable colors is an error.
func LoadGPL(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := &Theme{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if name, ok := strings.CutPrefix(line, "Name:"); ok {
			t.Name = strings.TrimSpace(name)
			continue
		}
		if line == "" || line[0] == '#' || strings.HasPrefix(line, "GIMP") || strings.HasPrefix(line, "Columns") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		r, err1 := strconv.Atoi(fields[0])
		g, err2 := strconv.Atoi(fields[1])
		b, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		t.colors = append(t.colors, RGB{uint8(r), uint8(g), uint8(b)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(t.colors) == 0 {
		return nil, fmt.Errorf("no colors found in palette %s", path)
	}
	return t, nil
}

// Color roles mapped to gradient positions (0-1)
const (
	RoleBG      = 0.0
	RoleSurface = 0.1
	RoleMuted   = 0.2
	RoleFG      = 0.4
	RoleAccent  = 0.5
	RoleCursor  = 0.6
	RoleActive  = 0.7
	RoleWarning = 0.8
	RoleSuccess = 1.0
)

// RGB returns the interpolated color at a normalized position.
func (t *Theme) RGB(norm float64) RGB {
	if norm <= 0 {
		return t.colors[0]
	}
	if norm >= 1 {
		return t.colors[len(t.colors)-1]
	}
	pos := norm * float64(len(t.colors)-1)
	i := int(pos)
	frac := pos - float64(i)
	c0, c1 := t.colors[i], t.colors[i+1]
	return RGB{
		lerp(c0[0], c1[0], frac),
		lerp(c0[1], c1[1], frac),
		lerp(c0[2], c1[2], frac),
	}
}

// Color returns the lipgloss color at a normalized position.
func (t *Theme) Color(norm float64) lipgloss.Color {
	c := t.RGB(norm)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

// Style helpers

func (t *Theme) BG() lipgloss.Color      { return t.Color(RoleBG) }
func (t *Theme) FG() lipgloss.Color      { return t.Color(RoleFG) }
func (t *Theme) Accent() lipgloss.Color  { return t.Color(RoleAccent) }
func (t *Theme) Muted() lipgloss.Color   { return t.Color(RoleMuted) }
func (t *Theme) Active() lipgloss.Color  { return t.Color(RoleActive) }
func (t *Theme) Cursor() lipgloss.Color  { return t.Color(RoleCursor) }
func (t *Theme) Warning() lipgloss.Color { return t.Color(RoleWarning) }
func (t *Theme) Success() lipgloss.Color { return t.Color(RoleSuccess) }

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
