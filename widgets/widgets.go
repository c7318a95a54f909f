package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPad renders a single colored pad
func RenderPad(color [3]uint8) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render("■")
}

// RenderCellGrid renders a cols x rows grid of pads, row 0 at the top,
// asking colorAt for each cell's color. Cell ids run left to right, top to
// bottom, matching the pattern-space layout.
func RenderCellGrid(cols, rows int, colorAt func(cell int) [3]uint8) string {
	var lines []string
	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			if col > 0 {
				line.WriteString(" ")
			}
			line.WriteString(RenderPad(colorAt(row*cols + col)))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderBar renders a horizontal level bar, value out of max, width cells
func RenderBar(value, max, width int) string {
	if value < 0 {
		value = 0
	}
	if max < 1 {
		max = 1
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	return strings.Repeat("▮", filled) + strings.Repeat("▯", width-filled)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
