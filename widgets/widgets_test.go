package widgets

import (
	"strings"
	"testing"
)

func TestRenderBarFill(t *testing.T) {
	cases := []struct {
		value, max, width int
		filled            int
	}{
		{0, 255, 8, 0},
		{255, 255, 8, 8},
		{128, 255, 8, 4},
		{500, 255, 8, 8},  // over max stays within width
		{-10, 255, 8, 0},  // negative values floor to empty
		{10, 0, 8, 8},     // max below 1 coerced, never divides by zero
	}
	for _, c := range cases {
		bar := RenderBar(c.value, c.max, c.width)
		if got := strings.Count(bar, "▮"); got != c.filled {
			t.Errorf("RenderBar(%d, %d, %d): %d filled cells, want %d",
				c.value, c.max, c.width, got, c.filled)
		}
		if got := strings.Count(bar, "▮") + strings.Count(bar, "▯"); got != c.width {
			t.Errorf("RenderBar(%d, %d, %d): %d cells total, want %d",
				c.value, c.max, c.width, got, c.width)
		}
	}
}

func TestRenderCellGridLayout(t *testing.T) {
	var asked []int
	grid := RenderCellGrid(3, 2, func(cell int) [3]uint8 {
		asked = append(asked, cell)
		return [3]uint8{}
	})
	if got := strings.Count(grid, "\n"); got != 1 {
		t.Errorf("2-row grid has %d newlines, want 1", got)
	}
	for i, cell := range asked {
		if cell != i {
			t.Fatalf("cell ids = %v, want left-right top-bottom order", asked)
		}
	}
	if len(asked) != 6 {
		t.Fatalf("asked for %d cells, want 6", len(asked))
	}
}
