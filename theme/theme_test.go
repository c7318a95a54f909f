package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRGBEndpointsAndMidpoint(t *testing.T) {
	th := &Theme{colors: []RGB{{0, 0, 0}, {100, 200, 50}}}

	if got := th.RGB(-0.5); got != (RGB{0, 0, 0}) {
		t.Errorf("below range: got %v, want first color", got)
	}
	if got := th.RGB(1.5); got != (RGB{100, 200, 50}) {
		t.Errorf("above range: got %v, want last color", got)
	}
	if got := th.RGB(0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("midpoint: got %v, want {50 100 25}", got)
	}
}

func TestColorRendersHex(t *testing.T) {
	th := &Theme{colors: []RGB{{255, 0, 16}}}
	if got := string(th.Color(0)); got != "#ff0010" {
		t.Errorf("Color(0) = %q, want #ff0010", got)
	}
}

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.gpl")
	gpl := `GIMP Palette
Name: test-grad
Columns: 2
# a comment
  0   0   0	black
255 255 255	white
not a color line
`
	if err := os.WriteFile(path, []byte(gpl), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadGPL(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "test-grad" {
		t.Errorf("name = %q, want test-grad", th.Name)
	}
	if len(th.colors) != 2 {
		t.Fatalf("parsed %d colors, want 2", len(th.colors))
	}
	if th.RGB(0) != (RGB{0, 0, 0}) || th.RGB(1) != (RGB{255, 255, 255}) {
		t.Errorf("gradient endpoints = %v %v", th.RGB(0), th.RGB(1))
	}
}

func TestLoadGPLEmptyPaletteIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gpl")
	if err := os.WriteFile(path, []byte("GIMP Palette\nColumns: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGPL(path); err == nil {
		t.Fatal("empty palette accepted")
	}
}
