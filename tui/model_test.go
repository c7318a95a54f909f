package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeKeys(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCommandLineBackspaceIsRuneAware(t *testing.T) {
	m := Model{cmdMode: true}

	m = typeKeys(t, m, runeKey("x"), runeKey("é"), runeKey("日"))
	if m.cmdLine != "xé日" {
		t.Fatalf("cmdLine = %q, want xé日", m.cmdLine)
	}

	m = typeKeys(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.cmdLine != "xé" {
		t.Fatalf("cmdLine after backspace = %q, want xé", m.cmdLine)
	}

	m = typeKeys(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.cmdLine != "" {
		t.Fatalf("cmdLine = %q, want empty", m.cmdLine)
	}

	// Backspace on an empty line is a no-op, not a panic.
	m = typeKeys(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.cmdLine != "" {
		t.Fatalf("cmdLine = %q, want empty", m.cmdLine)
	}
}

func TestCommandModeEscapeClearsLine(t *testing.T) {
	m := Model{cmdMode: true}
	m = typeKeys(t, m, runeKey("g"), runeKey("e"), runeKey("t"))
	m = typeKeys(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.cmdMode || m.cmdLine != "" {
		t.Fatalf("after esc: cmdMode=%v cmdLine=%q, want exited and empty", m.cmdMode, m.cmdLine)
	}
}
