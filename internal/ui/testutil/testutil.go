// Package testutil provides helpers for testing the terminal views.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Key builds a KeyMsg for printable input such as "s" or "/".
func Key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// SpecialKey builds a KeyMsg for a non-printable key.
func SpecialKey(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// Type returns one KeyMsg per rune of text.
func Type(text string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Plain strips ANSI styling so rendered output can be compared as text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// FindLine returns the first unstyled line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(Plain(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first unstyled line containing substr,
// or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(Plain(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}
