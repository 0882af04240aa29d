// Package render provides text layout helpers for the terminal views.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 from dataset text so
// a bad value cannot break the terminal layout. Non-breaking spaces become
// regular spaces.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == unicode.ReplacementChar:
			return -1
		case r == '\u00a0':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

const ellipsis = "..."

// Truncate shortens plain text to maxWidth cells, adding "..." if truncated.
// Widths too narrow for the ellipsis cut the text without it.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	tail := ellipsis
	if maxWidth < runewidth.StringWidth(ellipsis) {
		tail = ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, tail)
}

// TruncateStyled shortens a string that may already contain ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns plain text of exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row places left and right content on one line of the given width with at
// least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine creates a blank line of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
