// Package analytics renders the picks-by-release-decade chart.
package analytics

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/aotw/internal/album"
	"github.com/llehouerou/aotw/internal/metadata"
	"github.com/llehouerou/aotw/internal/ui/render"
	"github.com/llehouerou/aotw/internal/ui/styles"
)

const (
	labelWidth  = 7 // "1990s  "
	minBarWidth = 10
)

// Render draws one bar per decade, scaled to the largest decade, inside a
// panel of the given outer size.
func Render(records []album.Record, width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	innerWidth := width - 2
	innerHeight := height - 2

	counts := metadata.DecadeCounts(records)
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	lines := []string{
		render.Row(styles.Header.Render("Picks by release decade"), summary(total, len(records)), innerWidth),
		render.Separator(innerWidth),
	}

	if len(counts) == 0 {
		lines = append(lines, styles.Dim.Render(render.TruncateAndPad("No release years to chart", innerWidth)))
	} else {
		lines = append(lines, Bars(counts, innerWidth)...)
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return styles.Panel(innerWidth, innerHeight).Render(strings.Join(lines, "\n"))
}

// Bars renders: "1990s  ━━━━━━━━────  12"
func Bars(counts []metadata.DecadeCount, width int) []string {
	peak := 0
	countWidth := 0
	for _, c := range counts {
		peak = max(peak, c.Count)
		countWidth = max(countWidth, lipgloss.Width(humanize.Comma(int64(c.Count))))
	}

	barWidth := max(width-labelWidth-countWidth-2, minBarWidth)

	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		filled := 0
		if peak > 0 {
			filled = barWidth * c.Count / peak
		}
		if c.Count > 0 && filled == 0 {
			filled = 1
		}

		var line strings.Builder
		line.WriteString(styles.Primary.Render(render.Pad(DecadeLabel(c.Decade), labelWidth)))
		line.WriteString(barFilledStyle().Render(strings.Repeat("━", filled)))
		line.WriteString(styles.Dim.Render(strings.Repeat("─", barWidth-filled)))
		line.WriteString("  ")
		line.WriteString(styles.Secondary.Render(humanize.Comma(int64(c.Count))))
		lines = append(lines, render.TruncateStyled(line.String(), width))
	}
	return lines
}

// DecadeLabel formats a decade start year as "1990s".
func DecadeLabel(decade int) string {
	return strconv.Itoa(decade) + "s"
}

func summary(dated, total int) string {
	return humanize.Comma(int64(dated)) + " of " + humanize.Comma(int64(total)) + " picks dated"
}

func barFilledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.Accent)
}
