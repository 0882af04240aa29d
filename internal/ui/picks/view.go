package picks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/aotw/internal/album"
	"github.com/llehouerou/aotw/internal/keymap"
	"github.com/llehouerou/aotw/internal/query"
	"github.com/llehouerou/aotw/internal/ui/render"
	"github.com/llehouerou/aotw/internal/ui/styles"
)

const (
	pickColumnWidth   = 6
	artistColumnWidth = 28
	recordIndent      = "  "
)

var helpHint = keymap.Hint(keymap.ByContext("picks"),
	keymap.ActionSearch,
	keymap.ActionCycleSort,
	keymap.ActionToggleDirection,
	keymap.ActionToggleGroup,
	keymap.ActionCycleDecade,
	keymap.ActionCyclePicker,
	keymap.ActionClearFilters,
)

// View renders the picks view.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := m.width - 2
	innerHeight := m.height - 2

	lines := []string{
		render.Row(m.renderTitle(), m.renderCount(), innerWidth),
		m.renderFilters(innerWidth),
		render.Separator(innerWidth),
		m.renderList(innerWidth, m.listHeight()),
		render.Separator(innerWidth),
		m.renderDetail(innerWidth),
	}

	return styles.Panel(innerWidth, innerHeight).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTitle() string {
	arrow := "↑"
	if m.query.Direction == query.Desc {
		arrow = "↓"
	}
	text := fmt.Sprintf("Picks · sort: %s %s", m.query.SortKey.Label(), arrow)
	if m.query.GroupBy == query.GroupByPickYear {
		text += " · by pick year"
	}
	return text
}

func (m Model) renderCount() string {
	return fmt.Sprintf("%d of %d", m.ResultCount(), len(m.records))
}

// renderFilters shows the search box and the active field filters.
func (m Model) renderFilters(width int) string {
	if m.searching {
		return render.TruncateStyled(m.search.View(), width)
	}

	parts := []string{"/ " + orDefault(m.query.SearchTerm, "—")}
	for _, f := range []struct {
		label string
		field query.Field
	}{
		{"decade", query.FieldDecade},
		{"year", query.FieldYear},
		{"picker", query.FieldPicker},
		{"artist", query.FieldArtist},
	} {
		parts = append(parts, f.label+": "+orDefault(m.query.Filter(f.field), "all"))
	}
	return styles.Dim.Render(render.TruncateAndPad(strings.Join(parts, "  "), width))
}

func (m Model) renderList(width, height int) string {
	if height <= 0 {
		return ""
	}
	if len(m.flatList) == 0 {
		return m.renderEmpty(width, height)
	}

	lines := make([]string, 0, height)
	for i := m.offset; i < len(m.flatList) && len(lines) < height; i++ {
		item := m.flatList[i]
		if item.IsHeader {
			lines = append(lines, renderHeader(item.Header, width))
		} else {
			lines = append(lines, renderRecord(item.Record, width, i == m.cursor))
		}
	}

	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEmpty(width, height int) string {
	msg := "No picks match"
	if len(m.records) == 0 {
		msg = "No picks yet"
	}

	lines := make([]string, 0, height)
	for range height / 2 {
		lines = append(lines, render.EmptyLine(width))
	}
	lines = append(lines, styles.Dim.Render(render.TruncateAndPad(msg, width)))
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

// renderHeader renders a bucket header like "── 2025 ─────────".
func renderHeader(header string, width int) string {
	prefix := "── " + header + " "
	remaining := max(width-runewidth.StringWidth(prefix), 0)
	return styles.Header.Render(render.Truncate(prefix+strings.Repeat("─", remaining), width))
}

// renderRecord renders a pick line: pick number, artist, then album and year.
func renderRecord(r *album.Record, width int, isCursor bool) string {
	pick := "#" + strconv.Itoa(r.PickNumber)
	if r.PickNumber <= 0 {
		pick = "#?"
	}
	pickCol := render.TruncateAndPad(pick, pickColumnWidth)
	artistCol := render.TruncateAndPad(r.Artist, artistColumnWidth)

	title := r.Title
	if r.HasYear() {
		title = fmt.Sprintf("%s (%d)", r.Title, r.Year)
	}
	titleWidth := max(width-len(recordIndent)-pickColumnWidth-artistColumnWidth, 0)
	titleCol := render.TruncateAndPad(title, titleWidth)

	if isCursor {
		return styles.Cursor.Render(recordIndent + pickCol + artistCol + titleCol)
	}
	return recordIndent + styles.Dim.Render(pickCol) + styles.Primary.Render(artistCol) + styles.Secondary.Render(titleCol)
}

// renderDetail shows who picked the selected album and where to listen.
func (m Model) renderDetail(width int) string {
	r := m.Selected()
	if r == nil {
		return styles.Dim.Render(render.TruncateAndPad(helpHint, width))
	}

	picked := "picked by " + orDefault(r.Picker, "unknown")
	if r.PickedAt != "" {
		picked += " on " + r.PickedAt
	}
	parts := []string{picked}
	if r.SpotifyURL != "" {
		parts = append(parts, "spotify: "+r.SpotifyURL)
	}
	if r.AppleMusicURL != "" {
		parts = append(parts, "apple music: "+r.AppleMusicURL)
	}
	return render.TruncateAndPad(strings.Join(parts, "  "), width)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
