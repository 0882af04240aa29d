package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/aotw/internal/errmsg"
	"github.com/llehouerou/aotw/internal/keymap"
	"github.com/llehouerou/aotw/internal/metadata"
	"github.com/llehouerou/aotw/internal/query"
	"github.com/llehouerou/aotw/internal/ui/analytics"
	"github.com/llehouerou/aotw/internal/ui/render"
	"github.com/llehouerou/aotw/internal/ui/styles"
)

const appTitle = "album of the week"

var (
	titleFrom = lipgloss.Color("#1db954")
	titleTo   = lipgloss.Color("#1e90ff")
)

type tab struct {
	key  string
	name string
	page Page
}

var tabs = []tab{
	{"F1", "Picks", PagePicks},
	{"F2", "Analytics", PageAnalytics},
	{"F3", "About", PageAbout},
}

// View renders the application UI.
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.loadingState {
	case loadingWaiting:
		// Brief blank screen while waiting to see if we need to show loading
		return ""
	case loadingShowing:
		return m.renderLoading()
	case loadingDone:
	}

	if m.loadErr != nil {
		return m.renderError()
	}

	var content string
	switch m.page {
	case PagePicks:
		content = m.Picks.View()
	case PageAnalytics:
		content = analytics.Render(m.records, m.width, m.contentHeight())
	case PageAbout:
		content = m.renderAbout()
	}

	return m.renderHeader() + "\n" + content
}

// renderHeader renders the gradient title and the page tabs on one line.
func (m Model) renderHeader() string {
	title := styles.ApplyBoldGradient(appTitle, titleFrom, titleTo)

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := styles.Tab
		if t.page == m.page {
			style = styles.ActiveTab
		}
		parts = append(parts, style.Render(t.key+" "+t.name))
	}
	tabLine := strings.Join(parts, styles.Dim.Render(" │ "))

	return render.TruncateStyled(render.Row(" "+title, tabLine+" ", m.width), m.width)
}

func (m Model) renderLoading() string {
	waveChars := []rune{'~', '∿', '≈', '∼', '≈', '∿'}
	waveWidth := 24

	var wave strings.Builder
	for i := range waveWidth {
		wave.WriteRune(waveChars[(i+m.LoadingFrame)%len(waveChars)])
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.ApplyBoldGradient(appTitle, titleFrom, titleTo),
		"",
		styles.Secondary.Render(wave.String()),
		"",
		styles.Dim.Italic(true).Render("Loading albums..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderError() string {
	msg := errmsg.FormatWith(errmsg.OpDatasetLoad, m.source, m.loadErr)
	width := max(min(m.width-4, 80), 10)

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.Error.Width(width).Align(lipgloss.Center).Render(msg),
		"",
		styles.Dim.Render(keymap.Hint(keymap.All, keymap.ActionRetry, keymap.ActionQuit)),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderAbout() string {
	innerWidth := m.width - 2
	innerHeight := m.contentHeight() - 2
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	pickers := metadata.DistinctValues(m.records, query.FieldPicker)
	decades := metadata.DistinctDecades(m.records)

	lines := []string{
		styles.Header.Render("About"),
		render.Separator(innerWidth),
		"One album picked every week, listened to together.",
		"",
		render.TruncateAndPad("source:  "+m.source, innerWidth),
		render.TruncateAndPad("picks:   "+plural(len(m.records), "album", "albums"), innerWidth),
		render.TruncateAndPad("pickers: "+plural(len(pickers), "person", "people"), innerWidth),
		render.TruncateAndPad("decades: "+plural(len(decades), "decade", "decades"), innerWidth),
		"",
		styles.Header.Render("Keys"),
	}
	lines = append(lines, keyLines(innerWidth)...)
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return styles.Panel(innerWidth, innerHeight).Render(strings.Join(lines, "\n"))
}

const keyColumnWidth = 14

// keyLines lists every global binding as "q, ctrl+c      Quit".
func keyLines(width int) []string {
	bindings := keymap.ByContext("global")
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys := strings.Join(globalKeys.KeysFor(b.Action), ", ")
		line := styles.Primary.Render(render.Pad(keys, keyColumnWidth)) +
			styles.Dim.Render(render.TruncateAndPad(b.Description, max(width-keyColumnWidth, 0)))
		lines = append(lines, line)
	}
	return lines
}
