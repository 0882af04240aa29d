package app

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/aotw/internal/errmsg"
	"github.com/llehouerou/aotw/internal/keymap"
	"github.com/llehouerou/aotw/internal/query"
	"github.com/llehouerou/aotw/internal/ui/picks"
)

// headerHeight is the height of the title and tab line.
const headerHeight = 1

// Update handles messages for the application.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if lm, ok := msg.(LoadingMessage); ok {
		return m.handleLoadingMsg(lm)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Picks.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case picks.QueryChangedMsg:
		log.Printf("query: %s", describeQuery(msg.Query))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.page == PagePicks && m.ready() {
			var cmd tea.Cmd
			m.Picks, cmd = m.Picks.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleLoadingMsg routes loading-related messages.
func (m Model) handleLoadingMsg(msg LoadingMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DatasetLoadedMsg:
		m.loadingState = loadingDone
		m.loadErr = msg.Err
		if msg.Err != nil {
			log.Print(errmsg.FormatWith(errmsg.OpDatasetLoad, m.source, msg.Err))
			return m, nil
		}
		log.Printf("loaded %d picks from %s", len(msg.Records), m.source)
		m.records = msg.Records
		m.Picks.SetRecords(msg.Records)
	case ShowLoadingMsg:
		if m.loadingState == loadingWaiting {
			m.loadingState = loadingShowing
			return m, LoadingTickCmd()
		}
	case LoadingTickMsg:
		if m.loadingState == loadingShowing {
			m.LoadingFrame++
			return m, LoadingTickCmd()
		}
	}
	return m, nil
}

var (
	globalKeys = keymap.ForContexts("global")
	errorKeys  = keymap.ForContexts("error")
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// The search box owns every other key while it has focus.
	if m.page == PagePicks && m.Picks.IsSearching() {
		var cmd tea.Cmd
		m.Picks, cmd = m.Picks.Update(msg)
		return m, cmd
	}

	switch globalKeys.Resolve(key) { //nolint:exhaustive // Page actions are handled by the pages
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionNextPage:
		m.page = (m.page + 1) % pageCount
		return m, nil
	case keymap.ActionPrevPage:
		m.page = (m.page + pageCount - 1) % pageCount
		return m, nil
	case keymap.ActionPagePicks:
		m.page = PagePicks
		return m, nil
	case keymap.ActionPageAnalytics:
		m.page = PageAnalytics
		return m, nil
	case keymap.ActionPageAbout:
		m.page = PageAbout
		return m, nil
	}

	if m.loadingState == loadingDone && m.loadErr != nil && errorKeys.Resolve(key) == keymap.ActionRetry {
		return m.retry()
	}

	if m.page == PagePicks && m.ready() {
		var cmd tea.Cmd
		m.Picks, cmd = m.Picks.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ready reports whether the dataset loaded successfully.
func (m Model) ready() bool {
	return m.loadingState == loadingDone && m.loadErr == nil
}

// retry reloads the dataset after a failure.
func (m Model) retry() (tea.Model, tea.Cmd) {
	log.Printf("retrying load from %s", m.source)
	m.loadErr = nil
	m.loadingState = loadingWaiting
	m.LoadingFrame = 0
	return m, tea.Batch(LoadDatasetCmd(m.load, m.source), ShowLoadingAfterDelayCmd())
}

func (m Model) contentHeight() int {
	return max(m.height-headerHeight, 0)
}

// describeQuery renders a query for the debug log:
// search="can" decade=1990 sort=year desc group=pick_year
func describeQuery(q query.Query) string {
	parts := []string{fmt.Sprintf("search=%q", q.SearchTerm)}
	for _, field := range slices.Sorted(maps.Keys(q.Filters)) {
		parts = append(parts, string(field)+"="+q.Filters[field])
	}
	parts = append(parts,
		"sort="+q.SortKey.String()+" "+q.Direction.String(),
		"group="+q.GroupBy.String(),
	)
	return strings.Join(parts, " ")
}
