package picks

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/aotw/internal/keymap"
	"github.com/llehouerou/aotw/internal/query"
)

// QueryChangedMsg is emitted after any change to the query so the root model
// can record it in the debug log.
type QueryChangedMsg struct {
	Query query.Query
}

// Update handles messages for the picks view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // Only handling wheel events
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSearchKey edits the search term; every keystroke re-evaluates.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // Other keys go to the text input
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m.applyQuery(withSearch(m.query, ""))
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == m.query.SearchTerm {
		return m, cmd
	}
	m, changed := m.applyQuery(withSearch(m.query, m.search.Value()))
	return m, tea.Batch(cmd, changed)
}

// keys resolves the list and query keys of the picks view.
var keys = keymap.ForContexts("picks")

// handleKey processes keyboard input outside the search box.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	q := m.query

	switch keys.Resolve(msg.String()) { //nolint:exhaustive // Other actions belong to the app
	case keymap.ActionSearch:
		m.searching = true
		return m, m.search.Focus()
	case keymap.ActionMoveDown:
		m.moveCursor(1)
		return m, nil
	case keymap.ActionMoveUp:
		m.moveCursor(-1)
		return m, nil
	case keymap.ActionJumpStart:
		m.cursor = 0
		m.ensureCursorInBounds()
		return m, nil
	case keymap.ActionJumpEnd:
		m.cursor = len(m.flatList) - 1
		m.ensureCursorInBounds()
		return m, nil
	case keymap.ActionPageDown:
		m.moveCursor(max(m.listHeight()/2, 1))
		return m, nil
	case keymap.ActionPageUp:
		m.moveCursor(-max(m.listHeight()/2, 1))
		return m, nil

	case keymap.ActionCycleSort:
		q.SortKey = q.SortKey.Next()
	case keymap.ActionToggleDirection:
		q.Direction = q.Direction.Toggle()
	case keymap.ActionToggleGroup:
		if q.GroupBy == query.GroupByPickYear {
			q.GroupBy = query.GroupByNone
		} else {
			q.GroupBy = query.GroupByPickYear
		}
	case keymap.ActionCycleDecade:
		q = cycleFilter(q, query.FieldDecade, m.choices.decades)
	case keymap.ActionCycleYear:
		q = cycleFilter(q, query.FieldYear, m.choices.years)
	case keymap.ActionCyclePicker:
		q = cycleFilter(q, query.FieldPicker, m.choices.pickers)
	case keymap.ActionCycleArtist:
		q = cycleFilter(q, query.FieldArtist, m.choices.artists)
	case keymap.ActionClearFilters:
		q.Filters = nil
		q.SearchTerm = ""
		m.search.SetValue("")
	default:
		return m, nil
	}

	return m.applyQuery(q)
}

func (m Model) applyQuery(q query.Query) (Model, tea.Cmd) {
	m.query = q
	m.refresh()
	return m, func() tea.Msg {
		return QueryChangedMsg{Query: q}
	}
}

func withSearch(q query.Query, term string) query.Query {
	q.SearchTerm = term
	return q
}

// cycleFilter advances the filter on field to the next value in values,
// wrapping from the last value back to "no filter".
func cycleFilter(q query.Query, field query.Field, values []string) query.Query {
	return q.WithFilter(string(field), nextValue(values, q.Filter(field)))
}

// nextValue returns the value following current in values. An empty or
// unknown current value starts at the first value; the last value wraps to "".
func nextValue(values []string, current string) string {
	if len(values) == 0 {
		return ""
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return ""
		}
	}
	return values[0]
}
