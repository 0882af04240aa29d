// Package picks implements the browsable list of album picks.
package picks

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/llehouerou/aotw/internal/album"
	"github.com/llehouerou/aotw/internal/metadata"
	"github.com/llehouerou/aotw/internal/query"
)

// Item is either a bucket header or a pick in the flat list.
type Item struct {
	IsHeader bool
	Header   string
	Record   *album.Record
}

// choices holds the derived filter values cycled through by the filter keys.
type choices struct {
	decades []string
	years   []string
	pickers []string
	artists []string
}

// Model is the picks view state. The query is owned here and re-evaluated
// against the full dataset whenever it changes.
type Model struct {
	records  []album.Record
	query    query.Query
	buckets  []query.Bucket
	flatList []Item
	choices  choices

	search    textinput.Model
	searching bool

	cursor int
	offset int
	width  int
	height int
}

// New creates a picks view starting from the given query.
func New(q query.Query) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search artist or album"
	ti.CharLimit = 120
	ti.SetValue(q.SearchTerm)

	return Model{
		query:  q,
		search: ti,
	}
}

// SetRecords replaces the dataset, refreshing filter choices and results.
func (m *Model) SetRecords(records []album.Record) {
	m.records = records
	m.choices = choices{
		decades: metadata.DistinctValues(records, query.FieldDecade),
		years:   metadata.DistinctValues(records, query.FieldYear),
		pickers: metadata.DistinctValues(records, query.FieldPicker),
		artists: metadata.DistinctValues(records, query.FieldArtist),
	}
	m.refresh()
}

// Query returns the current query.
func (m Model) Query() query.Query {
	return m.query
}

// SetQuery replaces the query and re-evaluates.
func (m *Model) SetQuery(q query.Query) {
	m.query = q
	m.search.SetValue(q.SearchTerm)
	m.refresh()
}

// Results returns the current arrangement.
func (m Model) Results() []query.Bucket {
	return m.buckets
}

// ResultCount returns the number of picks matching the current query.
func (m Model) ResultCount() int {
	n := 0
	for i := range m.buckets {
		n += len(m.buckets[i].Records)
	}
	return n
}

// IsSearching reports whether the search box has focus.
func (m Model) IsSearching() bool {
	return m.searching
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(width-8, 10)
	m.ensureCursorVisible()
}

// Selected returns the pick under the cursor, or nil.
func (m Model) Selected() *album.Record {
	if m.cursor < 0 || m.cursor >= len(m.flatList) {
		return nil
	}
	item := m.flatList[m.cursor]
	if item.IsHeader {
		return nil
	}
	return item.Record
}

// SelectByID moves the cursor to the pick with the given id.
func (m *Model) SelectByID(id string) bool {
	for i, item := range m.flatList {
		if !item.IsHeader && item.Record.ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return true
		}
	}
	return false
}

// refresh re-evaluates the query and keeps the selection when possible.
func (m *Model) refresh() {
	var selectedID string
	if r := m.Selected(); r != nil {
		selectedID = r.ID
	}

	m.buckets = query.Arrange(m.records, m.query)
	m.flatList = buildFlatList(m.buckets)

	if selectedID != "" && m.SelectByID(selectedID) {
		return
	}
	m.cursor = 0
	m.offset = 0
	m.ensureCursorInBounds()
}

// buildFlatList creates a flattened list for cursor navigation. The
// ungrouped bucket has no header.
func buildFlatList(buckets []query.Bucket) []Item {
	var items []Item
	for i := range buckets {
		bucket := &buckets[i]
		if bucket.Key != "" {
			items = append(items, Item{IsHeader: true, Header: bucket.Key})
		}
		for j := range bucket.Records {
			items = append(items, Item{Record: &bucket.Records[j]})
		}
	}
	return items
}

// listHeight returns the number of visible list rows: the panel border,
// title, filter line, two separators and the detail footer take the rest.
func (m Model) listHeight() int {
	return m.height - 7
}

// ensureCursorVisible keeps the cursor on screen, showing the bucket header
// directly above it when there is one.
func (m *Model) ensureCursorVisible() {
	height := m.listHeight()
	if height <= 0 {
		return
	}

	target := m.cursor
	if target > 0 && target < len(m.flatList) && m.flatList[target-1].IsHeader {
		target--
	}
	if target < m.offset {
		m.offset = target
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	maxOffset := max(len(m.flatList)-height, 0)
	m.offset = max(min(m.offset, maxOffset), 0)
}

// ensureCursorInBounds clamps the cursor and moves it off headers.
func (m *Model) ensureCursorInBounds() {
	if len(m.flatList) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}

	pos := max(min(m.cursor, len(m.flatList)-1), 0)
	for pos < len(m.flatList) && m.flatList[pos].IsHeader {
		pos++
	}
	if pos >= len(m.flatList) {
		pos = len(m.flatList) - 1
		for pos > 0 && m.flatList[pos].IsHeader {
			pos--
		}
	}

	m.cursor = pos
	m.ensureCursorVisible()
}

// moveCursor moves the cursor by delta, skipping bucket headers.
func (m *Model) moveCursor(delta int) {
	if len(m.flatList) == 0 || delta == 0 {
		return
	}

	pos := max(min(m.cursor+delta, len(m.flatList)-1), 0)
	step := 1
	if delta < 0 {
		step = -1
	}
	for pos >= 0 && pos < len(m.flatList) && m.flatList[pos].IsHeader {
		pos += step
	}
	if pos < 0 || pos >= len(m.flatList) {
		return
	}

	m.cursor = pos
	m.ensureCursorVisible()
}
