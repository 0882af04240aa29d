package app

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/aotw/internal/album"
	"github.com/llehouerou/aotw/internal/config"
	"github.com/llehouerou/aotw/internal/query"
	"github.com/llehouerou/aotw/internal/ui/picks"
	"github.com/llehouerou/aotw/internal/ui/testutil"
)

var errOffline = errors.New("dial tcp: connection refused")

func testRecords() []album.Record {
	return []album.Record{
		{ID: "a1", PickNumber: 1, Artist: "Air", Title: "Moon Safari", Year: 1998, PickedAt: "2025-01-05", Picker: "Sam"},
		{ID: "b2", PickNumber: 2, Artist: "Boards of Canada", Title: "Geogaddi", Year: 2002, PickedAt: "2025-06-10", Picker: "Alex"},
		{ID: "c3", PickNumber: 3, Artist: "Can", Title: "Tago Mago", Year: 1971, PickedAt: "2024-11-02", Picker: "Sam"},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := &config.Config{DataSource: "https://aotw.example.com/data.json"}
	m := New(cfg).WithLoader(func(_ context.Context, source string) ([]album.Record, error) {
		assert.Equal(t, "https://aotw.example.com/data.json", source)
		return testRecords(), nil
	})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		result, _ := m.Update(msg)
		var ok bool
		m, ok = result.(Model)
		require.True(t, ok, "Update should return app.Model")
	}
	return m
}

func loaded(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	return update(t, m, LoadDatasetCmd(m.load, m.source)())
}

func TestLoadDatasetCmd(t *testing.T) {
	m := newTestModel(t)

	msg, ok := LoadDatasetCmd(m.load, m.source)().(DatasetLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Len(t, msg.Records, 3)
}

func TestLoading_WaitingShowsNothing(t *testing.T) {
	m := newTestModel(t)
	assert.Empty(t, m.View())
}

func TestLoading_ShowsLoadingScreen(t *testing.T) {
	m := newTestModel(t)

	result, cmd := m.Update(ShowLoadingMsg{})
	m = result.(Model)
	assert.NotNil(t, cmd, "loading screen should start ticking")
	assert.Contains(t, testutil.Plain(m.View()), "Loading albums...")

	m = update(t, m, LoadingTickMsg{}, LoadingTickMsg{})
	assert.Equal(t, 2, m.LoadingFrame)
}

func TestLoading_ShowAfterDoneIgnored(t *testing.T) {
	m := loaded(t)

	result, cmd := m.Update(ShowLoadingMsg{})
	m = result.(Model)
	assert.Nil(t, cmd)
	assert.NotContains(t, testutil.Plain(m.View()), "Loading albums...")
}

func TestLoaded_ShowsPicks(t *testing.T) {
	m := loaded(t)

	require.NoError(t, m.Err())
	assert.Len(t, m.Records(), 3)
	assert.Equal(t, PagePicks, m.Page())

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 30)
	assert.Contains(t, testutil.Plain(view), "album of the week")
	assert.NotEmpty(t, testutil.FindLine(view, "Moon Safari (1998)"))
}

func TestLoadError(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, DatasetLoadedMsg{Err: errOffline})

	require.ErrorIs(t, m.Err(), errOffline)
	view := testutil.Plain(m.View())
	assert.Contains(t, view, "Failed to load albums from 'https://aotw.example.com/data.json'")
	assert.Contains(t, view, "r retry")

	// Picks keys do nothing while the dataset is missing
	m = update(t, m, testutil.Key("s"))
	assert.Equal(t, query.SortByPickNumber, m.Picks.Query().SortKey)
}

func TestLoadError_Retry(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, DatasetLoadedMsg{Err: errOffline})

	result, cmd := m.Update(testutil.Key("r"))
	m = result.(Model)
	require.NotNil(t, cmd)
	require.NoError(t, m.Err())
	assert.Empty(t, m.View(), "retry goes back to the waiting state")

	m = update(t, m, LoadDatasetCmd(m.load, m.source)())
	assert.Len(t, m.Records(), 3)
}

func TestPageSwitching(t *testing.T) {
	m := loaded(t)

	m = update(t, m, testutil.SpecialKey(tea.KeyTab))
	assert.Equal(t, PageAnalytics, m.Page())
	assert.Contains(t, testutil.Plain(m.View()), "Picks by release decade")

	m = update(t, m, testutil.SpecialKey(tea.KeyTab))
	assert.Equal(t, PageAbout, m.Page())
	view := testutil.Plain(m.View())
	assert.Contains(t, view, "3 albums")
	assert.Contains(t, view, "2 people")
	assert.NotEmpty(t, testutil.FindLine(view, "q, ctrl+c"))
	assert.Contains(t, testutil.FindLine(view, "q, ctrl+c"), "Quit")
	assert.Contains(t, testutil.FindLine(view, "Previous page"), "shift+tab")

	m = update(t, m, testutil.SpecialKey(tea.KeyTab))
	assert.Equal(t, PagePicks, m.Page())

	m = update(t, m, testutil.SpecialKey(tea.KeyShiftTab))
	assert.Equal(t, PageAbout, m.Page())

	m = update(t, m, testutil.SpecialKey(tea.KeyF2))
	assert.Equal(t, PageAnalytics, m.Page())
	m = update(t, m, testutil.SpecialKey(tea.KeyF1))
	assert.Equal(t, PagePicks, m.Page())
}

func TestPicksKeysForwarded(t *testing.T) {
	m := loaded(t)

	m = update(t, m, testutil.Key("s"), testutil.Key("r"))
	assert.Equal(t, query.SortByArtist, m.Picks.Query().SortKey)
	assert.Equal(t, query.Desc, m.Picks.Query().Direction)

	// Not forwarded from other pages
	m = update(t, m, testutil.SpecialKey(tea.KeyTab), testutil.Key("s"))
	assert.Equal(t, query.SortByArtist, m.Picks.Query().SortKey)
}

func TestSearchCapturesQuitKey(t *testing.T) {
	m := loaded(t)
	m = update(t, m, testutil.Key("/"))
	require.True(t, m.Picks.IsSearching())

	_, cmd := m.Update(testutil.Key("q"))
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit, "q while searching is text")
	}

	m = update(t, m, testutil.Key("q"), testutil.SpecialKey(tea.KeyTab))
	assert.Equal(t, PagePicks, m.Page(), "tab while searching stays in the search box")
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", testutil.Key("q")},
		{"ctrl+c", testutil.SpecialKey(tea.KeyCtrlC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t)
			_, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok)
		})
	}
}

func TestNew_UsesConfigDefaults(t *testing.T) {
	cfg := &config.Config{Defaults: config.DefaultsConfig{SortBy: "year", SortDir: "desc", GroupBy: "pick_year"}}
	m := New(cfg)

	q := m.Picks.Query()
	assert.Equal(t, query.SortByYear, q.SortKey)
	assert.Equal(t, query.Desc, q.Direction)
	assert.Equal(t, query.GroupByPickYear, q.GroupBy)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 album", plural(1, "album", "albums"))
	assert.Equal(t, "1,204 albums", plural(1204, "album", "albums"))
	assert.Equal(t, "0 people", plural(0, "person", "people"))
}

// captureLog redirects the standard logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T, m Model) Model
		want string
	}{
		{
			name: "dataset loaded",
			run: func(t *testing.T, m Model) Model {
				return update(t, m, LoadDatasetCmd(m.load, m.source)())
			},
			want: "loaded 3 picks from https://aotw.example.com/data.json",
		},
		{
			name: "load failed",
			run: func(t *testing.T, m Model) Model {
				return update(t, m, DatasetLoadedMsg{Err: errOffline})
			},
			want: "Failed to load albums from 'https://aotw.example.com/data.json': dial tcp: connection refused",
		},
		{
			name: "retry",
			run: func(t *testing.T, m Model) Model {
				return update(t, m, DatasetLoadedMsg{Err: errOffline}, testutil.Key("r"))
			},
			want: "retrying load from https://aotw.example.com/data.json",
		},
		{
			name: "query changed",
			run: func(t *testing.T, m Model) Model {
				q := query.Query{
					SearchTerm: "can",
					Filters:    map[query.Field]string{query.FieldPicker: "Sam", query.FieldDecade: "1970"},
					SortKey:    query.SortByYear,
					Direction:  query.Desc,
					GroupBy:    query.GroupByPickYear,
				}
				return update(t, m, picks.QueryChangedMsg{Query: q})
			},
			want: `query: search="can" decade=1970 picker=Sam sort=year desc group=pick_year`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			tt.run(t, newTestModel(t))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestLogging_PicksKeyReachesLog(t *testing.T) {
	m := loaded(t)
	buf := captureLog(t)

	result, cmd := m.Update(testutil.Key("s"))
	m = result.(Model)
	require.NotNil(t, cmd)
	update(t, m, cmd())

	assert.Contains(t, buf.String(), "sort=artist asc")
}
