// Package app contains the root model of the terminal interface.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/aotw/internal/album"
	"github.com/llehouerou/aotw/internal/config"
	"github.com/llehouerou/aotw/internal/ui/picks"
)

// Page identifies the visible page.
type Page int

const (
	PagePicks Page = iota
	PageAnalytics
	PageAbout
	pageCount
)

// loadingState tracks the dataset loading phase.
type loadingState int

const (
	loadingWaiting loadingState = iota // load running, nothing shown yet
	loadingShowing                     // load still running, loading screen shown
	loadingDone                        // load finished, successfully or not
)

// LoaderFunc fetches the dataset from a source.
type LoaderFunc func(ctx context.Context, source string) ([]album.Record, error)

// Model is the root application model.
type Model struct {
	source string
	load   LoaderFunc

	records []album.Record
	loadErr error

	loadingState loadingState
	LoadingFrame int

	page  Page
	Picks picks.Model

	width  int
	height int
}

// New creates the application model from configuration.
func New(cfg *config.Config) Model {
	return Model{
		source: cfg.DataSource,
		load:   album.Load,
		Picks:  picks.New(cfg.DefaultQuery()),
	}
}

// WithLoader replaces the dataset loader.
func (m Model) WithLoader(load LoaderFunc) Model {
	m.load = load
	return m
}

// Init starts loading the dataset.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadDatasetCmd(m.load, m.source),
		ShowLoadingAfterDelayCmd(),
	)
}

// Page returns the visible page.
func (m Model) Page() Page {
	return m.page
}

// Records returns the loaded dataset.
func (m Model) Records() []album.Record {
	return m.records
}

// Err returns the dataset loading error, if any.
func (m Model) Err() error {
	return m.loadErr
}
