package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/aotw/internal/album"
)

// LoadingMessage is implemented by messages related to dataset loading.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// DatasetLoadedMsg carries the result of loading the dataset.
type DatasetLoadedMsg struct {
	Records []album.Record
	Err     error
}

func (DatasetLoadedMsg) loadingMessage() {}

// ShowLoadingMsg is sent when a load is slow enough to show the loading screen.
type ShowLoadingMsg struct{}

func (ShowLoadingMsg) loadingMessage() {}

// LoadingTickMsg animates the loading screen.
type LoadingTickMsg struct{}

func (LoadingTickMsg) loadingMessage() {}
