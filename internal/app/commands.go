package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadDatasetCmd loads the dataset in the background.
func LoadDatasetCmd(load LoaderFunc, source string) tea.Cmd {
	return func() tea.Msg {
		records, err := load(context.Background(), source)
		return DatasetLoadedMsg{Records: records, Err: err}
	}
}

// LoadingTickCmd returns a command that sends LoadingTickMsg for animation.
func LoadingTickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(_ time.Time) tea.Msg {
		return LoadingTickMsg{}
	})
}

// ShowLoadingAfterDelayCmd returns a command that sends ShowLoadingMsg after 400ms
// so fast loads don't flash.
func ShowLoadingAfterDelayCmd() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(_ time.Time) tea.Msg {
		return ShowLoadingMsg{}
	})
}
