package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/aotw/internal/app"
	"github.com/llehouerou/aotw/internal/config"
	"github.com/llehouerou/aotw/internal/errmsg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	// The terminal belongs to the UI: log to a file or not at all.
	if cfg.Debug {
		logPath, err := config.LogPath()
		if err != nil {
			fmt.Println(errmsg.Format(errmsg.OpLogOpen, err))
			os.Exit(1)
		}
		f, err := tea.LogToFile(logPath, "aotw")
		if err != nil {
			fmt.Println(errmsg.Format(errmsg.OpLogOpen, err))
			os.Exit(1)
		}
		defer f.Close()
		log.Printf("starting, source %s", cfg.DataSource)
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println(errmsg.Format(errmsg.OpRun, err))
		os.Exit(1) //nolint:gocritic // exitAfterDefer
	}
}
