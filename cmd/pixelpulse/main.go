package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pixelpulse/internal/config"
	"pixelpulse/internal/state"
	"pixelpulse/internal/store"
	"pixelpulse/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile := cfg.LogFile
	if logFile == "" && os.Getenv("DEBUG") != "" {
		logFile = "debug.log"
	}

	initial := state.New()
	initial.Tab = cfg.Tab()
	st := store.New(initial)

	if logFile != "" {
		f, err := tea.LogToFile(logFile, "pixelpulse")
		if err != nil {
			fmt.Printf("failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		st.Subscribe(store.LogCommands)
	}

	if err := ui.Run(st, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
