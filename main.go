package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskman/pkg/cli"
	"taskman/pkg/config"
	"taskman/pkg/database"
	"taskman/pkg/ui"
	"taskman/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Command-line database path wins over the config file
	if args.Database != "" {
		cfg.Database = args.Database
	}

	store, err := database.Open(cfg.Database)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// One-shot CLI commands run and exit without the TUI
	if cli.HandleCommands(store, cfg, args) {
		return
	}

	p := tea.NewProgram(ui.NewModel(store, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
