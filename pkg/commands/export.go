package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"taskman/pkg/database"
	"taskman/pkg/export"
)

// HandleExportCommand processes the -export command
func HandleExportCommand(store *database.Store, filename string) {
	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	n, err := export.WriteCSV(store, filename)
	if err != nil {
		fmt.Printf("Error exporting tasks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d task(s) to %s\n", n, filename)
}
