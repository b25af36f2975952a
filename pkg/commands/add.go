package commands

import (
	"fmt"
	"os"

	"taskman/pkg/database"
)

// HandleAddTask processes the -add command
func HandleAddTask(store *database.Store, title, description, dueDate, priorityStr string) {
	priority, err := database.ParsePriority(priorityStr)
	if err != nil {
		fmt.Printf("Error adding task: %v\n", err)
		os.Exit(1)
	}

	id, err := store.Insert(title, description, dueDate, priority)
	if err != nil {
		fmt.Printf("Error adding task: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added task %d: %s\n", id, title)
}
