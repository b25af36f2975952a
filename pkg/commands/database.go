package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"taskman/pkg/database"
)

// HandleToggleTask processes the -done and -undone commands
func HandleToggleTask(store *database.Store, id int64, completed bool) {
	task, err := store.Get(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fmt.Printf("No task with id %d\n", id)
		} else {
			fmt.Printf("Error loading task: %v\n", err)
		}
		os.Exit(1)
	}

	task.Completed = completed
	if err := store.Update(task); err != nil {
		fmt.Printf("Error updating task: %v\n", err)
		os.Exit(1)
	}

	state := "not completed"
	if completed {
		state = "completed"
	}
	fmt.Printf("Marked task %d as %s\n", id, state)
}

// HandleDeleteTask processes the -delete command
func HandleDeleteTask(store *database.Store, id int64) {
	if err := store.Delete(id); err != nil {
		fmt.Printf("Error deleting task: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted task %d\n", id)
}

// HandleClearCompleted processes the -clear-completed command
func HandleClearCompleted(store *database.Store, skipConfirm bool) {
	// Show confirmation unless -yes flag is used
	if !skipConfirm {
		fmt.Print("Are you sure you want to delete all completed tasks? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	n, err := store.ClearCompleted()
	if err != nil {
		fmt.Printf("Error clearing completed tasks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully deleted %d task(s)\n", n)
}
