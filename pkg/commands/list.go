package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"taskman/pkg/database"
)

// HandleListCommand processes the -list command
func HandleListCommand(store *database.Store, search, sortBy, order string) {
	tasks, err := store.List(database.ListOptions{
		Filter:    search,
		SortBy:    sortBy,
		SortOrder: database.SortOrder(order),
	})
	if err != nil {
		fmt.Printf("Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTITLE\tDUE\tPRIORITY")
	for _, task := range tasks {
		done := "[ ]"
		if task.Completed {
			done = "[x]"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", task.ID, done, task.Title, task.DueDate, task.Priority)
	}
	w.Flush()

	fmt.Printf("%d task(s)\n", len(tasks))
}
