// Package export serializes the current task set to delimited text.
// It only ever reads from the store.
package export

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"taskman/pkg/database"
	"taskman/pkg/utils"
)

// Header is the fixed first row of every export file. Column order is
// part of the file format.
var Header = []string{"id", "title", "description", "due_date", "priority", "completed", "created_at"}

// WriteCSV writes every task, in store-default order, to a UTF-8 CSV
// file at path. An existing file is overwritten. The completed flag is
// serialized as 0/1. Returns the number of exported tasks.
func WriteCSV(s *database.Store, path string) (int, error) {
	tasks, err := s.List(database.ListOptions{})
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return 0, err
	}
	for _, task := range tasks {
		completed := "0"
		if task.Completed {
			completed = "1"
		}
		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.Description,
			task.DueDate,
			string(task.Priority),
			completed,
			task.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}

	utils.Log("Exported %d tasks to %s", len(tasks), path)
	return len(tasks), nil
}
