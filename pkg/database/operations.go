package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"taskman/pkg/utils"
)

// sortColumns maps accepted sort keys to the expression used in ORDER
// BY. Caller input never reaches the query text except through this
// table; priority sorts by its declared Low < Medium < High order
// rather than alphabetically.
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"due_date":    "due_date",
	"priority":    "CASE priority WHEN 'Low' THEN 1 WHEN 'Medium' THEN 2 WHEN 'High' THEN 3 ELSE 0 END",
	"completed":   "completed",
	"created_at":  "created_at",
}

func validateTask(title, dueDate string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if dueDate != "" {
		if _, err := time.Parse(DateFormat, dueDate); err != nil {
			return &ValidationError{Field: "due_date", Reason: fmt.Sprintf("%q is not a %s date", dueDate, "YYYY-MM-DD")}
		}
	}
	return nil
}

// Insert adds a new task and returns its assigned id. New tasks start
// uncompleted with created_at set to the current time.
func (s *Store) Insert(title, description, dueDate string, priority Priority) (int64, error) {
	if err := validateTask(title, dueDate); err != nil {
		return 0, err
	}
	if priority == "" {
		priority = PriorityMedium
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (title, description, due_date, priority, completed, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		title, description, dueDate, priority,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	utils.Log("Inserted task %d: %s", id, title)
	return id, nil
}

// Get retrieves a single task by id. Returns ErrNotFound if the id is
// absent.
func (s *Store) Get(id int64) (Task, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, due_date, priority, completed, created_at
		 FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return Task{}, ErrNotFound
	}
	return task, err
}

// Update replaces every mutable field of the task matching task.ID.
// The id and created_at columns are never touched. Returns ErrNotFound
// if no task has that id.
func (s *Store) Update(task Task) error {
	if err := validateTask(task.Title, task.DueDate); err != nil {
		return err
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}

	res, err := s.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, priority = ?, completed = ?
		 WHERE id = ?`,
		task.Title, task.Description, task.DueDate, task.Priority, task.Completed, task.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	utils.Log("Updated task %d", task.ID)
	return nil
}

// Delete removes the task with the given id. Deleting an absent id is
// not an error.
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err == nil {
		utils.Log("Deleted task %d", id)
	}
	return err
}

// List retrieves tasks according to opts. With zero options every task
// is returned ordered by id ascending.
func (s *Store) List(opts ListOptions) ([]Task, error) {
	query := `SELECT id, title, description, due_date, priority, completed, created_at FROM tasks`

	var args []any
	if opts.Filter != "" {
		query += " WHERE title LIKE ? OR description LIKE ?"
		pattern := "%" + opts.Filter + "%"
		args = append(args, pattern, pattern)
	}

	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "id"
	}
	order := "ASC"
	if strings.EqualFold(string(opts.SortOrder), "DESC") {
		order = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id ASC", column, order)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	utils.Log("Loaded %d tasks from database", len(tasks))
	return tasks, nil
}

// ClearCompleted deletes every completed task and reports how many
// rows were removed.
func (s *Store) ClearCompleted() (int64, error) {
	res, err := s.db.Exec("DELETE FROM tasks WHERE completed = 1")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	utils.Log("Cleared %d completed tasks", n)
	return n, nil
}

// scanTask reads one result row into a Task. The created_at column is
// stored as RFC 3339 text.
func scanTask(scan func(dest ...any) error) (Task, error) {
	var task Task
	var description sql.NullString
	var dueDate sql.NullString
	var createdAt sql.NullString

	if err := scan(
		&task.ID,
		&task.Title,
		&description,
		&dueDate,
		&task.Priority,
		&task.Completed,
		&createdAt,
	); err != nil {
		return Task{}, err
	}

	task.Description = description.String
	task.DueDate = dueDate.String
	if createdAt.String != "" {
		t, err := time.Parse(time.RFC3339, createdAt.String)
		if err != nil {
			return Task{}, fmt.Errorf("parsing created_at of task %d: %w", task.ID, err)
		}
		task.CreatedAt = t
	}
	return task, nil
}
