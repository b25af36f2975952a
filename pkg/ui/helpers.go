package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"taskman/pkg/database"
)

// loadTasks retrieves and displays tasks using the current search and
// sort state.
func (m *Model) loadTasks() {
	tasks, err := m.store.List(database.ListOptions{
		Filter:    m.searchTerm,
		SortBy:    sortKeys[m.sortIdx],
		SortOrder: m.sortOrder,
	})
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.tasks = tasks

	rows := make([]table.Row, 0, len(tasks))
	for _, task := range tasks {
		done := " "
		if task.Completed {
			done = "x"
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(task.ID, 10),
			done,
			task.Title,
			task.DueDate,
			string(task.Priority),
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selectedTask returns the task under the table cursor.
func (m *Model) selectedTask() (database.Task, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tasks) {
		return database.Task{}, false
	}
	return m.tasks[idx], true
}

// toggleComplete flips the completed flag of the selected task.
func (m *Model) toggleComplete() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}

	task.Completed = !task.Completed
	if err := m.store.Update(task); err != nil {
		m.err = err
		return
	}
	m.loadTasks()
}

// focusInput moves the form focus to input number idx, wrapping both ways.
func (m *Model) focusInput(idx int) {
	const numInputs = 4
	m.activeInput = ((idx % numInputs) + numInputs) % numInputs

	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueDateInput.Blur()
	m.priorityInput.Blur()

	switch m.activeInput {
	case 0:
		m.titleInput.Focus()
	case 1:
		m.descInput.Focus()
	case 2:
		m.dueDateInput.Focus()
	case 3:
		m.priorityInput.Focus()
	}
}

// resetInputs clears the form and focuses the title field.
func (m *Model) resetInputs() {
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	m.dueDateInput.SetValue("")
	m.priorityInput.SetValue("")
	m.activeInput = 0
	m.focusInput(0)
}

// submitForm persists the form contents based on the current mode.
func (m *Model) submitForm() {
	title := strings.TrimSpace(m.titleInput.Value())
	desc := strings.TrimSpace(m.descInput.Value())
	dueDate := strings.TrimSpace(m.dueDateInput.Value())

	priority, err := database.ParsePriority(m.priorityInput.Value())
	if err != nil {
		m.err = err
		return
	}

	switch m.mode {
	case AddMode:
		id, err := m.store.Insert(title, desc, dueDate, priority)
		if err != nil {
			m.err = err
			return
		}
		m.statusMsg = fmt.Sprintf("Added task %d", id)

	case EditMode:
		if m.editingTask == nil {
			return
		}
		task := *m.editingTask
		task.Title = title
		task.Description = desc
		task.DueDate = dueDate
		task.Priority = priority

		if err := m.store.Update(task); err != nil {
			m.err = err
			return
		}
		m.statusMsg = fmt.Sprintf("Updated task %d", task.ID)
	}

	m.err = nil
	m.mode = NormalMode
	m.resetInputs()
	m.editingTask = nil
	m.loadTasks()
}
