package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskman/pkg/database"
	"taskman/pkg/export"
	"taskman/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ToggleComplete):
				m.toggleComplete()

			case key.Matches(msg, m.keyMap.AddTask):
				m.mode = AddMode
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditTask):
				if task, ok := m.selectedTask(); ok {
					m.mode = EditMode
					m.editingTask = &task
					m.resetInputs()

					m.titleInput.SetValue(task.Title)
					m.descInput.SetValue(task.Description)
					m.dueDateInput.SetValue(task.DueDate)
					m.priorityInput.SetValue(string(task.Priority))
				}

			case key.Matches(msg, m.keyMap.DeleteTask):
				if task, ok := m.selectedTask(); ok {
					m.mode = DeleteConfirmMode
					m.editingTask = &task
				}

			case key.Matches(msg, m.keyMap.SearchTasks):
				m.mode = SearchMode
				m.searchInput.Focus()
				m.searchInput.SetValue("")
				return m, nil

			case key.Matches(msg, m.keyMap.CycleSortBy):
				m.sortIdx = (m.sortIdx + 1) % len(sortKeys)
				m.loadTasks()

			case key.Matches(msg, m.keyMap.ToggleSortOrder):
				if m.sortOrder == database.SortAsc {
					m.sortOrder = database.SortDesc
				} else {
					m.sortOrder = database.SortAsc
				}
				m.loadTasks()

			case key.Matches(msg, m.keyMap.ExportCSV):
				m.exportTasks()

			case key.Matches(msg, m.keyMap.ClearCompleted):
				m.mode = ClearCompletedConfirmMode

			case msg.String() == "esc" && m.searchTerm != "":
				// Drop the active search filter
				m.searchTerm = ""
				m.loadTasks()
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.resetInputs()
				m.editingTask = nil

			case "tab":
				m.focusInput(m.activeInput + 1)

			case "shift+tab":
				m.focusInput(m.activeInput - 1)

			case "enter":
				if m.activeInput == 3 { // Submit on enter from the last field (priority)
					m.submitForm()
				} else {
					m.focusInput(m.activeInput + 1)
				}
			}

			// Handle input updates
			switch m.activeInput {
			case 0:
				m.titleInput, cmd = m.titleInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.descInput, cmd = m.descInput.Update(msg)
				cmds = append(cmds, cmd)
			case 2:
				m.dueDateInput, cmd = m.dueDateInput.Update(msg)
				cmds = append(cmds, cmd)
			case 3:
				m.priorityInput, cmd = m.priorityInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case SearchMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.searchTerm = ""
				m.loadTasks()

			case "enter":
				m.searchTerm = m.searchInput.Value()
				utils.Log("Searching for: %s", m.searchTerm)
				m.mode = NormalMode
				m.loadTasks()
			}

			m.searchInput, cmd = m.searchInput.Update(msg)
			cmds = append(cmds, cmd)

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingTask != nil {
					if err := m.store.Delete(m.editingTask.ID); err != nil {
						m.err = err
					} else {
						m.statusMsg = "Task deleted"
						m.loadTasks()
					}
				}
				m.mode = NormalMode
				m.editingTask = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingTask = nil
			}

		case ClearCompletedConfirmMode:
			switch msg.String() {
			case "y", "Y":
				n, err := m.store.ClearCompleted()
				if err != nil {
					m.err = err
				} else {
					m.statusMsg = fmt.Sprintf("Deleted %d completed task(s)", n)
					m.loadTasks()
				}
				m.mode = NormalMode

			case "n", "N", "esc":
				m.mode = NormalMode
			}

		case HelpViewMode:
			switch {
			case msg.String() == "esc" || msg.String() == "ctrl+b":
				m.mode = NormalMode
			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 6)
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// exportTasks writes the full task set to the configured export path.
func (m *Model) exportTasks() {
	n, err := export.WriteCSV(m.store, m.cfg.ExportFile)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.statusMsg = fmt.Sprintf("Exported %d task(s) to %s", n, m.cfg.ExportFile)
}
