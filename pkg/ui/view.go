package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"taskman/pkg/database"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.cfg.Styles.SelectedTextColor)).
		Background(lipgloss.Color(m.cfg.Styles.AccentColor)).
		Padding(0, 1)

	switch m.mode {
	case NormalMode:
		sb.WriteString(headerStyle.Render(" Task Manager "))
		sb.WriteString("\n\n")
		sb.WriteString(m.table.View())
		sb.WriteString("\n")

		// Current filter and ordering
		viewInfo := fmt.Sprintf("%d task(s)", len(m.tasks))
		if m.searchTerm != "" {
			viewInfo += fmt.Sprintf(" matching %q", m.searchTerm)
		}
		order := "asc"
		if m.sortOrder == database.SortDesc {
			order = "desc"
		}
		viewInfo += fmt.Sprintf(" | sorted by %s (%s)", sortKeys[m.sortIdx], order)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Styles.NormalTextColor)).Render(viewInfo))
		sb.WriteString("\n")

		if m.statusMsg != "" {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Styles.AccentColor)).Render(m.statusMsg))
			sb.WriteString("\n")
		}

	case AddMode:
		sb.WriteString(headerStyle.Render(" Add Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(headerStyle.Render(" Edit Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(headerStyle.Background(lipgloss.Color(m.cfg.Styles.ErrorColor)).Render(" Delete Task "))
		sb.WriteString("\n\n")

		if m.editingTask != nil {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.editingTask.Title))
			sb.WriteString(fmt.Sprintf("Description: %s\n", m.editingTask.Description))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case ClearCompletedConfirmMode:
		sb.WriteString(headerStyle.Background(lipgloss.Color(m.cfg.Styles.ErrorColor)).Render(" Clear Completed "))
		sb.WriteString("\n\n")
		sb.WriteString("Delete all completed tasks?\n\n")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))

	case SearchMode:
		sb.WriteString(headerStyle.Render(" Search Tasks "))
		sb.WriteString("\n\n")
		sb.WriteString("Enter text to match against title and description:")
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())

	case HelpViewMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.cfg.Styles.AccentColor)).
			Bold(true)
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.cfg.Styles.NormalTextColor))

		addCommand := func(binding key.Binding) {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				descStyle.Render(binding.Help().Desc),
				keyStyle.Render(binding.Help().Key)))
		}

		addCommand(m.keyMap.QuitApp)
		addCommand(m.keyMap.ShowHelp)
		addCommand(m.keyMap.AddTask)
		addCommand(m.keyMap.EditTask)
		addCommand(m.keyMap.DeleteTask)
		addCommand(m.keyMap.ToggleComplete)
		addCommand(m.keyMap.SearchTasks)
		addCommand(m.keyMap.CycleSortBy)
		addCommand(m.keyMap.ToggleSortOrder)
		addCommand(m.keyMap.ExportCSV)
		addCommand(m.keyMap.ClearCompleted)
	}

	// Error message if any
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Styles.ErrorColor))
		sb.WriteString(errStyle.Render(fmt.Sprintf("\n\nError: %v", m.err)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

// helpBar renders a status bar with the actions for the current mode
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.cfg.Styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.cfg.Styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.cfg.Styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction("a", "add")
		addAction("e", "edit")
		addAction("d", "del")
		addAction("space", "toggle")
		addAction("/", "search")
		addAction("s/o", "sort/order")
		addAction("x", "export")
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case AddMode, EditMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode, ClearCompletedConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case SearchMode:
		addAction("enter", "search")
		addAction("esc", "cancel")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
		addAction("q", "quit")
	}

	return strings.Join(actions, separator)
}

// renderForm renders the input form for adding/editing tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Title:\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Description:\n")
	sb.WriteString(m.descInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Due Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dueDateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Priority (low, medium, high):\n")
	sb.WriteString(m.priorityInput.View())

	return sb.String()
}
