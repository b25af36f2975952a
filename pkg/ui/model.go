package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskman/pkg/config"
	"taskman/pkg/database"
	"taskman/pkg/keymaps"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	ClearCompletedConfirmMode
	SearchMode
	HelpViewMode
)

// sortKeys is the cycle order for the sort-column key. Every entry
// must be a column the store accepts.
var sortKeys = []string{"id", "title", "due_date", "priority", "created_at", "completed"}

// Model represents the application state
type Model struct {
	table         table.Model
	tasks         []database.Task
	store         *database.Store
	width, height int
	err           error
	statusMsg     string

	// Configuration
	cfg    config.Config
	keyMap keymaps.KeyMap

	// View state
	searchTerm string
	sortIdx    int
	sortOrder  database.SortOrder

	// Form state
	mode          InputMode
	titleInput    textinput.Model
	descInput     textinput.Model
	dueDateInput  textinput.Model
	priorityInput textinput.Model
	searchInput   textinput.Model
	activeInput   int

	// Edit/delete state
	editingTask *database.Task
}

// NewModel creates a new UI model backed by the given store
func NewModel(store *database.Store, cfg config.Config) Model {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "", Width: 3},
		{Title: "Title", Width: 32},
		{Title: "Due", Width: 10},
		{Title: "Priority", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(cfg.Styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(cfg.Styles.SelectedTextColor)).
		Background(lipgloss.Color(cfg.Styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.Focus()
	titleInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Description"
	descInput.Width = 40

	dueDateInput := textinput.New()
	dueDateInput.Placeholder = "Due Date (YYYY-MM-DD, optional)"
	dueDateInput.Width = 40

	priorityInput := textinput.New()
	priorityInput.Placeholder = "Priority (low, medium, high)"
	priorityInput.Width = 40

	searchInput := textinput.New()
	searchInput.Placeholder = "Search"
	searchInput.Width = 40

	m := Model{
		table:         t,
		store:         store,
		cfg:           cfg,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		sortOrder:     database.SortAsc,
		mode:          NormalMode,
		titleInput:    titleInput,
		descInput:     descInput,
		dueDateInput:  dueDateInput,
		priorityInput: priorityInput,
		searchInput:   searchInput,
	}

	m.loadTasks()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}
