package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":        {"ctrl+b", "show/hide commands"},
	"QuitApp":         {"q", "quit"},
	"ToggleComplete":  {"space", "toggle completed"},
	"AddTask":         {"a", "add task"},
	"EditTask":        {"e", "edit task"},
	"DeleteTask":      {"d", "delete task"},
	"SearchTasks":     {"ctrl+f,/", "search tasks"},
	"CycleSortBy":     {"s", "cycle sort column"},
	"ToggleSortOrder": {"o", "toggle sort order"},
	"ExportCSV":       {"x", "export tasks to CSV"},
	"ClearCompleted":  {"ctrl+x", "delete all completed tasks"},
}

type KeyMap struct {
	ShowHelp        key.Binding
	QuitApp         key.Binding
	ToggleComplete  key.Binding
	AddTask         key.Binding
	EditTask        key.Binding
	DeleteTask      key.Binding
	SearchTasks     key.Binding
	CycleSortBy     key.Binding
	ToggleSortOrder key.Binding
	ExportCSV       key.Binding
	ClearCompleted  key.Binding
}

// BuildKeyMap assembles the key bindings, letting entries in
// configOverrides replace the default key for an action. Override
// names are matched case-insensitively because viper lowercases keys
// read from the config file.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	overrides := make(map[string]string, len(configOverrides))
	for action, keyStr := range configOverrides {
		overrides[strings.ToLower(action)] = keyStr
	}

	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := overrides[strings.ToLower(action)]; exists && override != "" {
			keyStr = override
		}

		binding := parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		switch action {
		case "ShowHelp":
			km.ShowHelp = binding
		case "QuitApp":
			km.QuitApp = binding
		case "ToggleComplete":
			km.ToggleComplete = binding
		case "AddTask":
			km.AddTask = binding
		case "EditTask":
			km.EditTask = binding
		case "DeleteTask":
			km.DeleteTask = binding
		case "SearchTasks":
			km.SearchTasks = binding
		case "CycleSortBy":
			km.CycleSortBy = binding
		case "ToggleSortOrder":
			km.ToggleSortOrder = binding
		case "ExportCSV":
			km.ExportCSV = binding
		case "ClearCompleted":
			km.ClearCompleted = binding
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
