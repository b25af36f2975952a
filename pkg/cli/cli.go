package cli

import (
	"flag"

	"taskman/pkg/commands"
	"taskman/pkg/config"
	"taskman/pkg/database"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Database   string
	Verbose    bool

	// Task operations
	AddTask      string
	DescFlag     string
	DueFlag      string
	PriorityFlag string
	DoneID       int64
	UndoneID     int64
	DeleteID     int64

	// Listing
	ListFlag   bool
	SearchFlag string
	SortFlag   string
	OrderFlag  string

	// Maintenance and export
	ClearCompleted bool
	YesFlag        bool
	ExportFile     string

	// Weather lookup
	WeatherCity string
	APIKeyFlag  string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&args.Database, "database", "", "Path to database file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Task operations
	flag.StringVar(&args.AddTask, "add", "", "Add a new task with the given title")
	flag.StringVar(&args.DescFlag, "desc", "", "Description for the new task")
	flag.StringVar(&args.DueFlag, "due", "", "Due date for the new task (YYYY-MM-DD)")
	flag.StringVar(&args.PriorityFlag, "priority", "", "Priority for the new task (low, medium, high)")
	flag.Int64Var(&args.DoneID, "done", 0, "Mark the task with this id as completed")
	flag.Int64Var(&args.UndoneID, "undone", 0, "Mark the task with this id as not completed")
	flag.Int64Var(&args.DeleteID, "delete", 0, "Delete the task with this id")

	// Listing
	flag.BoolVar(&args.ListFlag, "list", false, "Print tasks and exit")
	flag.StringVar(&args.SearchFlag, "search", "", "Filter listed tasks by title/description text")
	flag.StringVar(&args.SortFlag, "sort", "", "Sort column for -list (id, title, due_date, priority, ...)")
	flag.StringVar(&args.OrderFlag, "order", "", "Sort order for -list (asc, desc)")

	// Maintenance and export
	flag.BoolVar(&args.ClearCompleted, "clear-completed", false, "Delete all completed tasks")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")
	flag.StringVar(&args.ExportFile, "export", "", "Export tasks to a CSV file")

	// Weather lookup
	flag.StringVar(&args.WeatherCity, "weather", "", "Print current weather for a city")
	flag.StringVar(&args.APIKeyFlag, "apikey", "", "OpenWeatherMap API key (overrides config)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(store *database.Store, cfg config.Config, args *Args) bool {
	if args.AddTask != "" {
		commands.HandleAddTask(store, args.AddTask, args.DescFlag, args.DueFlag, args.PriorityFlag)
		return true
	}

	if args.DoneID != 0 {
		commands.HandleToggleTask(store, args.DoneID, true)
		return true
	}

	if args.UndoneID != 0 {
		commands.HandleToggleTask(store, args.UndoneID, false)
		return true
	}

	if args.DeleteID != 0 {
		commands.HandleDeleteTask(store, args.DeleteID)
		return true
	}

	if args.ListFlag {
		commands.HandleListCommand(store, args.SearchFlag, args.SortFlag, args.OrderFlag)
		return true
	}

	if args.ClearCompleted {
		commands.HandleClearCompleted(store, args.YesFlag)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(store, args.ExportFile)
		return true
	}

	if args.WeatherCity != "" {
		apiKey := cfg.WeatherAPIKey
		if args.APIKeyFlag != "" {
			apiKey = args.APIKeyFlag
		}
		commands.HandleWeatherCommand(apiKey, args.WeatherCity)
		return true
	}

	// No CLI command was handled
	return false
}
