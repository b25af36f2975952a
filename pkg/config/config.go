package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"taskman/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	Database      string            `mapstructure:"database"`
	ExportFile    string            `mapstructure:"export_file"`
	WeatherAPIKey string            `mapstructure:"weather_api_key"`
	KeyMap        map[string]string `mapstructure:"keymap"`
	Styles        Styles            `mapstructure:"styles"`
}

// Styles holds the application colors
type Styles struct {
	BorderColor       string `mapstructure:"border_color"`
	AccentColor       string `mapstructure:"accent_color"`
	NormalTextColor   string `mapstructure:"normal_text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color"`
	SelectedBgColor   string `mapstructure:"selected_bg_color"`
	ErrorColor        string `mapstructure:"error_color"`
	DoneColor         string `mapstructure:"done_color"`
}

// DefaultStyles returns the colors used when the config file carries
// no styles section.
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		DoneColor:         "242",
	}
}

// Load reads the application configuration from configPath. With an
// empty path the default location ~/.config/taskman/config.json is
// used and created with default values on first run.
func Load(configPath string) (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "taskman")
	defaults := Config{
		Database:   filepath.Join(configDir, "tasks.db"),
		ExportFile: filepath.Join(homeDir, "tasks_export.csv"),
		KeyMap:     keymaps.GetDefaultKeyMappings(),
		Styles:     DefaultStyles(),
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("database", defaults.Database)
	v.SetDefault("export_file", defaults.ExportFile)
	v.SetDefault("weather_api_key", "")
	v.SetDefault("keymap", defaults.KeyMap)
	v.SetDefault("styles.border_color", defaults.Styles.BorderColor)
	v.SetDefault("styles.accent_color", defaults.Styles.AccentColor)
	v.SetDefault("styles.normal_text_color", defaults.Styles.NormalTextColor)
	v.SetDefault("styles.selected_text_color", defaults.Styles.SelectedTextColor)
	v.SetDefault("styles.selected_bg_color", defaults.Styles.SelectedBgColor)
	v.SetDefault("styles.error_color", defaults.Styles.ErrorColor)
	v.SetDefault("styles.done_color", defaults.Styles.DoneColor)

	if configPath == "" {
		configPath = filepath.Join(configDir, "config.json")
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return defaults, err
			}
		}
		// Config file not found, create it with the defaults
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return defaults, err
		}
		if err := v.WriteConfigAs(configPath); err != nil {
			return defaults, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, err
	}
	return cfg, nil
}
