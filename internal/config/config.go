package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultDataFile is used when no flag, environment variable, or
// config entry names a data file. Relative to the working directory.
const DefaultDataFile = "deep_work_data.yaml"

// EnvDataFile overrides the config file's data_file when set.
const EnvDataFile = "DEEPWORK_DATA_FILE"

// Config holds the optional user configuration.
type Config struct {
	DataFile        string `toml:"data_file"`
	PomodoroMinutes int    `toml:"pomodoro_minutes"`
	ChartWidth      int    `toml:"chart_width"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DataFile:        DefaultDataFile,
		PomodoroMinutes: 25,
		ChartWidth:      40,
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(configDir, "deepwork", "config.toml"), nil
}

// Load reads the config file, returning defaults if it does not
// exist. Missing values are filled in from the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.fillDefaults()
	return &cfg, nil
}

func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.DataFile == "" {
		c.DataFile = defaults.DataFile
	}
	if c.PomodoroMinutes == 0 {
		c.PomodoroMinutes = defaults.PomodoroMinutes
	}
	if c.ChartWidth == 0 {
		c.ChartWidth = defaults.ChartWidth
	}
}

// ResolveDataFile picks the data file path: the --file flag wins,
// then DEEPWORK_DATA_FILE, then the config entry.
func (c *Config) ResolveDataFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return env
	}
	return c.DataFile
}
