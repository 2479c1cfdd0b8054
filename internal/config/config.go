// Package config loads tablero's YAML configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr           = "127.0.0.1:7420"
	DefaultEventBuffer    = 100
	TaskDisplayCompact    = "compact"
	TaskDisplayDetailed   = "detailed"
	defaultDirName        = ".tablero"
	defaultDatabaseFile   = "tablero.db"
	defaultConfigFileName = "config.yaml"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string       `yaml:"database_path"`
	Server       ServerConfig `yaml:"server"`
	Events       EventsConfig `yaml:"events"`
	Preferences  Preferences  `yaml:"preferences"`
	KeyMappings  KeyMappings  `yaml:"key_mappings"`
	ColorScheme  ColorScheme  `yaml:"theme"`

	path string
}

// ServerConfig configures `tablero serve` and the default client target
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// EventsConfig sizes the live update queues
type EventsConfig struct {
	Buffer           int `yaml:"buffer"`
	SubscriberBuffer int `yaml:"subscriber_buffer"`
}

// Preferences are UI choices remembered between sessions
type Preferences struct {
	SidebarCollapsed bool   `yaml:"sidebar_collapsed"`
	TaskDisplay      string `yaml:"task_display"` // "compact" or "detailed"
}

// Default returns a config with every value set to its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		c := Default()
		c.applyEnv()
		return c, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path, falling back to defaults if it doesn't exist
func LoadFrom(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	config.path = path
	loadThemeFile(config)
	config.applyDefaults()
	config.applyEnv()
	return config, nil
}

// Save writes the config back to the file it was loaded from (or the default path)
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		if configPath, err = Path(); err != nil {
			return err
		}
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", defaultConfigFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tablero", defaultConfigFileName), nil
}

// DataDir returns where the database and logs live: $TABLERO_HOME or ~/.tablero
func DataDir() (string, error) {
	if home := os.Getenv("TABLERO_HOME"); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, defaultDirName), nil
}

// loadThemeFile merges a theme from TABLERO_THEME_FILE over the configured one
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TABLERO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		if dir, err := DataDir(); err == nil {
			c.DatabasePath = filepath.Join(dir, defaultDatabaseFile)
		} else {
			c.DatabasePath = defaultDatabaseFile
		}
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Events.Buffer <= 0 {
		c.Events.Buffer = DefaultEventBuffer
	}
	if c.Events.SubscriberBuffer <= 0 {
		c.Events.SubscriberBuffer = 10
	}
	if c.Preferences.TaskDisplay != TaskDisplayDetailed {
		c.Preferences.TaskDisplay = TaskDisplayCompact
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets TABLERO_DB and TABLERO_ADDR override the file
func (c *Config) applyEnv() {
	if db := os.Getenv("TABLERO_DB"); db != "" {
		c.DatabasePath = db
	}
	if addr := os.Getenv("TABLERO_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}
