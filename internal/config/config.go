package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"combobox/internal/eventbus"
)

// FileName is the per-directory config file name
const FileName = ".combobox.toml"

// DefaultPlaceholder is shown in the empty text field
const DefaultPlaceholder = "Type to search frameworks (e.g., 'web', 'python')..."

// Config represents the application configuration
type Config struct {
	Version     int             `toml:"version"`
	Placeholder string          `toml:"placeholder"`
	Catalog     string          `toml:"catalog"` // catalog file or directory; empty uses the built-in list
	UISettings  UISettings      `toml:"ui"`
	Logging     LoggingSettings `toml:"logging"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CloseOnBlur   bool `toml:"close_on_blur"`
	ShowKeywords  bool `toml:"show_keywords"`
	AsyncSearch   bool `toml:"async_search"`
	SearchDelayMS int  `toml:"search_delay_ms"`
}

// LoggingSettings controls the log file
type LoggingSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path.
// An empty path resolves via ResolvePath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = ResolvePath()
	}
	return &configService{
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// ResolvePath prefers ./.combobox.toml and falls back to the user config dir
func ResolvePath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			return FileName
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "combobox", "config.toml")
}

// Path returns the bound config file path
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:        cs.filePath,
			Placeholder: cfg.Placeholder,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the bound file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if c.UISettings.SearchDelayMS < 0 {
		return fmt.Errorf("search_delay_ms must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Placeholder: DefaultPlaceholder,
		UISettings: UISettings{
			CloseOnBlur:   false,
			ShowKeywords:  true,
			AsyncSearch:   false,
			SearchDelayMS: 150,
		},
		Logging: LoggingSettings{
			File: "combobox.log",
		},
	}
}
