package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"autosuggest/internal/eventbus"
)

const (
	DefaultSuggestionListSize = 10
	DefaultSuggestionDelay    = 300 // milliseconds
	DefaultCacheSize          = 128

	SourceModePrefix = "prefix"
	SourceModeFuzzy  = "fuzzy"
)

var (
	ErrInvalidListSize  = errors.New("suggestion_list_size must be greater than zero")
	ErrInvalidDelay     = errors.New("suggestion_delay must not be negative")
	ErrInvalidMode      = errors.New("source mode must be \"prefix\" or \"fuzzy\"")
	ErrInvalidCacheSize = errors.New("cache_size must not be negative")
)

// Config represents the application configuration
type Config struct {
	Version      int                `toml:"version" yaml:"version"`
	Autocomplete AutocompleteConfig `toml:"autocomplete" yaml:"autocomplete"`
	Source       SourceConfig       `toml:"source" yaml:"source"`
	UISettings   UISettings         `toml:"ui" yaml:"ui"`
}

// AutocompleteConfig holds the settings the controller reacts to at runtime
type AutocompleteConfig struct {
	SuggestionListSize int `toml:"suggestion_list_size" yaml:"suggestion_list_size"`
	SuggestionDelay    int `toml:"suggestion_delay" yaml:"suggestion_delay"` // milliseconds
}

// SourceConfig describes where suggestions come from
type SourceConfig struct {
	Path      string `toml:"path" yaml:"path"` // .txt or .json catalog; empty uses the built-in list
	Mode      string `toml:"mode" yaml:"mode"`
	CacheSize int    `toml:"cache_size" yaml:"cache_size"` // 0 disables caching
	Latency   int    `toml:"latency" yaml:"latency"`       // simulated milliseconds per fetch
	Jitter    int    `toml:"jitter" yaml:"jitter"`         // extra random milliseconds, up to this value
}

// UISettings represents UI-related configuration
type UISettings struct {
	Placeholder string `toml:"placeholder" yaml:"placeholder"`
	Width       int    `toml:"width" yaml:"width"`
	ShowHelp    bool   `toml:"show_help" yaml:"show_help"`
}

// Validate checks the values the controller relies on
func (a AutocompleteConfig) Validate() error {
	if a.SuggestionListSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidListSize, a.SuggestionListSize)
	}
	if a.SuggestionDelay < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDelay, a.SuggestionDelay)
	}
	return nil
}

// Delay returns SuggestionDelay as a duration
func (a AutocompleteConfig) Delay() time.Duration {
	return time.Duration(a.SuggestionDelay) * time.Millisecond
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if err := c.Autocomplete.Validate(); err != nil {
		return err
	}
	switch c.Source.Mode {
	case SourceModePrefix, SourceModeFuzzy:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidMode, c.Source.Mode)
	}
	if c.Source.CacheSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheSize, c.Source.CacheSize)
	}
	return nil
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

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath(), nil)
}

// NewConfigServiceWithBus creates a config service that publishes load and save events
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	return NewConfigServiceAt(DefaultPath(), bus)
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "autosuggest", "config.toml")
}

// NewConfigServiceAt creates a config service for a specific file.
// bus may be nil.
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:               cs.filePath,
			SuggestionListSize: cfg.Autocomplete.SuggestionListSize,
			SuggestionDelay:    cfg.Autocomplete.SuggestionDelay,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	defer lock.Unlock()

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Autocomplete: AutocompleteConfig{
			SuggestionListSize: DefaultSuggestionListSize,
			SuggestionDelay:    DefaultSuggestionDelay,
		},
		Source: SourceConfig{
			Mode:      SourceModePrefix,
			CacheSize: DefaultCacheSize,
		},
		UISettings: UISettings{
			Placeholder: "Start typing…",
			Width:       40,
			ShowHelp:    true,
		},
	}
}
