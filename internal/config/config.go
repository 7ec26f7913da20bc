package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"swipelist/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version   int               `toml:"version"`
	LogFile   string            `toml:"log_file"`
	List      ListSettings      `toml:"list"`
	Animation AnimationSettings `toml:"animation"`
	Deck      DeckSettings      `toml:"deck"`
	History   HistorySettings   `toml:"history"`
}

// ListSettings configures the paging list
type ListSettings struct {
	ScrollDirection string  `toml:"scroll_direction"` // "horizontal" or "vertical"
	ScrollEnabled   bool    `toml:"scroll_enabled"`
	Margin          Margins `toml:"margin"`
}

// Margins is the inset applied to each page, in terminal cells
type Margins struct {
	Top    int `toml:"top"`
	Left   int `toml:"left"`
	Bottom int `toml:"bottom"`
	Right  int `toml:"right"`
}

// AnimationSettings configures preview and settle animations
type AnimationSettings struct {
	PreviewMillis int `toml:"preview_ms"`
	SettleMillis  int `toml:"settle_ms"`
	FrameMillis   int `toml:"frame_ms"`
}

// DeckSettings configures page content
type DeckSettings struct {
	PlaceholderItems int    `toml:"placeholder_items"` // pages generated when no deck file is given
	Style            string `toml:"style"`             // glamour standard style
}

// HistorySettings configures the display history journal
type HistorySettings struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
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

// DefaultDir returns the swipelist config directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "swipelist")
}

// NewConfigService creates a config service for the default config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(DefaultDir(), "config.toml"),
	}
}

// NewConfigServiceWithPath creates a config service for a specific file
func NewConfigServiceWithPath(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		// Return default config if file doesn't exist
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
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
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	// Ensure config directory exists
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

// Validate checks values the list cannot work with
func (c *Config) Validate() error {
	switch c.List.ScrollDirection {
	case "", "horizontal", "vertical":
	default:
		return fmt.Errorf("unknown scroll_direction %q", c.List.ScrollDirection)
	}
	m := c.List.Margin
	if m.Top < 0 || m.Left < 0 || m.Bottom < 0 || m.Right < 0 {
		return errors.New("margins must not be negative")
	}
	a := c.Animation
	if a.PreviewMillis < 0 || a.SettleMillis < 0 || a.FrameMillis < 0 {
		return errors.New("animation durations must not be negative")
	}
	if c.Deck.PlaceholderItems < 0 {
		return errors.New("placeholder_items must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "swipelist.log",
		List: ListSettings{
			ScrollDirection: "horizontal",
			ScrollEnabled:   true,
			Margin:          Margins{Top: 0, Left: 1, Bottom: 0, Right: 1},
		},
		Animation: AnimationSettings{
			PreviewMillis: 200,
			SettleMillis:  200,
			FrameMillis:   16,
		},
		Deck: DeckSettings{
			PlaceholderItems: 3,
			Style:            "dark",
		},
		History: HistorySettings{
			Enabled: true,
			Path:    filepath.Join(DefaultDir(), "history.sqlite"),
		},
	}
}
