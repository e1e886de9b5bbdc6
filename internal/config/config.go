package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"optgrip/internal/domain"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = "optgrip.toml"

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	Selected   []string        `toml:"selected"` // option ids, only kept when remember_selection is on
	Widget     WidgetSettings  `toml:"widget"`
	UISettings UISettings      `toml:"ui"`
	Options    []domain.Option `toml:"options"`
}

// WidgetSettings holds the captions handed to the selector widget
type WidgetSettings struct {
	ID                string `toml:"id"`
	Label             string `toml:"label"`
	SelectionLabel    string `toml:"selection_label"`
	SearchLabel       string `toml:"search_label"`
	SearchPlaceholder string `toml:"search_placeholder"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse             bool `toml:"mouse"`
	RememberSelection bool `toml:"remember_selection"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct{}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// LoadFromPath loads and validates configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Options = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// An empty option list means the file only overrides settings.
	if len(cfg.Options) == 0 {
		cfg.Options = DefaultOptions()
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

// Validate checks the obligations the host has towards the widget: every
// option has an id and no id appears twice.
func (c *Config) Validate() error {
	seen := make(map[string]int, len(c.Options))
	for i, opt := range c.Options {
		if opt.ID == "" {
			return fmt.Errorf("option %d has an empty id", i+1)
		}
		if prev, ok := seen[opt.ID]; ok {
			return fmt.Errorf("option %d reuses id %q from option %d", i+1, opt.ID, prev+1)
		}
		seen[opt.ID] = i
	}
	return nil
}

// SelectedOptions maps the persisted ids back to options, in persisted order.
// Ids that no longer exist in the option list are dropped, as are repeats.
func (c *Config) SelectedOptions() []domain.Option {
	byID := make(map[string]domain.Option, len(c.Options))
	for _, opt := range c.Options {
		byID[opt.ID] = opt
	}

	selected := make([]domain.Option, 0, len(c.Selected))
	used := make(map[string]bool, len(c.Selected))
	for _, id := range c.Selected {
		opt, ok := byID[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		selected = append(selected, opt)
	}
	return selected
}

// DefaultOptions returns the five static options shown when nothing is configured
func DefaultOptions() []domain.Option {
	opts := make([]domain.Option, 0, 5)
	for i := 1; i <= 5; i++ {
		opts = append(opts, domain.Option{
			ID:    fmt.Sprintf("%d", i),
			Label: fmt.Sprintf("Option %d", i),
			Value: fmt.Sprintf("option-%d", i),
		})
	}
	return opts
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Selected: []string{},
		Widget: WidgetSettings{
			ID:                "multiple-select",
			Label:             "Multiple select",
			SelectionLabel:    "Select options",
			SearchPlaceholder: "Search options",
		},
		UISettings: UISettings{
			Mouse: true,
		},
		Options: DefaultOptions(),
	}
}
