package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"homelyhub/internal/domain"
)

// Environment overrides
const (
	EnvAPIURL   = "HOMELYHUB_API_URL"
	EnvAPIToken = "HOMELYHUB_API_TOKEN"
	EnvLogLevel = "HOMELYHUB_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	API     APISettings     `toml:"api"`
	Listing ListingSettings `toml:"listing"`
	UI      UISettings      `toml:"ui"`
	Log     LogSettings     `toml:"log"`
}

// APISettings points the client at the marketplace backend
type APISettings struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token,omitempty"`
	Timeout string `toml:"timeout"`
}

// ListingSettings controls how filtering and pagination interact
type ListingSettings struct {
	FilterScope string `toml:"filter_scope"` // "catalog" or "page"
}

// UISettings represents UI-related configuration
type UISettings struct {
	Animation bool `toml:"animation"`
	StaggerMS int  `toml:"stagger_ms"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// RequestTimeout parses the API timeout, falling back to 10s
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Scope returns the configured filter scope
func (c *Config) Scope() domain.FilterScope {
	scope, err := domain.ParseFilterScope(c.Listing.FilterScope)
	if err != nil {
		return domain.ScopeCatalog
	}
	return scope
}

// Stagger is the per-card delay of the entrance animation
func (c *Config) Stagger() time.Duration {
	if c.UI.StaggerMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.UI.StaggerMS) * time.Millisecond
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if _, err := domain.ParseFilterScope(c.Listing.FilterScope); err != nil {
		return fmt.Errorf("listing.filter_scope: %w", err)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	filePath string
}

// DefaultPath is $XDG_CONFIG_HOME/homelyhub/config.toml (or ~/.config/...)
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "homelyhub", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration from file, returning defaults if it does not exist.
// Environment overrides (and a .env file in the working directory) are applied last.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold an API token
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL: "http://localhost:8000",
			Timeout: "10s",
		},
		Listing: ListingSettings{
			FilterScope: string(domain.ScopeCatalog),
		},
		UI: UISettings{
			Animation: true,
			StaggerMS: 100,
		},
		Log: LogSettings{
			Level:  "info",
			File:   "homelyhub.log",
			Format: "json",
		},
	}
}
