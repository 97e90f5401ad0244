package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Catalog defaults
const (
	DefaultCatalogURL    = "https://www.omdbapi.com/"
	DefaultCatalogAPIKey = "thewdb"
)

// Supported UI locales
const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Store   StoreConfig   `mapstructure:"store"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds movie catalog configuration
type CatalogConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"` // Transport timeout, 0 = none
}

// StoreConfig holds local persistence configuration
type StoreConfig struct {
	Path string `mapstructure:"path"` // BoltDB file; empty = memory only
}

// UIConfig holds UI configuration
type UIConfig struct {
	Locale      string   `mapstructure:"locale"`
	HistorySize int      `mapstructure:"history_size"`
	Opener      string   `mapstructure:"opener"`      // Viewer for posters and title pages, empty = system default
	OpenerArgs  []string `mapstructure:"opener_args"` // Extra arguments passed before the URL
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL:     DefaultCatalogURL,
			APIKey:  DefaultCatalogAPIKey,
			Timeout: 15 * time.Second,
		},
		Store: StoreConfig{
			Path: defaultStorePath(),
		},
		UI: UIConfig{
			Locale:      LocaleEnglish,
			HistorySize: 20,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultDataDir returns the default data directory for the current OS
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel")
	}
}

func defaultLogPath() string {
	return filepath.Join(defaultDataDir(), "reel.log")
}

func defaultStorePath() string {
	return filepath.Join(defaultDataDir(), "reel.db")
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from config.yaml in configDir (or the
// default config directory and ".") with REEL_* environment overrides.
func LoadConfig(configDir string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Defaults are registered key by key so AutomaticEnv can see them
	v.SetDefault("catalog.url", defaults.Catalog.URL)
	v.SetDefault("catalog.api_key", defaults.Catalog.APIKey)
	v.SetDefault("catalog.timeout", defaults.Catalog.Timeout)
	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("ui.locale", defaults.UI.Locale)
	v.SetDefault("ui.history_size", defaults.UI.HistorySize)
	v.SetDefault("ui.opener", defaults.UI.Opener)
	v.SetDefault("ui.opener_args", defaults.UI.OpenerArgs)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides: REEL_CATALOG_API_KEY, REEL_STORE_PATH, ...
	v.SetEnvPrefix("REEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the app cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.URL) == "" {
		return fmt.Errorf("catalog.url is required")
	}
	if strings.TrimSpace(c.Catalog.APIKey) == "" {
		return fmt.Errorf("catalog.api_key is required")
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog.timeout must not be negative")
	}
	switch c.UI.Locale {
	case LocaleEnglish, LocalePortuguese:
	default:
		return fmt.Errorf("unknown ui.locale: %s", c.UI.Locale)
	}
	if c.UI.HistorySize < 0 {
		return fmt.Errorf("ui.history_size must not be negative")
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
