package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds catalog ingestion configuration
type CatalogConfig struct {
	Path  string `mapstructure:"path"`  // CSV file to load
	Cache bool   `mapstructure:"cache"` // Persist the parsed snapshot between runs
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultView string `mapstructure:"default_view"` // View shown on startup
	TopGenres   int    `mapstructure:"top_genres"`   // Initial top-N for the genre chart
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
			Path:  "netflix1.csv",
			Cache: true,
		},
		UI: UIConfig{
			DefaultView: "overview",
			TopGenres:   10,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flickdash", "flickdash.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "flickdash", "flickdash.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flickdash")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "flickdash")
	}
}

// defaultCachePath returns the default cache directory for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "flickdash", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "flickdash", "cache")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("FLICKDASH")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to keep snake_case key names
	viper.Set("catalog.path", cfg.Catalog.Path)
	viper.Set("catalog.cache", cfg.Catalog.Cache)
	viper.Set("ui.default_view", cfg.UI.DefaultView)
	viper.Set("ui.top_genres", cfg.UI.TopGenres)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CachePath returns the cache directory path
func CachePath() string {
	return defaultCachePath()
}

// ClearCache removes all cached data
func ClearCache() error {
	cachePath := defaultCachePath()
	if err := os.RemoveAll(cachePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
