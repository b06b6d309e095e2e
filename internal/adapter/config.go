package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SourceType identifies the collection API backend
type SourceType string

const (
	SourceTypeMet SourceType = "met"
)

// MaxRecommendLimit caps recommend.limit
const MaxRecommendLimit = 12

// Config holds all application configuration
type Config struct {
	Source      SourceConfig      `mapstructure:"source"`
	Acquisition AcquisitionConfig `mapstructure:"acquisition"`
	Recommend   RecommendConfig   `mapstructure:"recommend"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Viewer      ViewerConfig      `mapstructure:"viewer"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// SourceConfig holds collection API configuration
type SourceConfig struct {
	Type          SourceType    `mapstructure:"type"`            // "met"
	URL           string        `mapstructure:"url"`             // API base URL
	Timeout       time.Duration `mapstructure:"timeout"`         // Per-request timeout
	RatePerSecond float64       `mapstructure:"rate_per_second"` // 0 disables the client-side limit
}

// AcquisitionConfig holds the artwork retry budgets
type AcquisitionConfig struct {
	SampleSize     int `mapstructure:"sample_size"`     // Candidates drawn for a constrained fetch
	MaxDraws       int `mapstructure:"max_draws"`       // Random draws on the unconstrained path
	PrefetchWindow int `mapstructure:"prefetch_window"` // Detail fetches in flight at once
}

// RecommendConfig holds recommendation settings
type RecommendConfig struct {
	Limit int `mapstructure:"limit"`
}

// StorageConfig holds local persistence settings
type StorageConfig struct {
	Path string `mapstructure:"path"` // Directory for the slot database; empty = memory only
}

// ViewerConfig holds the external viewer used to open artwork pages
type ViewerConfig struct {
	Command string   `mapstructure:"command"` // Empty = system default browser
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Type:          SourceTypeMet,
			URL:           "https://collectionapi.metmuseum.org/public/collection/v1",
			Timeout:       30 * time.Second,
			RatePerSecond: 20,
		},
		Acquisition: AcquisitionConfig{
			SampleSize:     20,
			MaxDraws:       10,
			PrefetchWindow: 1,
		},
		Recommend: RecommendConfig{
			Limit: MaxRecommendLimit,
		},
		Storage: StorageConfig{
			Path: defaultDataPath(),
		},
		Viewer: ViewerConfig{
			Command: "",
			Args:    []string{},
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
		return filepath.Join(os.Getenv("APPDATA"), "dailyart", "dailyart.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "dailyart", "dailyart.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "dailyart")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dailyart")
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "dailyart", "data")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "dailyart", "data")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.GetViper(), defaultConfigPath())
}

func loadConfig(v *viper.Viper, configDir string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Environment variable overrides (DAILYART_SOURCE_URL, ...)
	v.SetEnvPrefix("DAILYART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnvKeys registers every known key so AutomaticEnv applies during Unmarshal
func bindEnvKeys(v *viper.Viper) {
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}
}

var configKeys = []string{
	"source.type", "source.url", "source.timeout", "source.rate_per_second",
	"acquisition.sample_size", "acquisition.max_draws", "acquisition.prefetch_window",
	"recommend.limit",
	"storage.path",
	"viewer.command", "viewer.args",
	"logging.file", "logging.level",
}

// Validate rejects settings the services cannot run with
func (c *Config) Validate() error {
	switch c.Source.Type {
	case SourceTypeMet:
	default:
		return fmt.Errorf("unknown source type: %q", c.Source.Type)
	}
	if c.Source.URL == "" {
		return errors.New("source.url is required")
	}
	if c.Acquisition.SampleSize <= 0 {
		return fmt.Errorf("acquisition.sample_size must be positive, got %d", c.Acquisition.SampleSize)
	}
	if c.Acquisition.MaxDraws <= 0 {
		return fmt.Errorf("acquisition.max_draws must be positive, got %d", c.Acquisition.MaxDraws)
	}
	if c.Acquisition.PrefetchWindow <= 0 {
		return fmt.Errorf("acquisition.prefetch_window must be positive, got %d", c.Acquisition.PrefetchWindow)
	}
	if c.Recommend.Limit <= 0 || c.Recommend.Limit > MaxRecommendLimit {
		return fmt.Errorf("recommend.limit must be between 1 and %d, got %d", MaxRecommendLimit, c.Recommend.Limit)
	}
	return nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	return saveConfig(viper.GetViper(), cfg, defaultConfigPath())
}

func saveConfig(v *viper.Viper, cfg *Config, configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("source.type", cfg.Source.Type)
	v.Set("source.url", cfg.Source.URL)
	v.Set("source.timeout", cfg.Source.Timeout.String())
	v.Set("source.rate_per_second", cfg.Source.RatePerSecond)

	v.Set("acquisition.sample_size", cfg.Acquisition.SampleSize)
	v.Set("acquisition.max_draws", cfg.Acquisition.MaxDraws)
	v.Set("acquisition.prefetch_window", cfg.Acquisition.PrefetchWindow)

	v.Set("recommend.limit", cfg.Recommend.Limit)

	v.Set("storage.path", cfg.Storage.Path)

	v.Set("viewer.command", cfg.Viewer.Command)
	v.Set("viewer.args", cfg.Viewer.Args)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configDir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ClearData removes all persisted application data
func ClearData(cfg *Config) error {
	if cfg.Storage.Path == "" {
		return nil
	}
	if err := os.RemoveAll(cfg.Storage.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}
