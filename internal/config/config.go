package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr              string `yaml:"addr"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
}

// StorageConfig selects where verdicts are remembered.
type StorageConfig struct {
	Driver       string `yaml:"driver"` // memory, fs, sqlite
	Path         string `yaml:"path"`
	SQLiteDriver string `yaml:"sqlite_driver"` // sqlite (pure Go) or sqlite3 (cgo)
	CacheSize    int    `yaml:"cache_size"`
}

// ClassifierConfig tunes the scanner.
type ClassifierConfig struct {
	Parallel bool   `yaml:"parallel"`
	Alphabet string `yaml:"alphabet"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: "5s",
		},
		Storage: StorageConfig{
			Driver:       "sqlite",
			Path:         "./data",
			SQLiteDriver: "sqlite",
			CacheSize:    1024,
		},
		Classifier: ClassifierConfig{
			Alphabet: "ATCG",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MUTANT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("MUTANT_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("MUTANT_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("MUTANT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MUTANT_PARALLEL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Classifier.Parallel = b
		}
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "fs", "sqlite":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Storage.SQLiteDriver {
	case "", "sqlite", "sqlite3":
	default:
		return fmt.Errorf("unknown sqlite driver %q", c.Storage.SQLiteDriver)
	}
	if c.Storage.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0, got %d", c.Storage.CacheSize)
	}
	if _, err := c.ReadHeaderTimeout(); err != nil {
		return err
	}
	return nil
}

// ReadHeaderTimeout parses Server.ReadHeaderTimeout.
func (c *Config) ReadHeaderTimeout() (time.Duration, error) {
	if c.Server.ReadHeaderTimeout == "" {
		return 5 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Server.ReadHeaderTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid read_header_timeout: %w", err)
	}
	return d, nil
}
