package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds all configuration options for the work hours tracker
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Export      ExportConfig      `yaml:"export"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Backend        string        `yaml:"backend" env:"WH_STORAGE_BACKEND"`
	Dir            string        `yaml:"dir" env:"WH_DB_DIR"`
	Filename       string        `yaml:"filename" env:"WH_DB_FILENAME"`
	PostgresDSN    string        `yaml:"postgres_dsn" env:"WH_PG_DSN"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"WH_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WH_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"WH_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Width int `yaml:"width" env:"WH_DISPLAY_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout     time.Duration `yaml:"timeout" env:"WH_APP_TIMEOUT"`
	Verbose     bool          `yaml:"verbose" env:"WH_APP_VERBOSE"`
	Environment string        `yaml:"environment" env:"WH_ENV"`
}

// MetricsConfig holds metrics output configuration
type MetricsConfig struct {
	Textfile string `yaml:"textfile" env:"WH_METRICS_TEXTFILE"`
}

// ExportConfig holds report export defaults
type ExportConfig struct {
	DefaultFormat string `yaml:"default_format" env:"WH_EXPORT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            DefaultDir(),
			Filename:       "workhours.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			Width: 100,
		},
		Application: ApplicationConfig{
			Timeout:     60 * time.Second,
			Verbose:     false,
			Environment: EnvProduction,
		},
		Export: ExportConfig{
			DefaultFormat: "json",
		},
	}
}

// DefaultDir is ~/.workhours, where the database and config file live by default
func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".workhours")
}

// DefaultConfigPath returns the config file read when WH_CONFIG is unset
func DefaultConfigPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromFile overlays the YAML file at path onto the configuration
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("WH_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if dir := os.Getenv("WH_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("WH_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if dsn := os.Getenv("WH_PG_DSN"); dsn != "" {
		c.Storage.PostgresDSN = dsn
	}
	if err := envDuration("WH_DB_QUERY_TIMEOUT", &c.Storage.QueryTimeout); err != nil {
		return err
	}
	if err := envDuration("WH_DB_WRITE_TIMEOUT", &c.Storage.WriteTimeout); err != nil {
		return err
	}
	if perms := os.Getenv("WH_DB_DIR_PERMISSIONS"); perms != "" {
		p, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return &ConfigError{Field: "WH_DB_DIR_PERMISSIONS", Message: "must be an octal mode such as 0755"}
		}
		c.Storage.DirPermissions = uint32(p)
	}

	// Display configuration
	if width := os.Getenv("WH_DISPLAY_WIDTH"); width != "" {
		w, err := strconv.Atoi(width)
		if err != nil {
			return &ConfigError{Field: "WH_DISPLAY_WIDTH", Message: "must be a number"}
		}
		c.Display.Width = w
	}

	// Application configuration
	if err := envDuration("WH_APP_TIMEOUT", &c.Application.Timeout); err != nil {
		return err
	}
	if verbose := os.Getenv("WH_APP_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return &ConfigError{Field: "WH_APP_VERBOSE", Message: "must be true or false"}
		}
		c.Application.Verbose = b
	}
	if env := os.Getenv("WH_ENV"); env != "" {
		c.Application.Environment = strings.ToLower(env)
	}

	// Metrics and export configuration
	if path := os.Getenv("WH_METRICS_TEXTFILE"); path != "" {
		c.Metrics.Textfile = path
	}
	if format := os.Getenv("WH_EXPORT_DEFAULT_FORMAT"); format != "" {
		c.Export.DefaultFormat = strings.ToLower(format)
	}

	return nil
}

func envDuration(name string, target *time.Duration) error {
	value := os.Getenv(name)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return &ConfigError{Field: name, Message: "must be a duration such as 10s"}
	}
	*target = d
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "database directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
		}
	case BackendPostgres:
		if c.Storage.PostgresDSN == "" {
			return &ConfigError{Field: "storage.postgres_dsn", Message: "a connection string is required for the postgres backend"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "must be sqlite or postgres"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate display configuration
	if c.Display.Width < 40 {
		return &ConfigError{Field: "display.width", Message: "width must be at least 40"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	switch c.Application.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return &ConfigError{Field: "application.environment", Message: "must be development, testing or production"}
	}

	// Validate export configuration
	switch c.Export.DefaultFormat {
	case "json", "xlsx", "pdf":
	default:
		return &ConfigError{Field: "export.default_format", Message: "must be json, xlsx or pdf"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
