package config

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithFile reads path instead of WH_CONFIG or the default location
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load the config file; only an explicitly named file must exist
	path, explicit := l.configPath()
	if err := l.config.LoadFromFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// Step 3: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func (l *Loader) configPath() (string, bool) {
	if l.filePath != "" {
		return l.filePath, true
	}
	if path := os.Getenv("WH_CONFIG"); path != "" {
		return path, true
	}
	return DefaultConfigPath(), false
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend        *string
	DBDir          *string
	DBFilename     *string
	PostgresDSN    *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Display overrides
	Width *int

	// Application overrides
	Timeout     *time.Duration
	Verbose     *bool
	Environment *string

	// Metrics and export overrides
	MetricsTextfile *string
	ExportFormat    *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Storage overrides
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.DBDir != nil {
		config.Storage.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Storage.Filename = *overrides.DBFilename
	}
	if overrides.PostgresDSN != nil {
		config.Storage.PostgresDSN = *overrides.PostgresDSN
	}
	if overrides.DBQueryTimeout != nil {
		config.Storage.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Storage.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Display overrides
	if overrides.Width != nil {
		config.Display.Width = *overrides.Width
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.Environment != nil {
		config.Application.Environment = *overrides.Environment
	}

	// Metrics and export overrides
	if overrides.MetricsTextfile != nil {
		config.Metrics.Textfile = *overrides.MetricsTextfile
	}
	if overrides.ExportFormat != nil {
		config.Export.DefaultFormat = *overrides.ExportFormat
	}
}
