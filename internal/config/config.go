// Package config provides centralized configuration management for the
// validator. It loads settings from environment variables with sensible
// defaults and validates the result on startup to fail fast on
// misconfiguration. Command-line flags may override individual values.
package config

// Config holds all process configuration.
type Config struct {
	Validation ValidationConfig
	Logging    LoggingConfig
}

// ValidationConfig holds validation engine settings.
type ValidationConfig struct {
	// ConfigPath is the partner configuration store location
	// (default: config/partners.yaml)
	ConfigPath string `env:"FILECHECK_CONFIG_PATH" envAlt:"PARTNERS_CONFIG" default:"config/partners.yaml"`

	// SampleSize is how many data rows are type-checked per file (default: 1000)
	SampleSize int `env:"FILECHECK_SAMPLE_SIZE" default:"1000"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
