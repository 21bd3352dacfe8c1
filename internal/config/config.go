package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ctk-report-generator/internal/domain"
)

// Manager loads and validates application configuration using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	// Set configuration file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/ctk-report-generator/")

	// Set environment variable prefix and enable automatic env binding
	viper.SetEnvPrefix("CTK_REPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	m.setDefaults()

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and environment variables
	}

	// Unmarshal configuration into struct
	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Template asset defaults
	viper.SetDefault("templates.report", "templates/report.json")
	viper.SetDefault("templates.closing", "templates/closing.json")
	viper.SetDefault("templates.signature_dir", "templates/signatures")
	viper.SetDefault("templates.cache_size", 8)

	// Intake defaults
	viper.SetDefault("intake.timezone", "US/Eastern")

	// Output defaults
	viper.SetDefault("output.directory", ".")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetTemplatesConfig returns template asset configuration
func (m *Manager) GetTemplatesConfig() *domain.TemplatesConfig {
	return &m.config.Templates
}

// GetIntakeConfig returns survey interpretation configuration
func (m *Manager) GetIntakeConfig() *domain.IntakeConfig {
	return &m.config.Intake
}

// GetOutputConfig returns report output configuration
func (m *Manager) GetOutputConfig() *domain.OutputConfig {
	return &m.config.Output
}

// GetLoggingConfig returns logging configuration
func (m *Manager) GetLoggingConfig() *domain.LoggingConfig {
	return &m.config.Logging
}

// Timezone resolves the configured intake timezone
func (m *Manager) Timezone() (*time.Location, error) {
	timezone, err := time.LoadLocation(m.config.Intake.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid intake timezone %q: %w", m.config.Intake.Timezone, err)
	}
	return timezone, nil
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	// Validate template configuration
	if config.Templates.Report == "" {
		return fmt.Errorf("report template path is required")
	}
	if config.Templates.CacheSize <= 0 {
		return fmt.Errorf("invalid template cache size: %d", config.Templates.CacheSize)
	}

	// Validate intake configuration
	if config.Intake.Timezone == "" {
		return fmt.Errorf("intake timezone is required")
	}
	if _, err := time.LoadLocation(config.Intake.Timezone); err != nil {
		return fmt.Errorf("invalid intake timezone: %s", config.Intake.Timezone)
	}

	// Validate output configuration
	if config.Output.Directory == "" {
		return fmt.Errorf("output directory is required")
	}

	// Validate logging configuration
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
