package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the report generator
type Config struct {
	API     APIConfig
	Secrets SecretsConfig
	Report  ReportConfig
}

// APIConfig holds Toggl API endpoint configuration
type APIConfig struct {
	BaseURL        string        `env:"TOGGL_API_BASE_URL"`
	ReportsBaseURL string        `env:"TOGGL_REPORTS_BASE_URL"`
	Timeout        time.Duration `env:"TOGGL_HTTP_TIMEOUT"`
}

// SecretsConfig holds credential file configuration
type SecretsConfig struct {
	Path string `env:"TOGGL_SECRETS_PATH"`
}

// ReportConfig holds report generation defaults
type ReportConfig struct {
	DefaultNumDays int `env:"TOGGL_NUM_DAYS"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://api.track.toggl.com/api/v9",
			ReportsBaseURL: "https://api.track.toggl.com/reports/api/v3",
			Timeout:        30 * time.Second,
		},
		Secrets: SecretsConfig{
			Path: "secrets.ini",
		},
		Report: ReportConfig{
			DefaultNumDays: 14,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if url := os.Getenv("TOGGL_API_BASE_URL"); url != "" {
		c.API.BaseURL = url
	}
	if url := os.Getenv("TOGGL_REPORTS_BASE_URL"); url != "" {
		c.API.ReportsBaseURL = url
	}
	if timeout := os.Getenv("TOGGL_HTTP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.API.Timeout = d
		}
	}
	if path := os.Getenv("TOGGL_SECRETS_PATH"); path != "" {
		c.Secrets.Path = path
	}
	if days := os.Getenv("TOGGL_NUM_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Report.DefaultNumDays = n
		}
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return &ConfigError{Field: "api.base_url", Message: "API base URL cannot be empty"}
	}
	if c.API.ReportsBaseURL == "" {
		return &ConfigError{Field: "api.reports_base_url", Message: "reports API base URL cannot be empty"}
	}
	if c.API.Timeout <= 0 {
		return &ConfigError{Field: "api.timeout", Message: "HTTP timeout must be positive"}
	}
	if c.Secrets.Path == "" {
		return &ConfigError{Field: "secrets.path", Message: "secrets file path cannot be empty"}
	}
	if c.Report.DefaultNumDays < 1 {
		return &ConfigError{Field: "report.default_num_days", Message: "default lookback must be at least 1 day"}
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
