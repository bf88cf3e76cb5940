package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default API endpoints per mode. The base URL can always be forced through
// ALUMNISPHERE_API_URL regardless of mode.
const (
	DefaultDevelopmentAPIURL = "http://localhost:8000"
	DefaultProductionAPIURL  = "https://api.alumnisphere.app"
)

// Config structure represents the application configuration
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url" env:"ALUMNISPHERE_API_URL"`
		Timeout string `yaml:"timeout" env:"ALUMNISPHERE_API_TIMEOUT"`
	} `yaml:"api"`

	// Mode selects the default API endpoint: "development" or "production".
	Mode string `yaml:"mode" env:"ALUMNISPHERE_MODE"`

	Credentials struct {
		Path string `yaml:"path" env:"ALUMNISPHERE_CREDENTIALS_FILE"`
	} `yaml:"credentials"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// Mock holds settings for the bundled mock platform API (cmd/mockapi).
	Mock struct {
		Port      string `yaml:"port" env:"MOCKAPI_PORT"`
		JWTSecret string `yaml:"jwt_secret" env:"MOCKAPI_JWT_SECRET"`
		UploadDir string `yaml:"upload_dir" env:"MOCKAPI_UPLOAD_DIR"`
	} `yaml:"mock"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := applyEnvOverrides(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Mode = "development"

	// API defaults; BaseURL stays empty so ResolveAPIBaseURL can pick by mode
	config.API.Timeout = "30s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "console"

	// Mock platform defaults
	config.Mock.Port = "8000"
	config.Mock.JWTSecret = "alumnisphere-dev-secret"
	config.Mock.UploadDir = "./uploads"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Mode != "development" && config.Mode != "production" {
		return fmt.Errorf("mode must be development or production, got %q", config.Mode)
	}

	if _, err := time.ParseDuration(config.API.Timeout); err != nil {
		return fmt.Errorf("invalid API timeout format: %w", err)
	}

	return nil
}

// ResolveAPIBaseURL returns the API base URL to use: an explicit value wins,
// otherwise the mode's default endpoint.
func (c *Config) ResolveAPIBaseURL() string {
	if c.API.BaseURL != "" {
		return strings.TrimRight(c.API.BaseURL, "/")
	}
	if c.Mode == "production" {
		return DefaultProductionAPIURL
	}
	return DefaultDevelopmentAPIURL
}

// APITimeout returns the parsed request timeout.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// PrettyLogging reports whether console-formatted logs were requested.
func (c *Config) PrettyLogging() bool {
	return c.Logging.Format == "console" || c.Logging.Format == "pretty"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
