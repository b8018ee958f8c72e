package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the blog service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Kratos
	KratosPublicURL string `yaml:"kratos_public_url"`
	KratosAdminURL  string `yaml:"kratos_admin_url"`

	// Account lifecycle
	ProfileInsertAttempts  int           `yaml:"profile_insert_attempts"`
	ProfileInsertDelay     time.Duration `yaml:"profile_insert_delay"`
	SessionRefreshInterval time.Duration `yaml:"session_refresh_interval"`
}

// Load reads configuration from an optional YAML file (BLOG_CONFIG_FILE)
// overlaid by environment variables. Environment always wins.
func Load() (*Config, error) {
	config := &Config{
		Port:                   "9600",
		Host:                   "0.0.0.0",
		LogLevel:               "info",
		DatabaseHost:           "blog-postgres",
		DatabasePort:           "5432",
		DatabaseName:           "blog_db",
		DatabaseUser:           "blog_user",
		DatabaseSSLMode:        "require",
		ProfileInsertAttempts:  3,
		ProfileInsertDelay:     time.Second,
		SessionRefreshInterval: time.Minute,
	}

	if path := os.Getenv("BLOG_CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", config.Port)
	config.Host = getEnvOrDefault("HOST", config.Host)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", config.DatabaseHost)
	config.DatabasePort = getEnvOrDefault("DB_PORT", config.DatabasePort)
	config.DatabaseName = getEnvOrDefault("DB_NAME", config.DatabaseName)
	config.DatabaseUser = getEnvOrDefault("DB_USER", config.DatabaseUser)
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", config.DatabaseSSLMode)

	// Kratos configuration
	config.KratosPublicURL = getEnvOrDefault("KRATOS_PUBLIC_URL", config.KratosPublicURL)
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = getEnvOrDefault("KRATOS_ADMIN_URL", config.KratosAdminURL)
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Account lifecycle configuration
	var err error
	if config.ProfileInsertAttempts, err = getIntEnv("PROFILE_INSERT_ATTEMPTS", config.ProfileInsertAttempts); err != nil {
		return nil, err
	}
	if config.ProfileInsertDelay, err = getDurationEnv("PROFILE_INSERT_DELAY", config.ProfileInsertDelay); err != nil {
		return nil, err
	}
	if config.SessionRefreshInterval, err = getDurationEnv("SESSION_REFRESH_INTERVAL", config.SessionRefreshInterval); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFile overlays values from a YAML config file
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// DatabaseURL builds the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// The profile insert retry must make at least one attempt
	if c.ProfileInsertAttempts < 1 {
		return fmt.Errorf("profile insert attempts must be at least 1, got: %d", c.ProfileInsertAttempts)
	}
	if c.ProfileInsertDelay < 0 {
		return fmt.Errorf("profile insert delay must not be negative, got: %v", c.ProfileInsertDelay)
	}

	// The session watcher must not hammer Kratos
	if c.SessionRefreshInterval < time.Second {
		return fmt.Errorf("session refresh interval must be at least 1 second, got: %v", c.SessionRefreshInterval)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
