package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the newsdesk service. It is constructed
// once at process start and passed to collaborators; business logic never
// reads the environment directly.
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database (serving path)
	DatabaseURL string `yaml:"database_url"`

	// Database parts (migration tooling)
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// External article provider
	ArticlesAPIURL string `yaml:"articles_api_url"`
	ArticlesAPIKey string `yaml:"-"`

	// Summarization workflow
	WorkflowURL string `yaml:"workflow_url"`

	// Outbound HTTP
	ClientTimeout time.Duration `yaml:"client_timeout"`

	// Features
	EnableMetrics bool `yaml:"enable_metrics"`
}

// Load reads configuration from environment variables, with an optional YAML
// overlay file (NEWSDESK_CONFIG_FILE) applied before the environment.
// Precedence: defaults < file < environment.
func Load() (*Config, error) {
	config := &Config{
		Port:            "9600",
		Host:            "0.0.0.0",
		LogLevel:        "info",
		DatabaseHost:    "newsdesk-postgres",
		DatabasePort:    "5432",
		DatabaseName:    "newsdesk",
		DatabaseUser:    "newsdesk_user",
		DatabaseSSLMode: "require",
		ClientTimeout:   30 * time.Second,
		EnableMetrics:   true,
	}

	if path := os.Getenv("NEWSDESK_CONFIG_FILE"); path != "" {
		if err := config.applyFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	config.Port = getEnvOrKeep("NEWSDESK_PORT", config.Port)
	config.Host = getEnvOrKeep("NEWSDESK_HOST", config.Host)
	config.LogLevel = getEnvOrKeep("LOG_LEVEL", config.LogLevel)

	config.DatabaseURL = getEnvOrKeep("DATABASE_URL", config.DatabaseURL)
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrKeep("DB_HOST", config.DatabaseHost)
	config.DatabasePort = getEnvOrKeep("DB_PORT", config.DatabasePort)
	config.DatabaseName = getEnvOrKeep("DB_NAME", config.DatabaseName)
	config.DatabaseUser = getEnvOrKeep("DB_USER", config.DatabaseUser)
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	config.DatabaseSSLMode = getEnvOrKeep("DB_SSL_MODE", config.DatabaseSSLMode)

	config.ArticlesAPIURL = getEnvOrKeep("ARTICLES_API_URL", config.ArticlesAPIURL)
	if config.ArticlesAPIURL == "" {
		return nil, fmt.Errorf("ARTICLES_API_URL is required")
	}
	config.ArticlesAPIKey = os.Getenv("ARTICLES_API_KEY")
	if config.ArticlesAPIKey == "" {
		return nil, fmt.Errorf("ARTICLES_API_KEY is required")
	}

	config.WorkflowURL = getEnvOrKeep("WORKFLOW_URL", config.WorkflowURL)
	if config.WorkflowURL == "" {
		return nil, fmt.Errorf("WORKFLOW_URL is required")
	}

	if timeoutStr := os.Getenv("CLIENT_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid CLIENT_TIMEOUT: %w", err)
		}
		config.ClientTimeout = timeout
	}

	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", config.EnableMetrics)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	for name, raw := range map[string]string{
		"ARTICLES_API_URL": c.ArticlesAPIURL,
		"WORKFLOW_URL":     c.WorkflowURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %s", name, raw)
		}
	}

	if c.ClientTimeout < time.Second {
		return fmt.Errorf("client timeout must be at least 1s, got: %v", c.ClientTimeout)
	}

	return nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Helper functions

func getEnvOrKeep(key, current string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return current
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
