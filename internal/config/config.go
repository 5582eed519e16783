// Package config loads server configuration from an optional YAML file,
// with environment variable overrides for the Docker-style deployment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all server settings.
type Config struct {
	// Listen is the TCP address the gRPC server binds to.
	Listen string `yaml:"listen"`

	// APIToken authenticates incoming gRPC calls.
	APIToken string `yaml:"api_token"`

	// Database configures the PostgreSQL connection.
	Database DatabaseConfig `yaml:"database"`

	// DecisionTimeout bounds how long a decision waits for its
	// (recipient, fertilizer type) scope before reporting busy.
	DecisionTimeout Duration `yaml:"decision_timeout"`
}

// Duration wraps time.Duration so YAML files can use the "5s" notation.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DatabaseConfig configures the PostgreSQL connection.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		APIToken: "dev-token",
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "pupukku",
			SSLMode:  "disable",
		},
		DecisionTimeout: Duration(5 * time.Second),
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variable overrides, in that order. path may be empty.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables (Docker friendly).
func (c *Config) applyEnv() {
	setIfPresent(&c.Database.Host, "DB_HOST")
	setIfPresent(&c.Database.Port, "DB_PORT")
	setIfPresent(&c.Database.User, "DB_USER")
	setIfPresent(&c.Database.Password, "DB_PASSWORD")
	setIfPresent(&c.Database.Name, "DB_NAME")
	setIfPresent(&c.APIToken, "API_TOKEN")
	setIfPresent(&c.Listen, "LISTEN_ADDR")
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConnectionString renders the database settings in the lib/pq key=value form.
// An explicit DB_CONN_STR environment variable wins over the individual parts.
func (c *Config) ConnectionString() string {
	if conn := os.Getenv("DB_CONN_STR"); conn != "" {
		return conn
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Name, c.Database.SSLMode)
}
