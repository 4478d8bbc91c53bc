// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Cassandra Configuration
	CassandraHosts    string        `mapstructure:"CASSANDRA_HOSTS"`
	CassandraPort     int           `mapstructure:"CASSANDRA_PORT"`
	CassandraKeyspace string        `mapstructure:"CASSANDRA_KEYSPACE"`
	CassandraUsername string        `mapstructure:"CASSANDRA_USERNAME"`
	CassandraPassword string        `mapstructure:"CASSANDRA_PASSWORD"`
	CassandraTimeout  time.Duration `mapstructure:"CASSANDRA_TIMEOUT_SECONDS"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// GitHub OAuth / API Configuration
	GitHubClientID     string `mapstructure:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `mapstructure:"GITHUB_CLIENT_SECRET"`
	GitHubCallbackURL  string `mapstructure:"GITHUB_CALLBACK_URL"`
	GitHubAPIBaseURL   string `mapstructure:"GITHUB_API_BASE_URL"`

	// Frontend redirect target after a completed OAuth login.
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// OAuth state cookie settings
	OAuthStateCookieName     string `mapstructure:"OAUTH_STATE_COOKIE_NAME"`
	OAuthCookieMaxAgeMinutes int    `mapstructure:"OAUTH_COOKIE_MAX_AGE_MINUTES"`
	OAuthCookieSecure        bool   `mapstructure:"OAUTH_COOKIE_SECURE"`

	// Cron Jobs
	IdentitySweepSchedule string `mapstructure:"IDENTITY_SWEEP_SCHEDULE"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("CASSANDRA_HOSTS", "127.0.0.1")
	v.SetDefault("CASSANDRA_PORT", 9042)
	v.SetDefault("CASSANDRA_KEYSPACE", "gitmeet")
	v.SetDefault("CASSANDRA_USERNAME", "")
	v.SetDefault("CASSANDRA_PASSWORD", "")
	v.SetDefault("CASSANDRA_TIMEOUT_SECONDS", 10)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("GITHUB_CLIENT_ID", "")
	v.SetDefault("GITHUB_CLIENT_SECRET", "")
	v.SetDefault("GITHUB_CALLBACK_URL", "http://localhost:8080/api/v1/auth/github/callback")
	v.SetDefault("GITHUB_API_BASE_URL", "") // Empty means api.github.com
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")

	v.SetDefault("OAUTH_STATE_COOKIE_NAME", "gitmeet_oauth_state")
	v.SetDefault("OAUTH_COOKIE_MAX_AGE_MINUTES", 10)
	v.SetDefault("OAUTH_COOKIE_SECURE", false)

	v.SetDefault("IDENTITY_SWEEP_SCHEDULE", "@daily")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.CassandraTimeout = time.Duration(v.GetInt("CASSANDRA_TIMEOUT_SECONDS")) * time.Second

	return &cfg, nil
}

// CassandraHostList splits the comma separated CASSANDRA_HOSTS value.
func (c *Config) CassandraHostList() []string {
	parts := strings.Split(c.CassandraHosts, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
