package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Domain   string `yaml:"domain"`
		HTTPPort string `yaml:"http_port"`
	} `yaml:"server"`

	Auth struct {
		Username       string `yaml:"username"`
		Password       string `yaml:"password"`
		JWTSecret      string `yaml:"jwt_secret"`
		JWTIssuer      string `yaml:"jwt_issuer"`
		JWTAudience    string `yaml:"jwt_audience"`
		AccessTokenTTL int    `yaml:"access_token_ttl"` // seconds
		RequireToken   bool   `yaml:"require_token"`
	} `yaml:"auth"`

	Seed struct {
		Users        int `yaml:"users"`
		PostsPerUser int `yaml:"posts_per_user"`
		ExtraPosts   int `yaml:"extra_posts"`
	} `yaml:"seed"`

	API struct {
		PageSize        int `yaml:"page_size"`
		CreatePostDelay int `yaml:"create_post_delay"` // milliseconds
	} `yaml:"api"`

	Security struct {
		RateLimiting struct {
			Enabled           bool `yaml:"enabled"`
			RequestsPerMinute int  `yaml:"requests_per_minute"`
		} `yaml:"rate_limiting"`
	} `yaml:"security"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in config content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads config from path, or returns default if file doesn't exist
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	cfg := &Config{}

	// Server defaults
	cfg.Server.Domain = "localhost"
	cfg.Server.HTTPPort = "8080"

	// Auth defaults: the single development account
	cfg.Auth.Username = "zerocho"
	cfg.Auth.Password = "1234"
	cfg.Auth.JWTSecret = "threads_dev_secret"
	cfg.Auth.JWTIssuer = "threads-mock-api"
	cfg.Auth.JWTAudience = "threads-clients"
	cfg.Auth.AccessTokenTTL = 3600
	cfg.Auth.RequireToken = false

	// Seed defaults
	cfg.Seed.Users = 10
	cfg.Seed.PostsPerUser = 5
	cfg.Seed.ExtraPosts = 5

	// API defaults
	cfg.API.PageSize = 10
	cfg.API.CreatePostDelay = 1000

	// Security defaults
	cfg.Security.RateLimiting.Enabled = false
	cfg.Security.RateLimiting.RequestsPerMinute = 60

	// Logging defaults
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"

	return cfg
}
