package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName        string
	HTTPPort           string
	PostgresDSN        string
	OwnerIdentity      string
	RateLimitPerMinute int
	SwaggerEnabled     bool
}

// fileConfig mirrors the optional YAML config file. Environment variables
// always win over file values.
type fileConfig struct {
	ServiceName        string `yaml:"service_name"`
	HTTPPort           string `yaml:"http_port"`
	PostgresDSN        string `yaml:"postgres_dsn"`
	OwnerIdentity      string `yaml:"owner_identity"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
	SwaggerEnabled     *bool  `yaml:"swagger_enabled"`
}

func Load() (Config, error) {
	cfg := Config{
		ServiceName:        "badgeboost",
		HTTPPort:           "8080",
		RateLimitPerMinute: 600,
		SwaggerEnabled:     true,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		var file fileConfig
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if file.ServiceName != "" {
			cfg.ServiceName = file.ServiceName
		}
		if file.HTTPPort != "" {
			cfg.HTTPPort = file.HTTPPort
		}
		if file.PostgresDSN != "" {
			cfg.PostgresDSN = file.PostgresDSN
		}
		if file.OwnerIdentity != "" {
			cfg.OwnerIdentity = file.OwnerIdentity
		}
		if file.RateLimitPerMinute > 0 {
			cfg.RateLimitPerMinute = file.RateLimitPerMinute
		}
		if file.SwaggerEnabled != nil {
			cfg.SwaggerEnabled = *file.SwaggerEnabled
		}
	}

	if value := strings.TrimSpace(os.Getenv("SERVICE_NAME")); value != "" {
		cfg.ServiceName = value
	}
	if value := strings.TrimSpace(os.Getenv("HTTP_PORT")); value != "" {
		cfg.HTTPPort = value
	}
	if value := strings.TrimSpace(os.Getenv("POSTGRES_DSN")); value != "" {
		cfg.PostgresDSN = value
	}
	if value := strings.TrimSpace(os.Getenv("OWNER_IDENTITY")); value != "" {
		cfg.OwnerIdentity = value
	}
	if value := strings.TrimSpace(os.Getenv("RATE_LIMIT_PER_MINUTE")); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer, got %q", value)
		}
		cfg.RateLimitPerMinute = limit
	}
	cfg.SwaggerEnabled = envBool("SWAGGER_ENABLED", cfg.SwaggerEnabled)

	if strings.TrimSpace(cfg.OwnerIdentity) == "" {
		return Config{}, fmt.Errorf("OWNER_IDENTITY is required")
	}
	return cfg, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
