// Package config loads the tracker's settings with viper. Values come from
// defaults, an optional config file named by CONFIG_FILE, and the
// environment, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	AppPort          string
	APIPrefix        string
	StorageDriver    string
	DatabaseDSN      string
	RabbitMQURL      string
	RabbitMQExchange string
	CORSAllowOrigins string
	MetricsEnabled   bool
}

// Load reads the configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("STORAGE_DRIVER", "memory")
	v.SetDefault("DATABASE_DSN", "file:exercisetracker.db?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "exercise_tracker")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("METRICS_ENABLED", true)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		APIPrefix:        strings.TrimRight(v.GetString("API_PREFIX"), "/"),
		StorageDriver:    strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		MetricsEnabled:   v.GetBool("METRICS_ENABLED"),
	}

	switch cfg.StorageDriver {
	case "memory", "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q (want memory, sqlite or postgres)", cfg.StorageDriver)
	}
	if cfg.APIPrefix != "" && !strings.HasPrefix(cfg.APIPrefix, "/") {
		cfg.APIPrefix = "/" + cfg.APIPrefix
	}
	return cfg, nil
}
