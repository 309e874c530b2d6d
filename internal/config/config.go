package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Bulk      BulkConfig      `mapstructure:"bulk"`
	Export    ExportConfig    `mapstructure:"export"`

	// StartTime is set by main at boot, for the health endpoint's uptime.
	StartTime time.Time `mapstructure:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	Global int `mapstructure:"global"` // requests per minute
}

// DatasetConfig governs the synthetic dataset generator.
type DatasetConfig struct {
	Size       int   `mapstructure:"size"`
	Seed       int64 `mapstructure:"seed"`
	WindowDays int   `mapstructure:"window_days"`
}

// Window is the trailing timestamp window as a duration.
func (c DatasetConfig) Window() time.Duration {
	return time.Duration(c.WindowDays) * 24 * time.Hour
}

// BulkConfig governs the bulk action failure-injection policy.
type BulkConfig struct {
	FailureRate float64 `mapstructure:"failure_rate"`
	LatencyMS   int     `mapstructure:"latency_ms"`
}

// Latency is the simulated processing time as a duration.
func (c BulkConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// ExportConfig governs the tabular exporter.
type ExportConfig struct {
	Separator string `mapstructure:"separator"`
}

// Load reads configuration from an optional config.yaml in the working
// directory, with environment variables (SERVER_PORT, DATASET_SIZE, ...)
// overriding file values and defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("ratelimit.global", 100)
	v.SetDefault("dataset.size", 50000)
	v.SetDefault("dataset.seed", 12345)
	v.SetDefault("dataset.window_days", 30)
	v.SetDefault("bulk.failure_rate", 0.1)
	v.SetDefault("bulk.latency_ms", 800)
	v.SetDefault("export.separator", ",")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
