// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"

	"github.com/ethoslab/archetype/internal/domain/scoring"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory submission queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of submission workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the email suppression cache.
	DedupeSize int `koanf:"dedupe_size"`

	// Strategy picks the scoring strategy: trait_weighted or semantic.
	Strategy string `koanf:"strategy"`

	// Store picks the result store backend: memory or redis.
	Store string `koanf:"store"`

	// RedisAddr is the Redis host:port when Store is redis.
	RedisAddr string `koanf:"redis_addr"`

	// RedisPrefix namespaces all Redis keys.
	RedisPrefix string `koanf:"redis_prefix"`

	// BrevoAPIKey enables report emails when set.
	BrevoAPIKey string `koanf:"brevo_api_key"`

	// FromEmail and FromName identify the report sender.
	FromEmail string `koanf:"from_email"`
	FromName  string `koanf:"from_name"`

	// MaxTraitSelection caps how many traits one request may carry.
	MaxTraitSelection int `koanf:"max_trait_selection"`
}

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		QueueSize:         10_000,
		WorkerCount:       runtime.NumCPU() * 2,
		DedupeSize:        50_000,
		Strategy:          scoring.StrategySemantic,
		Store:             StoreMemory,
		RedisAddr:         "localhost:6379",
		RedisPrefix:       "archetype",
		FromEmail:         "reports@archetype.example",
		FromName:          "Archetype Quiz",
		MaxTraitSelection: 40,
	}
}
