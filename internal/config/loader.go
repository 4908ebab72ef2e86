package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ethoslab/archetype/internal/domain/scoring"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ARCHETYPE_CONFIG is set
//  3. env (prefix ARCHETYPE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ARCHETYPE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFile, err)
		}
	}

	// Environment variables: ARCHETYPE_ADDR, ARCHETYPE_QUEUE_SIZE, ...
	// Map env keys like ARCHETYPE_QUEUE_SIZE -> queue_size (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ARCHETYPE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "archetype_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalid)
	}
	switch cfg.Strategy {
	case scoring.StrategyTraitWeighted, scoring.StrategySemantic:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalid, cfg.Strategy)
	}
	switch cfg.Store {
	case StoreMemory:
	case StoreRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("%w: redis_addr must be set for the redis store", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalid, cfg.Store)
	}
	return nil
}
