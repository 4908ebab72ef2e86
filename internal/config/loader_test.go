package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ethoslab/archetype/internal/domain/scoring"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()

	Convey("Given no file or env overrides", t, func() {
		cfg, err := Load(ctx)

		Convey("Then defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Strategy, ShouldEqual, scoring.StrategySemantic)
			So(cfg.Store, ShouldEqual, StoreMemory)
			So(cfg.QueueSize, ShouldEqual, 10_000)
			So(cfg.DedupeSize, ShouldEqual, 50_000)
			So(cfg.WorkerCount, ShouldBeGreaterThan, 0)
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	ctx := context.Background()

	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := []byte("addr: \":7070\"\nstrategy: trait_weighted\nqueue_size: 256\n")
		So(os.WriteFile(path, content, 0o600), ShouldBeNil)
		t.Setenv("ARCHETYPE_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := Load(ctx)

			Convey("Then the file overrides defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.Strategy, ShouldEqual, scoring.StrategyTraitWeighted)
				So(cfg.QueueSize, ShouldEqual, 256)
				So(cfg.Store, ShouldEqual, StoreMemory)
			})
		})
	})

	Convey("Given a missing config file", t, func() {
		t.Setenv("ARCHETYPE_CONFIG", "/nonexistent/config.yaml")

		Convey("When loading", func() {
			_, err := Load(ctx)

			Convey("Then the file error surfaces", func() {
				So(errors.Is(err, ErrLoadFile), ShouldBeTrue)
			})
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	ctx := context.Background()

	Convey("Given env overrides", t, func() {
		t.Setenv("ARCHETYPE_ADDR", ":6060")
		t.Setenv("ARCHETYPE_STORE", StoreRedis)
		t.Setenv("ARCHETYPE_REDIS_ADDR", "redis.internal:6379")
		t.Setenv("ARCHETYPE_WORKER_COUNT", "3")

		Convey("When loading", func() {
			cfg, err := Load(ctx)

			Convey("Then env wins over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.Store, ShouldEqual, StoreRedis)
				So(cfg.RedisAddr, ShouldEqual, "redis.internal:6379")
				So(cfg.WorkerCount, ShouldEqual, 3)
			})
		})
	})
}

func TestLoadValidation(t *testing.T) {
	ctx := context.Background()

	cases := map[string]struct {
		key   string
		value string
	}{
		"unknown strategy": {"ARCHETYPE_STRATEGY", "numerology"},
		"unknown store":    {"ARCHETYPE_STORE", "parchment"},
		"empty addr":       {"ARCHETYPE_ADDR", ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(ctx); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
