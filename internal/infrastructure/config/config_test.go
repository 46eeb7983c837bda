package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Session.Backend != BackendRedis {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Fatalf("expected 24h session ttl, got %v", cfg.Session.TTL)
	}
	if cfg.Session.CookieName != "prorecruit_device" {
		t.Fatalf("unexpected cookie name %q", cfg.Session.CookieName)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "memory",
		"SESSION_TTL":     "2h",
		"REDIS_DB":        "3",
		"DEMO_PASSWORD":   "hunter2",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.Backend != BackendMemory || cfg.Session.TTL != 2*time.Hour {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Redis.DB != 3 || cfg.Session.DemoPassword != "hunter2" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"SESSION_BACKEND": "etcd"}))
	if err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is left at its default in production")
	}
}
