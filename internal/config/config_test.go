package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PERSONA_PROVIDER", "PERSONA_MODEL", "SERVER_ADDR", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "GUARD_TTL_SECONDS", "LOG_LEVEL",
		"LOG_FILE", "EXPORT_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI.Provider != "gemini" || cfg.AI.Model != "" {
		t.Fatalf("unexpected AI config %+v", cfg.AI)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Guard.TTL != 180*time.Second {
		t.Fatalf("unexpected guard ttl %v", cfg.Guard.TTL)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis must be disabled without REDIS_ADDR")
	}
	if cfg.Export.Dir != "exports" {
		t.Fatalf("unexpected export dir %q", cfg.Export.Dir)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PERSONA_PROVIDER", "OpenAI")
	t.Setenv("PERSONA_MODEL", "gpt-4.1-mini")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("GUARD_TTL_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI.Provider != "openai" || cfg.AI.Model != "gpt-4.1-mini" {
		t.Fatalf("unexpected AI config %+v", cfg.AI)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if cfg.Guard.TTL != 30*time.Second {
		t.Fatalf("unexpected guard ttl %v", cfg.Guard.TTL)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PERSONA_PROVIDER", "bard")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidateGuardTTL(t *testing.T) {
	cfg := &Config{
		AI:     AIConfig{Provider: "gemini"},
		Server: ServerConfig{Addr: ":0"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero guard ttl")
	}
}
